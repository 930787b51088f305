package convert

// Char is the fixed-width code-unit type. Its scalar form is a
// one-rune string; decoding any other text fails. Plain rune values
// classify as signed integers, not characters.
type Char rune

// Literal is fixed text that can be encoded but never decoded into.
type Literal string

// Binary is a raw byte buffer. Its scalar form is base64 text; a plain
// []byte classifies as a sequence of unsigned integers instead.
type Binary []byte

// Null is the sentinel whose scalar form is the null node.
type Null struct{}

// Pair is a two-element tuple, encoded as the sequence [First, Second].
type Pair[K, V any] struct {
	First  K
	Second V
}
