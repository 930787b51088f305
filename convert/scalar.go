package convert

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/doctree/ir"
)

// The scalar grammar. Compiled once, read-only afterwards, so the
// matchers are safe for unsynchronized concurrent use.
var (
	reDecimal = regexp.MustCompile(`^[-+]?[0-9]+$`)
	reOctal   = regexp.MustCompile(`^0o[0-7]+$`)
	reHex     = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	reFloat   = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)
	reInf     = regexp.MustCompile(`^[-+]?(\.inf|\.Inf|\.INF)$`)
	reNaN     = regexp.MustCompile(`^(\.nan|\.NaN|\.NAN)$`)
)

func encodeBool(v reflect.Value) *ir.Node {
	if v.Bool() {
		return ir.FromString("true")
	}
	return ir.FromString("false")
}

func decodeBool(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	switch node.String {
	case "true", "True", "TRUE":
		dst.SetBool(true)
	case "false", "False", "FALSE":
		dst.SetBool(false)
	default:
		return false
	}
	return true
}

// Integers decode from decimal, 0o octal, or 0x hex text through a
// 64-bit intermediate of matching signedness. The radix is not round
// tripped: encode always emits decimal.

func encodeInt(v reflect.Value) *ir.Node {
	return ir.FromString(strconv.FormatInt(v.Int(), 10))
}

func decodeInt(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	s := node.String
	var (
		num int64
		err error
	)
	switch {
	case reDecimal.MatchString(s):
		num, err = strconv.ParseInt(s, 10, 64)
	case reOctal.MatchString(s):
		num, err = strconv.ParseInt(s[2:], 8, 64)
	case reHex.MatchString(s):
		num, err = strconv.ParseInt(s[2:], 16, 64)
	default:
		return false
	}
	if err != nil || dst.OverflowInt(num) {
		return false
	}
	dst.SetInt(num)
	return true
}

func encodeUint(v reflect.Value) *ir.Node {
	return ir.FromString(strconv.FormatUint(v.Uint(), 10))
}

func decodeUint(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	s := node.String
	var (
		num uint64
		err error
	)
	switch {
	case reDecimal.MatchString(s):
		num, err = strconv.ParseUint(s, 10, 64)
	case reOctal.MatchString(s):
		num, err = strconv.ParseUint(s[2:], 8, 64)
	case reHex.MatchString(s):
		num, err = strconv.ParseUint(s[2:], 16, 64)
	default:
		return false
	}
	if err != nil || dst.OverflowUint(num) {
		return false
	}
	dst.SetUint(num)
	return true
}

// encodeFloat formats with the fewest digits that round trip the
// value's width. When the result reads as a plain integer it gains a
// trailing "." so a float-typed scalar stays distinguishable from an
// integer-typed one.
func encodeFloat(v reflect.Value) *ir.Node {
	f := v.Float()
	switch {
	case math.IsNaN(f):
		return ir.FromString(".nan")
	case math.IsInf(f, 1):
		return ir.FromString(".inf")
	case math.IsInf(f, -1):
		return ir.FromString("-.inf")
	}
	s := strconv.FormatFloat(f, 'g', -1, v.Type().Bits())
	if reDecimal.MatchString(s) {
		s += "."
	}
	return ir.FromString(s)
}

func decodeFloat(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	s := node.String
	switch {
	case reFloat.MatchString(s):
		f, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return false
		}
		dst.SetFloat(f)
	case reInf.MatchString(s):
		sign := 1
		if s[0] == '-' {
			sign = -1
		}
		dst.SetFloat(math.Inf(sign))
	case reNaN.MatchString(s):
		dst.SetFloat(math.NaN())
	default:
		return false
	}
	return true
}

func encodeChar(v reflect.Value) *ir.Node {
	return ir.FromString(string(rune(v.Int())))
}

func decodeChar(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	if utf8.RuneCountInString(node.String) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(node.String)
	dst.SetInt(int64(r))
	return true
}

// Strings carry scalar text verbatim; escaping belongs to the parser
// and emitter, not here.

func encodeString(v reflect.Value) *ir.Node {
	return ir.FromString(v.String())
}

func decodeString(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	dst.SetString(node.String)
	return true
}

func encodeNull(reflect.Value) *ir.Node {
	return ir.Null()
}

func decodeNull(node *ir.Node, _ reflect.Value) bool {
	return node.IsNull()
}

func encodeNode(v reflect.Value) *ir.Node {
	node, _ := v.Interface().(*ir.Node)
	if node == nil {
		return ir.Null()
	}
	return node
}

// decodeNode aliases: the destination shares the source tree rather
// than deep-copying it.
func decodeNode(node *ir.Node, dst reflect.Value) bool {
	dst.Set(reflect.ValueOf(node))
	return true
}

func encodeLiteral(v reflect.Value) *ir.Node {
	return ir.FromString(v.String())
}
