// Package debug holds env-gated diagnostic switches for the module.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	YAML    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("DOCTREE_DEBUG_CONVERT")
	d.YAML = boolEnv("DOCTREE_DEBUG_YAML")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func YAML() bool {
	return d.YAML
}

// Logf writes to stderr, rendering structured arguments (nodes
// included, via their exported fields) as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case bool, string, float64, int, error:
		default:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
