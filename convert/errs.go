package convert

import "errors"

// ErrDecode is the error As wraps around a failed decode.
var ErrDecode = errors.New("cannot decode node")
