package tree

import "errors"

// ErrParse wraps every error produced while decoding source text.
var ErrParse = errors.New("parse error")
