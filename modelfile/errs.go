package modelfile

import "errors"

var (
	ErrSpec   = errors.New("invalid model spec")
	ErrFormat = errors.New("unknown model format")
)
