package ir

import "errors"

var (
	ErrArity = errors.New("inconsistent signature")
)
