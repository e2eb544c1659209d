package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/fol/token"
)

var (
	ErrParse          = errors.New("parse error")
	ErrUnexpectedEOF  = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrExpectedRParen = fmt.Errorf("%w: expected )", ErrParse)
	ErrReservedName   = fmt.Errorf("%w: reserved marker used as a name", ErrParse)
	ErrBadHead        = fmt.Errorf("%w: unrecognized head after (", ErrParse)
	ErrUnexpected     = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrTrailing       = fmt.Errorf("%w: trailing tokens", ErrParse)

	// ErrCompactAtom is a warning, not a failure: a compact binder whose
	// body is a bare nullary predicate, as (Even x) read as (E ven x).
	ErrCompactAtom = errors.New("compact binder over a bare atom")
)

// Error is a parse failure at a token position.
type Error struct {
	Err error
	Pos token.Pos
	// Detail describes what the parser was looking at, e.g. `found "V"`.
	Detail string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
	}
	return fmt.Sprintf("%s (%s) at %s", e.Err.Error(), e.Detail, e.Pos)
}
