package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/fol/ir"
)

var (
	ErrDomain     = errors.New("not in domain")
	ErrUnassigned = errors.New("unassigned")
)

// UnassignedError reports a variable, function or predicate instance with
// no value in the model.
type UnassignedError struct {
	Kind  ir.Kind
	Name  string
	Arity int
	Args  []int
}

func (e *UnassignedError) Unwrap() error {
	return ErrUnassigned
}

func (e *UnassignedError) Error() string {
	switch e.Kind {
	case ir.VarKind:
		return fmt.Sprintf("%s variable %s", ErrUnassigned, e.Name)
	case ir.FuncKind:
		return fmt.Sprintf("%s function %s/%d at %s", ErrUnassigned, e.Name, e.Arity, tuple(e.Args))
	default:
		return fmt.Sprintf("%s predicate %s/%d at %s", ErrUnassigned, e.Name, e.Arity, tuple(e.Args))
	}
}

func tuple(args []int) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func domainErr(what string, d, size int) error {
	return fmt.Errorf("%w: %s %d (size %d)", ErrDomain, what, d, size)
}
