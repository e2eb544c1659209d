package modelfile

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/fol/model"
)

func exprEnv(args []int, n int) map[string]any {
	return map[string]any{"args": args, "n": n}
}

func compile(name, src string, kind expr.Option) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.Env(exprEnv(nil, 0)), kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpec, name, err)
	}
	return prg, nil
}

// tabulate runs prg on every tuple of domain^arity.
func tabulate(m *model.FiniteModel, name string, arity int, prg *vm.Program, set func([]int, any) error) error {
	var err error
	model.Tuples(m.Size, arity, func(args []int) bool {
		var v any
		v, err = vm.Run(prg, exprEnv(slices.Clone(args), m.Size))
		if err != nil {
			err = fmt.Errorf("%s at %v: %w", name, args, err)
			return false
		}
		err = set(args, v)
		return err == nil
	})
	return err
}

func tabulateFunc(m *model.FiniteModel, name string, arity int, src string) error {
	prg, err := compile(name, src, expr.AsInt())
	if err != nil {
		return err
	}
	return tabulate(m, name, arity, prg, func(args []int, v any) error {
		if err := m.SetFunc(name, args, v.(int)); err != nil {
			return fmt.Errorf("%s at %v: %w", name, args, err)
		}
		return nil
	})
}

func tabulatePred(m *model.FiniteModel, name string, arity int, src string) error {
	prg, err := compile(name, src, expr.AsBool())
	if err != nil {
		return err
	}
	return tabulate(m, name, arity, prg, func(args []int, v any) error {
		return m.SetPred(name, args, v.(bool))
	})
}
