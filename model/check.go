package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/fol/ir"
)

// Check reports every reason evaluating f in m could fail: unassigned free
// variables, function and predicate symbols of f whose tables are not total
// over the domain, and function values outside the domain.
func (m *FiniteModel) Check(f ir.Formula) error {
	var errs []error
	for _, v := range ir.FreeVars(f).Sorted() {
		d, ok := m.Vars[v]
		if !ok {
			errs = append(errs, &UnassignedError{Kind: ir.VarKind, Name: v})
			continue
		}
		if !m.inDomain(d) {
			errs = append(errs, domainErr("variable "+v, d, m.Size))
		}
	}
	for _, sym := range ir.Funcs(f).Sorted() {
		tab := m.Funcs[sym]
		errs = append(errs, m.total(ir.FuncKind, sym, func(k Key) bool {
			_, ok := tab[k]
			return ok
		})...)
		for k, v := range tab {
			if !m.inDomain(v) {
				errs = append(errs, domainErr(fmt.Sprintf("value of %s at %s", sym, tuple(k.Args())), v, m.Size))
			}
		}
	}
	for _, sym := range ir.Preds(f).Sorted() {
		tab := m.Preds[sym]
		errs = append(errs, m.total(ir.PredKind, sym, func(k Key) bool {
			_, ok := tab[k]
			return ok
		})...)
	}
	return errors.Join(errs...)
}

// total reports the first tuple at which sym is undefined, with a count of
// all such tuples.
func (m *FiniteModel) total(kind ir.Kind, sym ir.Symbol, has func(Key) bool) []error {
	var first []int
	missing, all := 0, 0
	Tuples(m.Size, sym.Arity, func(args []int) bool {
		all++
		if has(KeyOf(args)) {
			return true
		}
		if missing == 0 {
			first = slices.Clone(args)
		}
		missing++
		return true
	})
	if missing == 0 {
		return nil
	}
	err := &UnassignedError{Kind: kind, Name: sym.Name, Arity: sym.Arity, Args: first}
	return []error{fmt.Errorf("%w (%d of %d tuples)", err, missing, all)}
}
