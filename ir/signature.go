package ir

import (
	"errors"
	"fmt"
	"strings"
)

// Funcs returns the function symbols applied anywhere in f, including in
// nested arguments.
func Funcs(f Formula) SymbolSet {
	res := NewSymbolSet()
	Walk(f, func(n Node) bool {
		if x, ok := n.(*Func); ok {
			res.Add(x.Symbol())
		}
		return true
	})
	return res
}

// Preds returns the predicate symbols applied anywhere in f.
func Preds(f Formula) SymbolSet {
	res := NewSymbolSet()
	Walk(f, func(n Node) bool {
		if x, ok := n.(*Pred); ok {
			res.Add(x.Symbol())
		}
		return true
	})
	return res
}

// Signature is the set of non-logical symbols used by a formula.
type Signature struct {
	Funcs SymbolSet
	Preds SymbolSet
}

func SignatureOf(f Formula) *Signature {
	return &Signature{Funcs: Funcs(f), Preds: Preds(f)}
}

// Check reports names used with more than one arity and names used both as
// a function and as a predicate.  Nothing in analysis or evaluation requires
// a consistent signature; Check is for callers who want one.
func (s *Signature) Check() error {
	var errs []error
	errs = append(errs, arityConflicts("function", s.Funcs)...)
	errs = append(errs, arityConflicts("predicate", s.Preds)...)
	preds := map[string]bool{}
	for _, name := range s.Preds.Names() {
		preds[name] = true
	}
	for _, name := range s.Funcs.Names() {
		if preds[name] {
			errs = append(errs, fmt.Errorf("%w: %q used as function and predicate", ErrArity, name))
		}
	}
	return errors.Join(errs...)
}

func arityConflicts(what string, set SymbolSet) []error {
	byName := map[string][]string{}
	var names []string
	for _, sym := range set.Sorted() {
		if _, ok := byName[sym.Name]; !ok {
			names = append(names, sym.Name)
		}
		byName[sym.Name] = append(byName[sym.Name], sym.String())
	}
	var res []error
	for _, name := range names {
		syms := byName[name]
		if len(syms) < 2 {
			continue
		}
		res = append(res, fmt.Errorf("%w: %s %q used as %s", ErrArity, what, name, strings.Join(syms, ", ")))
	}
	return res
}
