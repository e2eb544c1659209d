package model

import (
	"slices"

	"github.com/signadot/fol/ir"
)

type Model interface {
	Evaluate(f ir.Formula) (bool, error)
}

// Assignment maps variable names to domain elements.
type Assignment map[string]int

type FiniteModel struct {
	Size  int
	Vars  Assignment
	Funcs map[ir.Symbol]FuncTable
	Preds map[ir.Symbol]PredTable
}

// New returns an empty model over the domain 0..size-1.
func New(size int) *FiniteModel {
	return &FiniteModel{
		Size:  size,
		Vars:  Assignment{},
		Funcs: map[ir.Symbol]FuncTable{},
		Preds: map[ir.Symbol]PredTable{},
	}
}

func (m *FiniteModel) inDomain(d int) bool {
	return d >= 0 && d < m.Size
}

func (m *FiniteModel) checkArgs(args []int) error {
	for _, a := range args {
		if !m.inDomain(a) {
			return domainErr("argument", a, m.Size)
		}
	}
	return nil
}

func (m *FiniteModel) Assign(name string, d int) error {
	if !m.inDomain(d) {
		return domainErr("variable "+name, d, m.Size)
	}
	m.Vars[name] = d
	return nil
}

// SetFunc sets name(args...) = v for the function symbol of arity
// len(args).
func (m *FiniteModel) SetFunc(name string, args []int, v int) error {
	if err := m.checkArgs(args); err != nil {
		return err
	}
	if !m.inDomain(v) {
		return domainErr("value of "+name, v, m.Size)
	}
	sym := ir.Symbol{Name: name, Arity: len(args)}
	tab := m.Funcs[sym]
	if tab == nil {
		tab = FuncTable{}
		m.Funcs[sym] = tab
	}
	tab[KeyOf(args)] = v
	return nil
}

func (m *FiniteModel) SetPred(name string, args []int, v bool) error {
	if err := m.checkArgs(args); err != nil {
		return err
	}
	sym := ir.Symbol{Name: name, Arity: len(args)}
	tab := m.Preds[sym]
	if tab == nil {
		tab = PredTable{}
		m.Preds[sym] = tab
	}
	tab[KeyOf(args)] = v
	return nil
}

func (m *FiniteModel) FuncValue(name string, args []int) (int, error) {
	v, ok := m.Funcs[ir.Symbol{Name: name, Arity: len(args)}][KeyOf(args)]
	if !ok {
		return 0, &UnassignedError{Kind: ir.FuncKind, Name: name, Arity: len(args), Args: slices.Clone(args)}
	}
	return v, nil
}

func (m *FiniteModel) PredValue(name string, args []int) (bool, error) {
	v, ok := m.Preds[ir.Symbol{Name: name, Arity: len(args)}][KeyOf(args)]
	if !ok {
		return false, &UnassignedError{Kind: ir.PredKind, Name: name, Arity: len(args), Args: slices.Clone(args)}
	}
	return v, nil
}
