package ir

import (
	"cmp"
	"slices"
	"strconv"
)

// Symbol identifies a function or predicate symbol by name and arity.  The
// same name with two arities denotes two distinct symbols.
type Symbol struct {
	Name  string
	Arity int
}

func (s Symbol) String() string {
	return s.Name + "/" + strconv.Itoa(s.Arity)
}

func CompareSymbols(a, b Symbol) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Arity, b.Arity)
}

type SymbolSet map[Symbol]struct{}

func NewSymbolSet(syms ...Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

func (s SymbolSet) Add(sym Symbol)      { s[sym] = struct{}{} }
func (s SymbolSet) Has(sym Symbol) bool { _, ok := s[sym]; return ok }
func (s SymbolSet) Len() int            { return len(s) }

// Sorted returns the symbols ordered by name then arity.
func (s SymbolSet) Sorted() []Symbol {
	res := make([]Symbol, 0, len(s))
	for sym := range s {
		res = append(res, sym)
	}
	slices.SortFunc(res, CompareSymbols)
	return res
}

// Names returns the distinct names in s, sorted.
func (s SymbolSet) Names() []string {
	seen := map[string]bool{}
	var res []string
	for _, sym := range s.Sorted() {
		if seen[sym.Name] {
			continue
		}
		seen[sym.Name] = true
		res = append(res, sym.Name)
	}
	return res
}

// VarSet is a set of variable names.
type VarSet map[string]struct{}

func NewVarSet(names ...string) VarSet {
	s := make(VarSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s VarSet) Add(name string)      { s[name] = struct{}{} }
func (s VarSet) Has(name string) bool { _, ok := s[name]; return ok }
func (s VarSet) Len() int             { return len(s) }

func (s VarSet) Sorted() []string {
	res := make([]string, 0, len(s))
	for n := range s {
		res = append(res, n)
	}
	slices.Sort(res)
	return res
}
