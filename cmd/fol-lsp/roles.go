package main

import (
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/token"
)

type roleKind int

const (
	roleMarker roleKind = iota
	roleParen
	roleSymbol
	roleFree
	roleBound
	roleBinder
	roleFunc
	rolePred
)

// role describes what a token stands for in the parsed document.
type role struct {
	kind  roleKind
	name  string
	arity int
	// binder is the position of the quantifier variable a bound
	// occurrence refers to.
	binder token.Pos
}

// classify assigns a role to every token of doc, keyed by token index.
// Symbols outside successfully parsed formulas keep roleSymbol.
func classify(doc *document) map[int]role {
	roles := make(map[int]role, len(doc.toks))
	index := make(map[int]int, len(doc.toks))
	for i, t := range doc.toks {
		index[t.Pos.I] = i
		switch {
		case t.Type == token.TSymbol:
			roles[i] = role{kind: roleSymbol, name: t.Name}
		case t.Type.IsMarker():
			roles[i] = role{kind: roleMarker, name: t.Type.Lexeme()}
		default:
			roles[i] = role{kind: roleParen}
		}
	}
	at := func(n ir.Node) (int, bool) {
		p, ok := doc.positions[n]
		if !ok {
			return 0, false
		}
		i, ok := index[p.I]
		return i, ok
	}
	// head is the index of the name token of a node which may or may
	// not be parenthesized.
	head := func(n ir.Node) (int, bool) {
		i, ok := at(n)
		if !ok {
			return 0, false
		}
		if doc.toks[i].Type == token.TLParen {
			i++
		}
		return i, i < len(doc.toks)
	}
	scope := map[string][]token.Pos{}
	var visit func(ir.Node)
	visit = func(n ir.Node) {
		switch x := n.(type) {
		case *ir.Var:
			i, ok := at(x)
			if !ok {
				return
			}
			if bs := scope[x.Name]; len(bs) != 0 {
				roles[i] = role{kind: roleBound, name: x.Name, binder: bs[len(bs)-1]}
				return
			}
			roles[i] = role{kind: roleFree, name: x.Name}
			return
		case *ir.Func:
			if i, ok := head(x); ok {
				r := role{kind: roleFunc, name: x.Name, arity: len(x.Args)}
				roles[i] = r
				// a name like Vsucc is tokenized as a compact binder
				if doc.toks[i].Type.IsMarker() && i+1 < len(doc.toks) {
					roles[i+1] = r
				}
			}
		case *ir.Pred:
			if i, ok := head(x); ok {
				roles[i] = role{kind: rolePred, name: x.Name, arity: len(x.Args)}
			}
		case *ir.Forall, *ir.Exists:
			v, _ := ir.Binder(x)
			i, ok := at(x)
			if ok && i+2 < len(doc.toks) {
				roles[i+2] = role{kind: roleBinder, name: v}
				scope[v] = append(scope[v], doc.toks[i+2].Pos)
				defer func() { scope[v] = scope[v][:len(scope[v])-1] }()
			}
		}
		for _, c := range ir.Children(n) {
			visit(c)
		}
	}
	for _, f := range doc.formulas {
		visit(f)
	}
	return roles
}

// tokenAt returns the index of the token covering line and col.
func tokenAt(doc *document, line, col int) (int, bool) {
	for i, t := range doc.toks {
		if t.Pos.Line != line {
			continue
		}
		n := len([]rune(t.Text()))
		if col >= t.Pos.Col && col < t.Pos.Col+n {
			return i, true
		}
	}
	return 0, false
}
