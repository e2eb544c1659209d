package model

import "github.com/signadot/fol/ir"

type evalOpts struct {
	exhaustive bool
	observe    func(ir.Formula)
}

type EvalOption func(*evalOpts)

// Exhaustive turns off short circuiting: both sides of every connective are
// evaluated and quantifiers visit every domain element.
func Exhaustive() EvalOption {
	return func(o *evalOpts) { o.exhaustive = true }
}

// Observe calls fn on every formula node as it is visited.
func Observe(fn func(ir.Formula)) EvalOption {
	return func(o *evalOpts) { o.observe = fn }
}
