// Package ir defines the abstract syntax of first-order logic formulas and
// the structural analyses over it.
//
// # Node Structure
//
// Terms are [*Var] and [*Func].  Formulas are [*Forall], [*Exists], [*And],
// [*Or], [*Not], [*Equal] and [*Pred].  Every child is owned by exactly one
// parent: a formula is a strict tree, built once by the parser (or with the
// constructors in build.go) and never mutated afterwards.
//
// Whether a symbol names a function or a predicate is decided by position
// alone, and arities are fixed per occurrence.  A name may therefore appear
// with several arities; [Symbol] keys carry the arity so such uses remain
// distinct.
//
// # Analysis
//
//   - [FreeVars] and [BoundVars] compute variable sets with lexical scoping.
//   - [Funcs] and [Preds] collect the non-logical symbols.
//   - [SignatureOf] and [Signature.Check] optionally validate arity use.
//   - [Shadowed] lists binders that rebind an enclosing binder's name.
package ir
