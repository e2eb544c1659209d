// Package model provides finite interpretations of first order formulas and
// evaluates formulas against them.
//
// A [FiniteModel] has a domain of consecutive integers 0..Size-1, an
// assignment of free variables to domain elements and partial tables for
// function and predicate symbols, keyed by [ir.Symbol].  Evaluation works
// on a private copy of the variable assignment, so a populated model may be
// evaluated from several goroutines at once.  Lookups which fall outside
// the tables are reported as [*UnassignedError].
package model
