// Package ground translates a formula over a finite model into a boolean
// circuit and decides it with a SAT solver.
//
// Quantifiers expand into conjunctions and disjunctions over the domain and
// equalities fold to constants, leaving one circuit input per predicate
// instance p(d...) reached during the expansion.  Each input is fixed by an
// assumption to the value the model gives it, so solving the circuit
// reproduces [model.FiniteModel.Evaluate] by an independent route.
package ground
