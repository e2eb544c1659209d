// Package modelfile reads finite models from YAML, JSON or TOML documents.
//
// A document gives the domain size, the variable assignment and tables for
// function and predicate symbols:
//
//	domain: 2
//	vars: {x: 0, y: 1}
//	funcs:
//	  - name: a
//	    arity: 2
//	    expr: "(args[0] + args[1]) % 2"
//	    table: [{args: [1, 1], value: 0}]
//	preds:
//	  - name: p
//	    holds: [[0]]
//	  - name: q
//	    table: [{args: [], value: true}]
//
// An expr is an expr-lang expression over the environment {args, n},
// tabulated over every argument tuple; a predicate with holds is true
// exactly on the listed tuples.  Explicit table entries override both.
//
// Documents may be patched before they are decoded.  A patch whose JSON
// form is an array is an RFC 6902 JSON Patch, anything else an RFC 7386
// merge patch.
package modelfile
