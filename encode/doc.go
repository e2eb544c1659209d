// Package encode renders formulas in the parenthesized prefix syntax read by
// package parse.
//
// Output of [Encode] parses back to a structurally equal formula.  Binders
// whose names coincide with a marker lexeme, such as a variable named "v",
// are written in compact form "(Vv ...)" since the spaced form would not
// tokenize as a symbol.
package encode
