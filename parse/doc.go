// Package parse parses formula tokens into ir formulas.
//
// # Usage
//
//	// Parse text
//	f, err := parse.ParseString("(V x (E y (= (f x) y)))")
//	if err != nil {
//	    return err
//	}
//
//	// Parse a token sequence
//	f, err := parse.Parse(token.Tokenize(src))
//
//	// Several formulas in one source
//	fs, err := parse.ParseMultiString(src, parse.ParseStrict())
//
// The grammar is fully parenthesized prefix notation:
//
//	formula := '(' 'V' SYMBOL formula ')' | '(' 'E' SYMBOL formula ')'
//	         | '(' '^' formula formula ')' | '(' 'v' formula formula ')'
//	         | '(' '~' formula ')'          | '(' '=' term term ')'
//	         | '(' SYMBOL term* ')'         | SYMBOL
//	term    := '(' SYMBOL term* ')' | SYMBOL
//
// A symbol in formula position is a predicate, a symbol in term position is
// a function or variable.  All failures are *[Error] values wrapping
// [ErrParse].
//
// # Related Packages
//
//   - github.com/signadot/fol/token - Tokenization
//   - github.com/signadot/fol/ir - Formula representation
//   - github.com/signadot/fol/encode - Encode formulas to text
package parse
