package parse

import (
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/token"
)

type parseOpts struct {
	strict    bool
	positions map[ir.Node]token.Pos
	tokOpts   []token.TokenOpt
	warnings  *[]error
}

type ParseOption func(*parseOpts)

// ParseStrict rejects formulas whose signature uses a name with several
// arities or as both function and predicate.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParsePositions records the position of the first token of every parsed
// node in m.
func ParsePositions(m map[ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ParseWarnings appends findings which do not stop parsing, such as
// ErrCompactAtom, to dst.
func ParseWarnings(dst *[]error) ParseOption {
	return func(o *parseOpts) { o.warnings = dst }
}

// ParseTokenOpts passes tokenizer options to the string entry points.
func ParseTokenOpts(opts ...token.TokenOpt) ParseOption {
	return func(o *parseOpts) { o.tokOpts = append(o.tokOpts, opts...) }
}
