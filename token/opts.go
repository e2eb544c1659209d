package token

type tokenOpts struct {
	noCompactBinders bool
}

type TokenOpt func(*tokenOpts)

// NoCompactBinders turns off splitting of runs like "Vx0" following an
// open paren into a quantifier marker and its variable.
func NoCompactBinders() TokenOpt {
	return func(o *tokenOpts) { o.noCompactBinders = true }
}
