package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fol/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	var tokOpts []token.TokenOpt
	if cfg.NoCompact {
		tokOpts = append(tokOpts, token.NoCompactBinders())
	}
	return eachInput(args, func(name string, d []byte) error {
		toks := token.Tokenize(string(d), tokOpts...)
		token.PrintTokens(cc.Out, toks, name)
		fmt.Fprintf(cc.Out, "%d tokens\n", len(toks))
		return nil
	})
}
