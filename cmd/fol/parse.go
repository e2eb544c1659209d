package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/parse"
)

func parseFiles(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(cc.Out, cfg.Indent)
	return eachInput(args, func(_ string, d []byte) error {
		fs, err := parse.ParseMultiString(string(d), cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for i, f := range fs {
			if err := encode.Encode(f, cc.Out, encOpts...); err != nil {
				return fmt.Errorf("error encoding formula %d: %w", i, err)
			}
		}
		return nil
	})
}
