package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/libdiff"
	"github.com/signadot/fol/parse"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	colored := cfg.colorize(cc.Out)
	return eachInput(args, func(name string, d []byte) error {
		out, err := canonical(d, cfg.Indent, cfg.parseOpts())
		if err != nil {
			return err
		}
		if !cfg.Diff {
			_, err := cc.Out.Write(out)
			return err
		}
		diff := libdiff.Strings(string(d), string(out))
		if diff == "" {
			return nil
		}
		if colored {
			diff = libdiff.Colored(diff)
		}
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", name, name, diff)
		return nil
	})
}

// canonical renders every formula of d, one after the other.
func canonical(d []byte, indent int, opts []parse.ParseOption) ([]byte, error) {
	fs, err := parse.ParseMultiString(string(d), opts...)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	for i, f := range fs {
		if err := encode.Encode(f, buf, encode.EncodeIndent(indent)); err != nil {
			return nil, fmt.Errorf("error encoding formula %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}
