package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fol"
	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/ir"
)

func sig(cfg *SigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sig.Parse(cc, args)
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(cc.Out, 0)
	return eachInput(args, func(_ string, d []byte) error {
		as, err := fol.Analyze(d, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		for _, a := range as {
			writeAnalysis(cc.Out, a, encOpts)
		}
		return nil
	})
}

func writeAnalysis(w io.Writer, a fol.Analysis, encOpts []encode.EncodeOption) {
	fmt.Fprintf(w, "%s\n", encode.MustString(a.Formula, encOpts...))
	fmt.Fprintf(w, "  free:  %s\n", braces(a.Free))
	fmt.Fprintf(w, "  bound: %s\n", braces(a.Bound))
	fmt.Fprintf(w, "  funcs: %s\n", braces(symbolStrings(a.Funcs)))
	fmt.Fprintf(w, "  preds: %s\n", braces(symbolStrings(a.Preds)))
	for _, warn := range a.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
	if len(a.Shadowed) != 0 {
		fmt.Fprintf(w, "  shadowed: %s\n", strings.Join(a.Shadowed, ", "))
	}
	if a.Conflicts == nil {
		return
	}
	var joined interface{ Unwrap() []error }
	if errors.As(a.Conflicts, &joined) {
		for _, err := range joined.Unwrap() {
			fmt.Fprintf(w, "  warning: %s\n", err)
		}
		return
	}
	fmt.Fprintf(w, "  warning: %s\n", a.Conflicts)
}

func braces(xs []string) string {
	return "{" + strings.Join(xs, ", ") + "}"
}

func symbolStrings(syms []ir.Symbol) []string {
	res := make([]string, len(syms))
	for i, s := range syms {
		res[i] = s.String()
	}
	return res
}
