package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fol"
	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/model"
	"github.com/signadot/fol/modelfile"
	"github.com/signadot/fol/parse"
)

func (cfg *EvalConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	cfg.Patches = append(cfg.Patches, a)
	return a, nil
}

func (cfg *EvalConfig) setOpt(_ *cli.Context, a string) (any, error) {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: argument %q expected name=elem", cli.ErrUsage, a)
	}
	d, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", cli.ErrUsage, a, err)
	}
	cfg.Sets[name] = d
	return d, nil
}

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Model == "" {
		return fmt.Errorf("%w: eval requires a model (-m)", cli.ErrUsage)
	}
	m, err := modelfile.Load(cfg.Model, cfg.Patches...)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(cfg.Sets))
	for name := range cfg.Sets {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := m.Assign(name, cfg.Sets[name]); err != nil {
			return err
		}
	}
	tool := &fol.Tool{Model: m, Ground: cfg.Ground, ParseOpts: cfg.parseOpts()}
	if cfg.Exhaustive {
		tool.EvalOpts = append(tool.EvalOpts, model.Exhaustive())
	}
	colored := cfg.colorize(cc.Out)
	encOpts := cfg.encOpts(cc.Out, 0)
	return eachInput(args, func(_ string, d []byte) error {
		if cfg.Check {
			if err := check(m, d, cfg.parseOpts()); err != nil {
				return err
			}
		}
		res, err := tool.Run(d)
		for _, r := range res {
			writeResult(cc.Out, r, cfg.Ground, colored, encOpts)
		}
		return err
	})
}

func check(m *model.FiniteModel, d []byte, opts []parse.ParseOption) error {
	fs, err := parse.ParseMultiString(string(d), opts...)
	if err != nil {
		return err
	}
	for i, f := range fs {
		if err := m.Check(f); err != nil {
			return fmt.Errorf("formula %d: model check failed:\n%w", i, err)
		}
	}
	return nil
}

func writeResult(w io.Writer, r fol.Result, grounding, colored bool, encOpts []encode.EncodeOption) {
	v := strconv.FormatBool(r.Value)
	if colored {
		if r.Value {
			v = color.GreenString("%s", v)
		} else {
			v = color.RedString("%s", v)
		}
	}
	fmt.Fprintf(w, "%s\t%s\n", v, encode.MustString(r.Formula, encOpts...))
	if grounding && !r.Grounded {
		fmt.Fprintf(w, "\t(ground check inconclusive: skipped branches are undefined)\n")
	}
}
