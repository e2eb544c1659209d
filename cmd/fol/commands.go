package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "fol").
		WithSynopsis("fol [opts] command [opts]").
		WithDescription("fol reads first order logic formulas and evaluates them over finite models.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return folMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			ParseCommand(cfg),
			SigCommand(cfg),
			EvalCommand(cfg),
			FmtCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("tok", "t").
		WithSynopsis("tokens [files]").
		WithDescription("print the tokens of formula files with their positions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-i n] [-strict] [files]").
		WithDescription("parse formula files and print them in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseFiles(cfg, cc, args)
		})
}

func SigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SigConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sig, "sig").
		WithAliases("s").
		WithSynopsis("sig [files]").
		WithDescription("show free and bound variables, function and predicate symbols").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sig(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Sets: map[string]int{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"patch"},
			Description: "patch file applied to the model document, may be repeated",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.patchOpt), "(filepath)"),
		},
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"set"},
			Description: "assign a variable, may be repeated",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.setOpt), "(name=elem)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -m model [-p patch]... [-s name=elem]... [-x] [-g] [-check] [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `eval evaluates formulas over a finite model.

The model is read from a yaml, json or toml document given with -m:

  domain: 2
  vars: {x: 0, y: 1}
  funcs:
  - name: a
    arity: 2
    expr: "(args[0] + args[1]) % 2"
  preds:
  - name: p
    holds: [[0]]
  - name: q
    table: [{args: [], value: true}]

Patches given with -p are applied to the document in order.  A patch
whose json form is a list is a json patch, otherwise a merge patch.

-s name=elem assigns free variables after the model is loaded.

By default connectives and quantifiers short circuit.  -x evaluates
every branch.  -g also grounds each formula into a boolean circuit and
checks that a sat solver agrees with the direct evaluation.  When the
circuit needs values which short circuiting never looked up and the
model lacks them, the check is reported as inconclusive.  -check
verifies that the model defines every symbol of each formula over the
whole domain before evaluating it.`

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-i n] [files]").
		WithDescription("format formula files canonically, -d shows a diff instead").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}
