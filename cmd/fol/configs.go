package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/parse"
	"github.com/signadot/fol/token"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='output with color'"`
	NoCompact bool `cli:"name=nocompact desc='do not read (Vx ...) as (V x ...)'"`
	Strict    bool `cli:"name=strict desc='reject formulas using a name with several arities'"`
	Gops      bool `cli:"name=gops desc='start a gops agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.NoCompact {
		res = append(res, parse.ParseTokenOpts(token.NoCompactBinders()))
	}
	if cfg.Strict {
		res = append(res, parse.ParseStrict())
	}
	return res
}

// colorize reports whether output to w is colored: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeIndent(indent)}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type TokensConfig struct {
	*MainConfig
	Tokens *cli.Command
}

type ParseConfig struct {
	*MainConfig
	Indent int `cli:"name=i aliases=indent desc='indent nested formulas by n spaces'"`
	Parse  *cli.Command
}

type SigConfig struct {
	*MainConfig
	Sig *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Model      string `cli:"name=m aliases=model desc='model file (yaml, json or toml)'"`
	Exhaustive bool   `cli:"name=x desc='evaluate without short circuiting'"`
	Ground     bool   `cli:"name=g aliases=ground desc='cross check with a sat solver'"`
	Check      bool   `cli:"name=check desc='check the model defines all symbols before evaluating'"`

	Patches []string
	Sets    map[string]int

	Eval *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff   bool `cli:"name=d aliases=diff desc='show a diff against the canonical form'"`
	Indent int  `cli:"name=i aliases=indent desc='indent nested formulas by n spaces'"`
	Fmt    *cli.Command
}
