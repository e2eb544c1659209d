package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fol"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/parse"
)

func TestCanonical(t *testing.T) {
	out, err := canonical([]byte("(Vx0   (p x0))\nq"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "(V x0 (p x0))\nq\n"
	if string(out) != want {
		t.Errorf("got %q want %q", out, want)
	}
	if _, err := canonical([]byte("(p"), 0, nil); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestSetOpt(t *testing.T) {
	cfg := &EvalConfig{Sets: map[string]int{}}
	if _, err := cfg.setOpt(nil, "x=2"); err != nil {
		t.Fatal(err)
	}
	if cfg.Sets["x"] != 2 {
		t.Errorf("got %v", cfg.Sets)
	}
	for _, bad := range []string{"x", "=1", "x=a"} {
		if _, err := cfg.setOpt(nil, bad); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestWriteResult(t *testing.T) {
	r := fol.Result{Formula: ir.P("q"), Value: true}
	buf := &bytes.Buffer{}
	writeResult(buf, r, false, false, nil)
	if got, want := buf.String(), "true\tq\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	writeResult(buf, r, true, false, nil)
	if !strings.Contains(buf.String(), "inconclusive") {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	r.Grounded = true
	writeResult(buf, r, true, false, nil)
	if strings.Contains(buf.String(), "inconclusive") {
		t.Errorf("got %q", buf.String())
	}
}
