package modelfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/model"
	"github.com/signadot/fol/parse"
)

const scenarioYAML = `
domain: 2
vars: {x: 0, y: 1}
funcs:
  - name: a
    arity: 2
    expr: "(args[0] + args[1]) % 2"
  - name: b
    arity: 2
    expr: "(args[0] + args[1] + 1) % n"
preds:
  - name: p
    holds: [[0]]
  - name: q
    table: [{args: [], value: true}]
`

const scenarioTOML = `
domain = 2

[vars]
x = 0
y = 1

[[funcs]]
name = "a"
table = [
  {args = [0, 0], value = 0},
  {args = [0, 1], value = 1},
  {args = [1, 0], value = 1},
  {args = [1, 1], value = 0},
]

[[funcs]]
name = "b"
arity = 2
expr = "1 - (args[0] + args[1]) % 2"

[[preds]]
name = "p"
arity = 1
expr = "args[0] == 0"

[[preds]]
name = "q"
table = [{args = [], value = true}]
`

const scenarioJSON = `{
  "domain": 2,
  "vars": {"x": 0, "y": 1},
  "funcs": [
    {"name": "a", "arity": 2, "expr": "args[0] == args[1] ? 0 : 1"},
    {"name": "b", "arity": 2, "expr": "args[0] == args[1] ? 1 : 0"}
  ],
  "preds": [
    {"name": "p", "arity": 1, "holds": [[0]]},
    {"name": "q", "table": [{"args": [], "value": true}]}
  ]
}`

func scenarioModel() *model.FiniteModel {
	m := model.New(2)
	m.Assign("x", 0)
	m.Assign("y", 1)
	for d := range 2 {
		for e := range 2 {
			m.SetFunc("a", []int{d, e}, (d+e)%2)
			m.SetFunc("b", []int{d, e}, (d+e+1)%2)
		}
		m.SetPred("p", []int{d}, d == 0)
	}
	m.SetPred("q", nil, true)
	return m
}

func build(t *testing.T, src string, format Format, patches ...Patch) *model.FiniteModel {
	t.Helper()
	spec, err := Decode([]byte(src), format, patches...)
	if err != nil {
		t.Fatal(err)
	}
	m, err := spec.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDecodeFormats(t *testing.T) {
	want := scenarioModel()
	for _, tt := range []struct {
		src    string
		format Format
	}{
		{scenarioYAML, YAML},
		{scenarioTOML, TOML},
		{scenarioJSON, JSON},
	} {
		t.Run(tt.format.String(), func(t *testing.T) {
			got := build(t, tt.src, tt.format)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("model mismatch (-want +got):\n%s", diff)
			}
			f, err := parse.ParseString("(Vx0 (Ex1 (^ (= (a x y) (b x y)) (v (~ (p y)) q))))")
			if err != nil {
				t.Fatal(err)
			}
			v, err := got.Evaluate(f)
			if err != nil || v {
				t.Errorf("got %t, %v", v, err)
			}
		})
	}
}

func TestTableOverridesExpr(t *testing.T) {
	m := build(t, `
domain: 3
funcs:
  - name: f
    arity: 1
    expr: "0"
    table: [{args: [2], value: 1}]
preds:
  - name: r
    arity: 1
    expr: "true"
    table: [{args: [1], value: false}]
`, YAML)
	for d, want := range []int{0, 0, 1} {
		if got, err := m.FuncValue("f", []int{d}); err != nil || got != want {
			t.Errorf("f(%d) = %d, %v", d, got, err)
		}
	}
	for d, want := range []bool{true, false, true} {
		if got, err := m.PredValue("r", []int{d}); err != nil || got != want {
			t.Errorf("r(%d) = %t, %v", d, got, err)
		}
	}
}

func TestPatches(t *testing.T) {
	merge := Patch{Format: YAML, Data: []byte(`
vars: {y: 0}
`)}
	ops := Patch{Format: JSON, Data: []byte(`[
  {"op": "replace", "path": "/preds/1/table/0/value", "value": false}
]`)}
	m := build(t, scenarioYAML, YAML, merge, ops)
	if diff := cmp.Diff(model.Assignment{"x": 0, "y": 0}, m.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	if v, err := m.Evaluate(ir.P("q")); err != nil || v {
		t.Errorf("q = %t, %v", v, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.toml")
	if err := os.WriteFile(path, []byte(scenarioTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	patch := filepath.Join(dir, "p.json")
	if err := os.WriteFile(patch, []byte(`{"domain": 2, "vars": {"z": 1}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, patch)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(model.Assignment{"x": 0, "y": 1, "z": 1}, m.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	if _, err := Load(filepath.Join(dir, "m.txt")); !errors.Is(err, ErrFormat) {
		t.Errorf("got %v, want ErrFormat", err)
	}
}

func TestSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown field", "domain: 2\ndomian: 3\n", ErrSpec},
		{"negative domain", "domain: -1\n", ErrSpec},
		{"var out of domain", "domain: 2\nvars: {x: 2}\n", model.ErrDomain},
		{"arity mismatch", "domain: 2\nfuncs: [{name: f, arity: 1, table: [{args: [0, 1], value: 0}]}]\n", ErrSpec},
		{"value out of domain", "domain: 2\nfuncs: [{name: f, arity: 1, expr: \"args[0] + 1\"}]\n", model.ErrDomain},
		{"bad expr", "domain: 2\npreds: [{name: p, arity: 1, expr: \"args[0] +\"}]\n", ErrSpec},
		{"expr and holds", "domain: 2\npreds: [{name: p, arity: 1, expr: \"true\", holds: [[0]]}]\n", ErrSpec},
		{"no name", "domain: 2\npreds: [{arity: 1}]\n", ErrSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Decode([]byte(tt.src), YAML)
			if err == nil {
				_, err = spec.Build()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": YAML, "b.YML": YAML, "c.json": JSON, "d.toml": TOML,
	} {
		got, err := ParseFormat(path)
		if err != nil || got != want {
			t.Errorf("%s: got %s, %v", path, got, err)
		}
	}
}
