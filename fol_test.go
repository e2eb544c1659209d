package fol

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/model"
	"github.com/signadot/fol/parse"
)

const src = `
(Vx0 (Ex1 (^ (= (a x y) (b x y)) (v (~ (p y)) q))))
(E z (p z))
q
`

func toolModel() *model.FiniteModel {
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

func TestRun(t *testing.T) {
	for _, g := range []bool{false, true} {
		tool := &Tool{Model: toolModel(), Ground: g}
		res, err := tool.Run([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		var got []bool
		for _, r := range res {
			got = append(got, r.Value)
		}
		if diff := cmp.Diff([]bool{false, true, true}, got); diff != "" {
			t.Errorf("ground=%t values mismatch (-want +got):\n%s", g, diff)
		}
		if diff := cmp.Diff([]string{"x", "y"}, res[0].Free); diff != "" {
			t.Errorf("free mismatch (-want +got):\n%s", diff)
		}
		for i, r := range res {
			if r.Grounded != g {
				t.Errorf("ground=%t: formula %d grounded=%t", g, i, r.Grounded)
			}
		}
	}
}

func TestRunGroundSkippedBranch(t *testing.T) {
	m := model.New(2)
	m.SetPred("t", nil, true)
	m.SetPred("p", []int{0}, false)
	m.SetPred("p", []int{1}, true)
	tool := &Tool{Model: m, Ground: true}
	// z is unassigned, but short circuiting never reaches (p z).
	res, err := tool.Run([]byte("(v t (p z))\n(E y (p y))"))
	if err != nil {
		t.Fatal(err)
	}
	type vg struct{ Value, Grounded bool }
	var got []vg
	for _, r := range res {
		got = append(got, vg{r.Value, r.Grounded})
	}
	want := []vg{{true, false}, {true, true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	if _, err := tool.Run([]byte("(^ t (p z))")); !errors.Is(err, model.ErrUnassigned) {
		t.Errorf("got %v, want ErrUnassigned", err)
	}
}

func TestRunNoModel(t *testing.T) {
	res, err := (&Tool{}).Run([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Fatalf("got %d results", len(res))
	}
}

func TestRunErrors(t *testing.T) {
	tool := &Tool{Model: toolModel()}
	if _, err := tool.Run([]byte("(p x")); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
	if _, err := tool.Run([]byte("q (r x)")); !errors.Is(err, model.ErrUnassigned) {
		t.Errorf("got %v, want ErrUnassigned", err)
	}
	tool.ParseOpts = []parse.ParseOption{parse.ParseStrict()}
	if _, err := tool.Run([]byte("(^ (p x) (p x y))")); !errors.Is(err, ir.ErrArity) {
		t.Errorf("got %v, want ErrArity", err)
	}
}

func TestAnalyze(t *testing.T) {
	as, err := Analyze([]byte(src + "(V x (^ (f x) (E x (= (f x) x))))"))
	if err != nil {
		t.Fatal(err)
	}
	if len(as) != 4 {
		t.Fatalf("got %d analyses", len(as))
	}
	a := as[0]
	want := Analysis{
		Formula: a.Formula,
		Free:    []string{"x", "y"},
		Bound:   []string{"x0", "x1"},
		Funcs:   []ir.Symbol{{Name: "a", Arity: 2}, {Name: "b", Arity: 2}},
		Preds:   []ir.Symbol{{Name: "p", Arity: 1}, {Name: "q", Arity: 0}},
	}
	if diff := cmp.Diff(want, a, cmp.Comparer(func(x, y ir.Formula) bool { return ir.Same(x, y) })); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
	last := as[3]
	if diff := cmp.Diff([]string{"x"}, last.Shadowed); diff != "" {
		t.Errorf("shadowed mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(last.Conflicts, ir.ErrArity) {
		t.Errorf("got %v, want ErrArity", last.Conflicts)
	}
}

func TestAnalyzeWarnings(t *testing.T) {
	as, err := Analyze([]byte("(E x (p x))\n(Even x)\nq\n(^ (Vy r) (Ez s))"))
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for _, a := range as {
		for _, w := range a.Warnings {
			if !errors.Is(w, parse.ErrCompactAtom) {
				t.Errorf("got %v", w)
			}
		}
		got = append(got, len(a.Warnings))
	}
	if diff := cmp.Diff([]int{0, 1, 0, 2}, got); diff != "" {
		t.Errorf("warning counts mismatch (-want +got):\n%s", diff)
	}
}
