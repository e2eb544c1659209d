package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/token"
)

const scenario = "(Vx0 (Ex1 (^ (= (a x y) (b x y)) (v (~ (p y)) q))))"

func TestParseScenario(t *testing.T) {
	x, y := ir.V("x"), ir.V("y")
	want := ir.All("x0", ir.Some("x1", ir.Conj(
		ir.Eq(ir.F("a", x, y), ir.F("b", x, y)),
		ir.Disj(ir.Neg(ir.P("p", y)), ir.P("q")))))
	got, err := ParseString(scenario)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.Formula(want), got); diff != "" {
		t.Errorf("ast mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, ir.FreeVars(got).Sorted()); diff != "" {
		t.Errorf("free vars mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x0", "x1"}, ir.BoundVars(got).Sorted()); diff != "" {
		t.Errorf("bound vars mismatch (-want +got):\n%s", diff)
	}
	wantFuncs := []ir.Symbol{{Name: "a", Arity: 2}, {Name: "b", Arity: 2}}
	if diff := cmp.Diff(wantFuncs, ir.Funcs(got).Sorted()); diff != "" {
		t.Errorf("funcs mismatch (-want +got):\n%s", diff)
	}
	wantPreds := []ir.Symbol{{Name: "p", Arity: 1}, {Name: "q", Arity: 0}}
	if diff := cmp.Diff(wantPreds, ir.Preds(got).Sorted()); diff != "" {
		t.Errorf("preds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOK(t *testing.T) {
	x := ir.V("x")
	tests := []struct {
		in   string
		want ir.Formula
	}{
		{"q", ir.P("q")},
		{"(q)", ir.P("q")},
		{"(p x)", ir.P("p", x)},
		{"(p (c))", ir.P("p", ir.F("c"))},
		{"(p (f (g x)))", ir.P("p", ir.F("f", ir.F("g", x)))},
		{"(V x (p x))", ir.All("x", ir.P("p", x))},
		{"(E  x\n (p x))", ir.Some("x", ir.P("p", x))},
		{"(V x q)", ir.All("x", ir.P("q"))},
		{"(~ (~ q))", ir.Neg(ir.Neg(ir.P("q")))},
		{"(= x x)", ir.Eq(x, x)},
		{"(v q (^ r s))", ir.Disj(ir.P("q"), ir.Conj(ir.P("r"), ir.P("s")))},
		{"(= (Vsucc x) y)", ir.Eq(ir.F("Vsucc", x), ir.V("y"))},
		{"(p (Ex) (Vsucc (Even x)))", ir.P("p", ir.F("Ex"), ir.F("Vsucc", ir.F("Even", x)))},
		{"(Ex (= (Ex) x))", ir.Some("x", ir.Eq(ir.F("Ex"), x))},
	}
	for _, tt := range tests {
		got, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseTokens(t *testing.T) {
	toks := []token.Token{
		token.Mark(token.TLParen), token.Mark(token.TNot),
		token.Symbol("q"),
		token.Mark(token.TRParen),
	}
	got, err := Parse(toks)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.Formula(ir.Neg(ir.P("q"))), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrUnexpectedEOF},
		{"(p x", ErrUnexpectedEOF},
		{"(V x q", ErrUnexpectedEOF},
		{"(V x", ErrUnexpectedEOF},
		{"(", ErrUnexpectedEOF},
		{"(~ q r)", ErrExpectedRParen},
		{"(= x y z)", ErrExpectedRParen},
		{"(V ^ q)", ErrReservedName},
		{"(p v)", ErrReservedName},
		{"(p (= x))", ErrReservedName},
		{"(= (f x) (V))", ErrReservedName},
		{"(= (V x) y)", ErrReservedName},
		{"~", ErrReservedName},
		{"((p))", ErrBadHead},
		{"())", ErrBadHead},
		{")", ErrUnexpected},
		{"(p ))", ErrTrailing},
		{"q r", ErrTrailing},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.want)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v is not ErrParse", tt.in, err)
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: got %T", tt.in, err)
		}
	}
}

func TestParseErrorPos(t *testing.T) {
	_, err := ParseString("(^ q\n  (~ q r))")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	want := token.Pos{I: 12, Line: 1, Col: 7}
	if diff := cmp.Diff(want, pe.Pos); diff != "" {
		t.Errorf("pos mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMulti(t *testing.T) {
	fs, err := ParseMultiString("q (p x)\n(V y (p y))")
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Formula{ir.P("q"), ir.P("p", ir.V("x")), ir.All("y", ir.P("p", ir.V("y")))}
	if diff := cmp.Diff(want, fs); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	fs, err = ParseMultiString("")
	if err != nil || len(fs) != 0 {
		t.Errorf("empty: got %v, %v", fs, err)
	}
	_, err = ParseMultiString("q (p x")
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[ir.Node]token.Pos{}
	f, err := ParseString("(V x\n  (p x))", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	q := f.(*ir.Forall)
	p := q.Body.(*ir.Pred)
	if got := pos[q]; got.I != 0 {
		t.Errorf("forall at %s", got)
	}
	if got := pos[p]; got.Line != 1 || got.Col != 2 {
		t.Errorf("pred at %s", got)
	}
	if got := pos[p.Args[0]]; got.I != 10 {
		t.Errorf("var at %s", got)
	}
}

func TestParseStrict(t *testing.T) {
	src := "(^ (p x) (p x y))"
	if _, err := ParseString(src); err != nil {
		t.Errorf("permissive: %v", err)
	}
	if _, err := ParseString(src, ParseStrict()); !errors.Is(err, ir.ErrArity) {
		t.Errorf("strict: got %v, want ErrArity", err)
	}
}

func TestParseTokenOpts(t *testing.T) {
	f, err := ParseString("(Vx q)", ParseTokenOpts(token.NoCompactBinders()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.Formula(ir.P("Vx", ir.V("q"))), f); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWarnings(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"(Even x)", []string{"Even x reads as (E ven x)"}},
		{"(Vx q)", []string{"Vx q reads as (V x q)"}},
		{"(E ven x)", nil},
		{"(Ex (p x))", nil},
		{"(Ex (Vy q))", []string{"Vy q reads as (V y q)"}},
		{"(= (Vsucc x) y) (Eodd z)", []string{"Eodd z reads as (E odd z)"}},
		{scenario, nil},
	}
	for _, tt := range tests {
		var warns []error
		if _, err := ParseMultiString(tt.in, ParseWarnings(&warns)); err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		var got []string
		for _, w := range warns {
			var pe *Error
			if !errors.As(w, &pe) || !errors.Is(w, ErrCompactAtom) || errors.Is(w, ErrParse) {
				t.Errorf("%q: unexpected warning %v", tt.in, w)
				continue
			}
			got = append(got, pe.Detail)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q warnings mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
	var warns []error
	if _, err := ParseString("(Even x)", ParseWarnings(&warns)); err != nil {
		t.Fatal(err)
	}
	if got := warns[0].(*Error).Pos; got.I != 1 {
		t.Errorf("warning at %s", got)
	}
}
