package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignature(t *testing.T) {
	x := V("x")
	f := Conj(
		P("r", F("f", x), F("f", x, F("f", F("c")))),
		Disj(P("r", x), P("q")))
	sig := SignatureOf(f)
	wantFuncs := []Symbol{{"c", 0}, {"f", 1}, {"f", 2}}
	if diff := cmp.Diff(wantFuncs, sig.Funcs.Sorted()); diff != "" {
		t.Errorf("funcs mismatch (-want +got):\n%s", diff)
	}
	wantPreds := []Symbol{{"q", 0}, {"r", 1}, {"r", 2}}
	if diff := cmp.Diff(wantPreds, sig.Preds.Sorted()); diff != "" {
		t.Errorf("preds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "f"}, sig.Funcs.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	err := sig.Check()
	if !errors.Is(err, ErrArity) {
		t.Fatalf("got %v", err)
	}
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 2 {
		t.Errorf("got %d conflicts: %v", n, err)
	}
}

func TestSignatureMixedRoles(t *testing.T) {
	f := Conj(P("p", V("x")), Eq(F("p", V("x")), V("x")))
	if err := SignatureOf(f).Check(); !errors.Is(err, ErrArity) {
		t.Errorf("got %v", err)
	}
	if err := SignatureOf(P("p", V("x"))).Check(); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestSymbolString(t *testing.T) {
	if got := (Symbol{Name: "a", Arity: 2}).String(); got != "a/2" {
		t.Errorf("got %q", got)
	}
}
