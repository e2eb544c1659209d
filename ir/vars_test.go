package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreeBoundVars(t *testing.T) {
	x, y, z := V("x"), V("y"), V("z")
	tests := []struct {
		name        string
		f           Formula
		free, bound []string
	}{
		{
			name: "atom",
			f:    P("p", x, F("f", y)),
			free: []string{"x", "y"},
		},
		{
			name:  "closed",
			f:     All("x", P("p", x)),
			free:  []string{},
			bound: []string{"x"},
		},
		{
			name:  "vacuous binder",
			f:     Some("z", P("p", x)),
			free:  []string{"x"},
			bound: []string{"z"},
		},
		{
			name:  "scope is the body only",
			f:     Conj(All("x", P("p", x)), P("q", x)),
			free:  []string{"x"},
			bound: []string{"x"},
		},
		{
			name:  "shadowing",
			f:     All("x", Some("x", Eq(x, F("g", y, z)))),
			free:  []string{"y", "z"},
			bound: []string{"x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free := FreeVars(tt.f).Sorted()
			if tt.free == nil {
				tt.free = []string{}
			}
			if diff := cmp.Diff(tt.free, free); diff != "" {
				t.Errorf("free mismatch (-want +got):\n%s", diff)
			}
			bound := BoundVars(tt.f).Sorted()
			if tt.bound == nil {
				tt.bound = []string{}
			}
			if diff := cmp.Diff(tt.bound, bound); diff != "" {
				t.Errorf("bound mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShadowed(t *testing.T) {
	x := V("x")
	f := All("x", Conj(Some("y", P("p", x)), Some("x", All("y", All("x", P("q"))))))
	if diff := cmp.Diff([]string{"x", "x"}, Shadowed(f)); diff != "" {
		t.Errorf("shadowed mismatch (-want +got):\n%s", diff)
	}
	if got := Shadowed(All("x", Some("y", P("p", x)))); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestWalk(t *testing.T) {
	f := Conj(Neg(P("p", F("f", V("x")))), Eq(V("y"), V("z")))
	var got []Kind
	Walk(f, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != EqualKind
	})
	want := []Kind{AndKind, NotKind, PredKind, FuncKind, VarKind, EqualKind}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestSame(t *testing.T) {
	a := All("x", P("p", V("x"), F("c")))
	tests := []struct {
		b    Formula
		want bool
	}{
		{All("x", P("p", V("x"), F("c"))), true},
		{All("y", P("p", V("x"), F("c"))), false},
		{Some("x", P("p", V("x"), F("c"))), false},
		{All("x", P("p", V("x"), V("c"))), false},
		{All("x", P("p", V("x"))), false},
	}
	for i, tt := range tests {
		if got := Same(a, tt.b); got != tt.want {
			t.Errorf("%d: got %t", i, got)
		}
	}
}
