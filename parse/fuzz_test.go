package parse

import (
	"errors"
	"testing"

	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/ir"
)

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		scenario,
		"q",
		"(p (f x) (g))",
		"(Ev (v a b))",
		"(V x (E y (= (f x) y)))",
		"(( )",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		g, err := ParseString(src)
		if err != nil {
			if !errors.Is(err, ErrParse) {
				t.Fatalf("%q: error %v is not ErrParse", src, err)
			}
			return
		}
		out := encode.MustString(g)
		h, err := ParseString(out)
		if err != nil {
			t.Fatalf("%q rendered as %q: %v", src, out, err)
		}
		if !ir.Same(g, h) {
			t.Fatalf("%q rendered as %q parses differently", src, out)
		}
	})
}
