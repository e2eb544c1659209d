package encode

import (
	"io"
	"strings"

	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/token"
)

type EncState struct {
	indent int
	wide   bool

	bound map[string]int
	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes f in the grammar accepted by the parse package, followed by
// a newline.
func Encode(f ir.Formula, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{bound: map[string]int{}}
	for _, opt := range opts {
		opt(es)
	}
	buf := &strings.Builder{}
	es.formula(buf, f, 0)
	buf.WriteString("\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) open(b *strings.Builder, k ir.Kind) {
	b.WriteString(es.color(k, ParenColor, "("))
}

func (es *EncState) close(b *strings.Builder, k ir.Kind) {
	b.WriteString(es.color(k, ParenColor, ")"))
}

func (es *EncState) marker(b *strings.Builder, k ir.Kind, tt token.TokenType) {
	b.WriteString(es.color(k, MarkerColor, tt.Lexeme()))
}

func (es *EncState) newline(b *strings.Builder, depth int) {
	if es.indent == 0 {
		b.WriteString(" ")
		return
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", depth*es.indent))
}

// sep separates the children of a compound formula; atoms and negated atoms
// stay on one line.
func (es *EncState) sep(b *strings.Builder, child ir.Formula, depth int) {
	if isFlat(child) {
		b.WriteString(" ")
		return
	}
	es.newline(b, depth)
}

func isFlat(f ir.Formula) bool {
	if n, ok := f.(*ir.Not); ok {
		return isFlat(n.Body)
	}
	return f.Kind().IsAtom()
}

func (es *EncState) formula(b *strings.Builder, f ir.Formula, depth int) {
	switch x := f.(type) {
	case *ir.Forall:
		es.quantifier(b, x.Kind(), token.TForall, x.Var, x.Body, depth)
	case *ir.Exists:
		es.quantifier(b, x.Kind(), token.TExists, x.Var, x.Body, depth)
	case *ir.And:
		es.binary(b, x.Kind(), token.TAnd, x.Left, x.Right, depth)
	case *ir.Or:
		es.binary(b, x.Kind(), token.TOr, x.Left, x.Right, depth)
	case *ir.Not:
		es.open(b, x.Kind())
		es.marker(b, x.Kind(), token.TNot)
		es.sep(b, x.Body, depth+1)
		es.formula(b, x.Body, depth+1)
		es.close(b, x.Kind())
	case *ir.Equal:
		es.open(b, x.Kind())
		es.marker(b, x.Kind(), token.TEqual)
		b.WriteString(" ")
		es.term(b, x.Left)
		b.WriteString(" ")
		es.term(b, x.Right)
		es.close(b, x.Kind())
	case *ir.Pred:
		name := es.color(x.Kind(), SymbolColor, x.Name)
		if len(x.Args) == 0 {
			b.WriteString(name)
			return
		}
		es.open(b, x.Kind())
		b.WriteString(name)
		for _, a := range x.Args {
			b.WriteString(" ")
			es.term(b, a)
		}
		es.close(b, x.Kind())
	}
}

func (es *EncState) quantifier(b *strings.Builder, k ir.Kind, tt token.TokenType, v string, body ir.Formula, depth int) {
	es.open(b, k)
	es.marker(b, k, tt)
	// a binder spelled like a marker only survives in compact form
	if !reserved(v) {
		b.WriteString(" ")
	}
	b.WriteString(es.color(ir.VarKind, BoundColor, v))
	es.bound[v]++
	es.sep(b, body, depth+1)
	es.formula(b, body, depth+1)
	es.bound[v]--
	es.close(b, k)
}

func (es *EncState) binary(b *strings.Builder, k ir.Kind, tt token.TokenType, l, r ir.Formula, depth int) {
	es.open(b, k)
	es.marker(b, k, tt)
	es.sep(b, l, depth+1)
	es.formula(b, l, depth+1)
	es.sep(b, r, depth+1)
	es.formula(b, r, depth+1)
	es.close(b, k)
}

func (es *EncState) term(b *strings.Builder, t ir.Term) {
	switch x := t.(type) {
	case *ir.Var:
		attr := FreeColor
		if es.bound[x.Name] > 0 {
			attr = BoundColor
		}
		b.WriteString(es.color(x.Kind(), attr, x.Name))
	case *ir.Func:
		es.open(b, x.Kind())
		b.WriteString(es.color(x.Kind(), SymbolColor, x.Name))
		for _, a := range x.Args {
			b.WriteString(" ")
			es.term(b, a)
		}
		es.close(b, x.Kind())
	}
}

func reserved(name string) bool {
	toks := token.Tokenize(name)
	return len(toks) == 1 && toks[0].Type.IsMarker()
}
