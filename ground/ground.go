package ground

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/signadot/fol/debug"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/model"
)

// Atom is a predicate instance and its circuit input.
type Atom struct {
	Symbol ir.Symbol
	Args   []int
	Value  bool
	Lit    z.Lit
}

type atomKey struct {
	sym ir.Symbol
	key model.Key
}

type Circuit struct {
	C     *logic.C
	Root  z.Lit
	Atoms []Atom
}

type grounder struct {
	m     *model.FiniteModel
	env   model.Assignment
	c     *logic.C
	atoms map[atomKey]int
	res   *Circuit
}

// Ground builds the circuit of f over m, starting from m.Vars.
func Ground(m *model.FiniteModel, f ir.Formula) (*Circuit, error) {
	g := &grounder{
		m:     m,
		env:   maps.Clone(m.Vars),
		c:     logic.NewC(),
		atoms: map[atomKey]int{},
	}
	if g.env == nil {
		g.env = model.Assignment{}
	}
	g.res = &Circuit{C: g.c}
	root, err := g.formula(f)
	if err != nil {
		return nil, err
	}
	g.res.Root = root
	if debug.Ground() {
		debug.Logf("ground %s: %d atoms\n", f, len(g.res.Atoms))
	}
	return g.res, nil
}

// Evaluate decides f in m through its circuit.
func Evaluate(m *model.FiniteModel, f ir.Formula) (bool, error) {
	c, err := Ground(m, f)
	if err != nil {
		return false, err
	}
	return c.Solve(), nil
}

// Solve reports whether the root holds with every atom fixed to its value.
func (c *Circuit) Solve() bool {
	g := gini.New()
	c.C.ToCnf(g)
	for _, a := range c.Atoms {
		if a.Value {
			g.Assume(a.Lit)
		} else {
			g.Assume(a.Lit.Not())
		}
	}
	g.Assume(c.Root)
	return g.Solve() == 1
}

func (g *grounder) formula(f ir.Formula) (z.Lit, error) {
	switch x := f.(type) {
	case *ir.Forall:
		return g.quantifier(x.Var, x.Body, true)
	case *ir.Exists:
		return g.quantifier(x.Var, x.Body, false)
	case *ir.And:
		return g.binary(x.Left, x.Right, true)
	case *ir.Or:
		return g.binary(x.Left, x.Right, false)
	case *ir.Not:
		b, err := g.formula(x.Body)
		return b.Not(), err
	case *ir.Equal:
		l, err := g.m.Term(x.Left, g.env)
		if err != nil {
			return g.c.F, err
		}
		r, err := g.m.Term(x.Right, g.env)
		if err != nil {
			return g.c.F, err
		}
		if l == r {
			return g.c.T, nil
		}
		return g.c.F, nil
	case *ir.Pred:
		return g.atom(x)
	default:
		return g.c.F, fmt.Errorf("unknown formula %T", f)
	}
}

func (g *grounder) binary(l, r ir.Formula, and bool) (z.Lit, error) {
	ll, err := g.formula(l)
	if err != nil {
		return g.c.F, err
	}
	rl, err := g.formula(r)
	if err != nil {
		return g.c.F, err
	}
	if and {
		return g.c.And(ll, rl), nil
	}
	return g.c.Or(ll, rl), nil
}

func (g *grounder) quantifier(v string, body ir.Formula, forall bool) (z.Lit, error) {
	if g.m.Size == 0 {
		if forall {
			return g.c.T, nil
		}
		return g.c.F, nil
	}
	old, had := g.env[v]
	defer func() {
		if had {
			g.env[v] = old
			return
		}
		delete(g.env, v)
	}()
	lits := make([]z.Lit, 0, g.m.Size)
	for d := 0; d < g.m.Size; d++ {
		g.env[v] = d
		b, err := g.formula(body)
		if err != nil {
			return g.c.F, err
		}
		lits = append(lits, b)
	}
	if forall {
		return g.c.Ands(lits...), nil
	}
	return g.c.Ors(lits...), nil
}

func (g *grounder) atom(p *ir.Pred) (z.Lit, error) {
	args := make([]int, len(p.Args))
	for i, t := range p.Args {
		d, err := g.m.Term(t, g.env)
		if err != nil {
			return g.c.F, err
		}
		args[i] = d
	}
	k := atomKey{sym: p.Symbol(), key: model.KeyOf(args)}
	if i, ok := g.atoms[k]; ok {
		return g.res.Atoms[i].Lit, nil
	}
	v, err := g.m.PredValue(p.Name, args)
	if err != nil {
		return g.c.F, err
	}
	a := Atom{Symbol: k.sym, Args: slices.Clone(args), Value: v, Lit: g.c.Lit()}
	g.atoms[k] = len(g.res.Atoms)
	g.res.Atoms = append(g.res.Atoms, a)
	return a.Lit, nil
}
