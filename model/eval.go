package model

import (
	"fmt"
	"maps"

	"github.com/signadot/fol/debug"
	"github.com/signadot/fol/ir"
)

func (m *FiniteModel) Evaluate(f ir.Formula) (bool, error) {
	return m.EvaluateWith(f)
}

// EvaluateWith gives the truth value of f in m under m.Vars.  m is not
// modified.
func (m *FiniteModel) EvaluateWith(f ir.Formula, opts ...EvalOption) (bool, error) {
	e := &evaluator{m: m, env: maps.Clone(m.Vars)}
	if e.env == nil {
		e.env = Assignment{}
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	res, err := e.formula(f)
	if debug.Eval() {
		debug.Logf("eval %s = %t (err=%v)\n", f, res, err)
	}
	return res, err
}

// Term gives the domain element t denotes under env.
func (m *FiniteModel) Term(t ir.Term, env Assignment) (int, error) {
	e := &evaluator{m: m, env: env}
	return e.term(t)
}

type evaluator struct {
	m    *FiniteModel
	env  Assignment
	opts evalOpts
}

func (e *evaluator) formula(f ir.Formula) (bool, error) {
	if e.opts.observe != nil {
		e.opts.observe(f)
	}
	switch x := f.(type) {
	case *ir.Forall:
		return e.quantifier(x.Var, x.Body, true)
	case *ir.Exists:
		return e.quantifier(x.Var, x.Body, false)
	case *ir.And:
		return e.binary(x.Left, x.Right, false)
	case *ir.Or:
		return e.binary(x.Left, x.Right, true)
	case *ir.Not:
		b, err := e.formula(x.Body)
		return !b, err
	case *ir.Equal:
		l, err := e.term(x.Left)
		if err != nil {
			return false, err
		}
		r, err := e.term(x.Right)
		if err != nil {
			return false, err
		}
		return l == r, nil
	case *ir.Pred:
		args, err := e.terms(x.Args)
		if err != nil {
			return false, err
		}
		return e.m.PredValue(x.Name, args)
	default:
		return false, fmt.Errorf("unknown formula %T", f)
	}
}

// binary evaluates a conjunction (dominant false) or disjunction
// (dominant true).
func (e *evaluator) binary(l, r ir.Formula, dominant bool) (bool, error) {
	lv, err := e.formula(l)
	if err != nil {
		return false, err
	}
	if lv == dominant && !e.opts.exhaustive {
		return lv, nil
	}
	rv, err := e.formula(r)
	if err != nil {
		return false, err
	}
	if lv == dominant {
		return lv, nil
	}
	return rv, nil
}

// quantifier ranges v over the domain.  Forall stops at the first false
// body, Exists at the first true one.  The previous binding of v is
// restored on return.
func (e *evaluator) quantifier(v string, body ir.Formula, forall bool) (bool, error) {
	old, had := e.env[v]
	defer func() {
		if had {
			e.env[v] = old
			return
		}
		delete(e.env, v)
	}()
	res := forall
	for d := 0; d < e.m.Size; d++ {
		e.env[v] = d
		b, err := e.formula(body)
		if err != nil {
			return false, err
		}
		if b != forall {
			res = b
			if !e.opts.exhaustive {
				return res, nil
			}
		}
	}
	return res, nil
}

func (e *evaluator) term(t ir.Term) (int, error) {
	switch x := t.(type) {
	case *ir.Var:
		d, ok := e.env[x.Name]
		if !ok {
			return 0, &UnassignedError{Kind: ir.VarKind, Name: x.Name}
		}
		return d, nil
	case *ir.Func:
		args, err := e.terms(x.Args)
		if err != nil {
			return 0, err
		}
		return e.m.FuncValue(x.Name, args)
	default:
		return 0, fmt.Errorf("unknown term %T", t)
	}
}

func (e *evaluator) terms(ts []ir.Term) ([]int, error) {
	res := make([]int, len(ts))
	for i, t := range ts {
		d, err := e.term(t)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}
