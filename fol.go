// Package fol parses first order logic formulas, analyzes their symbols and
// evaluates them over finite models.
//
// The work is split over several packages: token and parse read the
// parenthesized prefix syntax into the ir representation, model evaluates
// ir formulas, modelfile loads models from documents and ground checks
// evaluation through a SAT solver.  Tool ties them together for commands.
package fol

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/fol/debug"
	"github.com/signadot/fol/ground"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/model"
	"github.com/signadot/fol/parse"
	"github.com/signadot/fol/token"
)

var ErrGroundMismatch = errors.New("grounded and direct evaluation disagree")

type Tool struct {
	Model *model.FiniteModel
	// Ground cross checks every evaluation through package ground.
	Ground    bool
	ParseOpts []parse.ParseOption
	EvalOpts  []model.EvalOption
}

type Result struct {
	Formula ir.Formula
	Value   bool
	Free    []string
	// Grounded is set when the ground cross check ran to completion.
	Grounded bool
}

// Run parses the formulas of src and, when t has a model, evaluates them.
func (t *Tool) Run(src []byte) ([]Result, error) {
	fs, err := parse.ParseMultiString(string(src), t.ParseOpts...)
	if err != nil {
		return nil, err
	}
	res := make([]Result, 0, len(fs))
	for i, f := range fs {
		r := Result{Formula: f, Free: ir.FreeVars(f).Sorted()}
		if t.Model != nil {
			r.Value, r.Grounded, err = t.eval(f)
			if err != nil {
				return res, fmt.Errorf("formula %d: %w", i, err)
			}
		}
		res = append(res, r)
	}
	return res, nil
}

// eval evaluates f and, with t.Ground, compares against the grounded
// circuit.  Grounding visits every branch, so lookups which short circuiting
// skipped may be missing; the check is then inconclusive rather than failed.
func (t *Tool) eval(f ir.Formula) (bool, bool, error) {
	v, err := t.Model.EvaluateWith(f, t.EvalOpts...)
	if err != nil {
		return false, false, err
	}
	if !t.Ground {
		return v, false, nil
	}
	gv, err := ground.Evaluate(t.Model, f)
	switch {
	case errors.Is(err, model.ErrUnassigned):
		if debug.Ground() {
			debug.Logf("ground check of %s inconclusive: %v\n", f, err)
		}
		return v, false, nil
	case err != nil:
		return false, false, err
	case gv != v:
		return false, false, fmt.Errorf("%w: ground %t, eval %t", ErrGroundMismatch, gv, v)
	}
	return v, true, nil
}

type Analysis struct {
	Formula  ir.Formula
	Free     []string
	Bound    []string
	Funcs    []ir.Symbol
	Preds    []ir.Symbol
	Shadowed []string
	// Conflicts holds the arity conflicts of the formula, if any.
	Conflicts error
	// Warnings are likely misreadings, see parse.ErrCompactAtom.
	Warnings []error
}

// Analyze parses the formulas of src and describes their variables and
// symbols.
func Analyze(src []byte, opts ...parse.ParseOption) ([]Analysis, error) {
	pos := map[ir.Node]token.Pos{}
	var warns []error
	opts = append(slices.Clip(opts), parse.ParsePositions(pos), parse.ParseWarnings(&warns))
	fs, err := parse.ParseMultiString(string(src), opts...)
	if err != nil {
		return nil, err
	}
	res := make([]Analysis, len(fs))
	for i, f := range fs {
		sig := ir.SignatureOf(f)
		res[i] = Analysis{
			Formula:   f,
			Free:      ir.FreeVars(f).Sorted(),
			Bound:     ir.BoundVars(f).Sorted(),
			Funcs:     sig.Funcs.Sorted(),
			Preds:     sig.Preds.Sorted(),
			Shadowed:  ir.Shadowed(f),
			Conflicts: sig.Check(),
		}
	}
	// warnings and formulas are both in source order
	i := 0
	for _, w := range warns {
		var pe *parse.Error
		if !errors.As(w, &pe) {
			continue
		}
		for i+1 < len(fs) && pos[fs[i+1]].I <= pe.Pos.I {
			i++
		}
		res[i].Warnings = append(res[i].Warnings, w)
	}
	return res, nil
}
