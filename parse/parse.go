package parse

import (
	"fmt"

	"github.com/signadot/fol/debug"
	"github.com/signadot/fol/ir"
	"github.com/signadot/fol/token"
)

// Parse parses exactly one formula from toks.
func Parse(toks []token.Token, opts ...ParseOption) (ir.Formula, error) {
	pOpts := mkOpts(opts)
	p := &parser{toks: toks, opts: pOpts}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		return nil, p.errAt(ErrTrailing, p.toks[p.i])
	}
	if err := finish(f, pOpts); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseMulti parses a sequence of formulas, one after another, until toks
// is exhausted.
func ParseMulti(toks []token.Token, opts ...ParseOption) ([]ir.Formula, error) {
	pOpts := mkOpts(opts)
	p := &parser{toks: toks, opts: pOpts}
	var res []ir.Formula
	for p.i < len(p.toks) {
		f, err := p.formula()
		if err != nil {
			return nil, fmt.Errorf("formula %d: %w", len(res), err)
		}
		if err := finish(f, pOpts); err != nil {
			return nil, fmt.Errorf("formula %d: %w", len(res), err)
		}
		res = append(res, f)
	}
	return res, nil
}

func ParseString(src string, opts ...ParseOption) (ir.Formula, error) {
	return Parse(token.Tokenize(src, mkOpts(opts).tokOpts...), opts...)
}

func ParseMultiString(src string, opts ...ParseOption) ([]ir.Formula, error) {
	return ParseMulti(token.Tokenize(src, mkOpts(opts).tokOpts...), opts...)
}

func mkOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func finish(f ir.Formula, opts *parseOpts) error {
	if debug.Parse() {
		debug.Logf("parsed %s\n", f)
	}
	if !opts.strict {
		return nil
	}
	return ir.SignatureOf(f).Check()
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) track(n ir.Node, t token.Token) {
	if p.opts.positions != nil {
		p.opts.positions[n] = t.Pos
	}
}

func (p *parser) errAt(err error, t token.Token) error {
	return &Error{Err: err, Pos: t.Pos, Detail: fmt.Sprintf("found %q", t.Text())}
}

// eof reports the end of input, positioned at the last token.
func (p *parser) eof(what string) error {
	e := &Error{Err: ErrUnexpectedEOF, Detail: "expected " + what}
	if n := len(p.toks); n > 0 {
		e.Pos = p.toks[n-1].Pos
	}
	return e
}

func (p *parser) next(what string) (token.Token, error) {
	if p.i >= len(p.toks) {
		return token.Token{}, p.eof(what)
	}
	t := p.toks[p.i]
	p.i++
	return t, nil
}

func (p *parser) peekIs(tt token.TokenType) bool {
	return p.i < len(p.toks) && p.toks[p.i].Type == tt
}

// name reads a symbol which names a variable, function or predicate.
func (p *parser) name(what string) (token.Token, error) {
	t, err := p.next(what)
	if err != nil {
		return t, err
	}
	switch {
	case t.Type == token.TSymbol:
		return t, nil
	case t.Type.IsMarker():
		return t, p.errAt(ErrReservedName, t)
	default:
		return t, p.errAt(ErrUnexpected, t)
	}
}

func (p *parser) close() error {
	t, err := p.next(")")
	if err != nil {
		return err
	}
	if t.Type != token.TRParen {
		return p.errAt(ErrExpectedRParen, t)
	}
	return nil
}

func (p *parser) formula() (ir.Formula, error) {
	open, err := p.next("formula")
	if err != nil {
		return nil, err
	}
	switch {
	case open.Type == token.TSymbol:
		f := &ir.Pred{Name: open.Name}
		p.track(f, open)
		return f, nil
	case open.Type.IsMarker():
		return nil, p.errAt(ErrReservedName, open)
	case open.Type != token.TLParen:
		return nil, p.errAt(ErrUnexpected, open)
	}
	head, err := p.next("formula head")
	if err != nil {
		return nil, err
	}
	var f ir.Formula
	switch head.Type {
	case token.TForall, token.TExists:
		f, err = p.quantifier(head)
	case token.TAnd, token.TOr:
		f, err = p.binary(head.Type)
	case token.TNot:
		var body ir.Formula
		body, err = p.formula()
		f = &ir.Not{Body: body}
	case token.TEqual:
		f, err = p.equal()
	case token.TSymbol:
		var args []ir.Term
		args, err = p.args()
		f = &ir.Pred{Name: head.Name, Args: args}
	default:
		return nil, p.errAt(ErrBadHead, head)
	}
	if err != nil {
		return nil, err
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	p.track(f, open)
	return f, nil
}

func (p *parser) quantifier(head token.Token) (ir.Formula, error) {
	v, err := p.name("variable")
	if err != nil {
		return nil, err
	}
	bare := p.peekIs(token.TSymbol)
	body, err := p.formula()
	if err != nil {
		return nil, err
	}
	if bare && v.Pos.I == head.Pos.I+1 {
		p.warnCompact(head, v, body)
	}
	if head.Type == token.TForall {
		return &ir.Forall{Var: v.Name, Body: body}, nil
	}
	return &ir.Exists{Var: v.Name, Body: body}, nil
}

func (p *parser) warnCompact(head, v token.Token, body ir.Formula) {
	atom, ok := body.(*ir.Pred)
	if !ok || p.opts.warnings == nil {
		return
	}
	m := head.Type.Lexeme()
	*p.opts.warnings = append(*p.opts.warnings, &Error{
		Err:    ErrCompactAtom,
		Pos:    head.Pos,
		Detail: fmt.Sprintf("%s%s %s reads as (%s %s %s)", m, v.Name, atom.Name, m, v.Name, atom.Name),
	})
}

func (p *parser) binary(tt token.TokenType) (ir.Formula, error) {
	l, err := p.formula()
	if err != nil {
		return nil, err
	}
	r, err := p.formula()
	if err != nil {
		return nil, err
	}
	if tt == token.TAnd {
		return &ir.And{Left: l, Right: r}, nil
	}
	return &ir.Or{Left: l, Right: r}, nil
}

func (p *parser) equal() (ir.Formula, error) {
	l, err := p.term()
	if err != nil {
		return nil, err
	}
	r, err := p.term()
	if err != nil {
		return nil, err
	}
	return &ir.Equal{Left: l, Right: r}, nil
}

// rejoin undoes a compact binder split of a function name such as Vsucc:
// no term starts with a quantifier, so a marker immediately followed by a
// symbol from the same run is one name.
func (p *parser) rejoin(head token.Token) token.Token {
	if head.Type != token.TForall && head.Type != token.TExists {
		return head
	}
	if !p.peekIs(token.TSymbol) || p.toks[p.i].Pos.I != head.Pos.I+1 {
		return head
	}
	name := head.Type.Lexeme() + p.toks[p.i].Name
	p.i++
	return token.Token{Type: token.TSymbol, Name: name, Pos: head.Pos}
}

// args parses terms up to, not including, the closing paren.
func (p *parser) args() ([]ir.Term, error) {
	var res []ir.Term
	for !p.peekIs(token.TRParen) {
		if p.i >= len(p.toks) {
			return nil, p.eof("term or )")
		}
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func (p *parser) term() (ir.Term, error) {
	open, err := p.next("term")
	if err != nil {
		return nil, err
	}
	switch {
	case open.Type == token.TSymbol:
		v := &ir.Var{Name: open.Name}
		p.track(v, open)
		return v, nil
	case open.Type.IsMarker():
		return nil, p.errAt(ErrReservedName, open)
	case open.Type != token.TLParen:
		return nil, p.errAt(ErrUnexpected, open)
	}
	head, err := p.next("function name")
	if err != nil {
		return nil, err
	}
	head = p.rejoin(head)
	switch {
	case head.Type.IsMarker():
		return nil, p.errAt(ErrReservedName, head)
	case head.Type != token.TSymbol:
		return nil, p.errAt(ErrBadHead, head)
	}
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	fn := &ir.Func{Name: head.Name, Args: args}
	p.track(fn, open)
	return fn, nil
}
