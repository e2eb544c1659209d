package ir

// Node is a Term or a Formula.
type Node interface {
	Kind() Kind
}

// Term is a *Var or a *Func.
type Term interface {
	Node
	term()
}

// Formula is one of *Forall, *Exists, *And, *Or, *Not, *Equal or *Pred.
type Formula interface {
	Node
	formula()
}

// Var is a variable reference, identified by name only.
type Var struct {
	Name string
}

// Func applies a function symbol to its arguments.
type Func struct {
	Name string
	Args []Term
}

type Forall struct {
	Var  string
	Body Formula
}

type Exists struct {
	Var  string
	Body Formula
}

type And struct {
	Left, Right Formula
}

type Or struct {
	Left, Right Formula
}

type Not struct {
	Body Formula
}

type Equal struct {
	Left, Right Term
}

// Pred applies a predicate symbol to its arguments.  A Pred with no
// arguments is a propositional atom.
type Pred struct {
	Name string
	Args []Term
}

func (*Var) Kind() Kind    { return VarKind }
func (*Func) Kind() Kind   { return FuncKind }
func (*Forall) Kind() Kind { return ForallKind }
func (*Exists) Kind() Kind { return ExistsKind }
func (*And) Kind() Kind    { return AndKind }
func (*Or) Kind() Kind     { return OrKind }
func (*Not) Kind() Kind    { return NotKind }
func (*Equal) Kind() Kind  { return EqualKind }
func (*Pred) Kind() Kind   { return PredKind }

func (*Var) term()  {}
func (*Func) term() {}

func (*Forall) formula() {}
func (*Exists) formula() {}
func (*And) formula()    {}
func (*Or) formula()     {}
func (*Not) formula()    {}
func (*Equal) formula()  {}
func (*Pred) formula()   {}

// Symbol returns the non-logical symbol of f.
func (f *Func) Symbol() Symbol {
	return Symbol{Name: f.Name, Arity: len(f.Args)}
}

// Symbol returns the non-logical symbol of p.
func (p *Pred) Symbol() Symbol {
	return Symbol{Name: p.Name, Arity: len(p.Args)}
}

// Children returns the direct sub-nodes of n in source order.
func Children(n Node) []Node {
	switch x := n.(type) {
	case *Var:
		return nil
	case *Func:
		return terms(x.Args)
	case *Forall:
		return []Node{x.Body}
	case *Exists:
		return []Node{x.Body}
	case *And:
		return []Node{x.Left, x.Right}
	case *Or:
		return []Node{x.Left, x.Right}
	case *Not:
		return []Node{x.Body}
	case *Equal:
		return []Node{x.Left, x.Right}
	case *Pred:
		return terms(x.Args)
	}
	return nil
}

func terms(ts []Term) []Node {
	res := make([]Node, len(ts))
	for i, t := range ts {
		res[i] = t
	}
	return res
}

// Binder returns the variable bound by a quantifier node.
func Binder(n Node) (string, bool) {
	switch x := n.(type) {
	case *Forall:
		return x.Var, true
	case *Exists:
		return x.Var, true
	}
	return "", false
}
