package ir

// Kind identifies the variant of a Node.
type Kind int

const (
	VarKind Kind = iota
	FuncKind
	ForallKind
	ExistsKind
	AndKind
	OrKind
	NotKind
	EqualKind
	PredKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		VarKind:    "Var",
		FuncKind:   "Func",
		ForallKind: "Forall",
		ExistsKind: "Exists",
		AndKind:    "And",
		OrKind:     "Or",
		NotKind:    "Not",
		EqualKind:  "Equal",
		PredKind:   "Pred",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func Kinds() []Kind {
	return []Kind{
		VarKind,
		FuncKind,
		ForallKind,
		ExistsKind,
		AndKind,
		OrKind,
		NotKind,
		EqualKind,
		PredKind,
	}
}

// IsQuantifier reports whether k binds a variable.
func (k Kind) IsQuantifier() bool {
	return k == ForallKind || k == ExistsKind
}

// IsAtom reports whether k is an atomic formula.
func (k Kind) IsAtom() bool {
	return k == EqualKind || k == PredKind
}
