package ir

func V(name string) *Var {
	return &Var{Name: name}
}

func F(name string, args ...Term) *Func {
	return &Func{Name: name, Args: args}
}

func P(name string, args ...Term) *Pred {
	return &Pred{Name: name, Args: args}
}

func All(v string, body Formula) *Forall {
	return &Forall{Var: v, Body: body}
}

func Some(v string, body Formula) *Exists {
	return &Exists{Var: v, Body: body}
}

func Conj(l, r Formula) *And {
	return &And{Left: l, Right: r}
}

func Disj(l, r Formula) *Or {
	return &Or{Left: l, Right: r}
}

func Neg(f Formula) *Not {
	return &Not{Body: f}
}

func Eq(l, r Term) *Equal {
	return &Equal{Left: l, Right: r}
}
