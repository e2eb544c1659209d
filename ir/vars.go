package ir

// FreeVars returns the names of variables occurring in f outside the scope
// of any quantifier binding the same name.
func FreeVars(f Formula) VarSet {
	res := NewVarSet()
	freeVars(f, map[string]int{}, res)
	return res
}

// bound counts the enclosing binders of each name on the current path.
func freeVars(n Node, bound map[string]int, res VarSet) {
	switch x := n.(type) {
	case *Var:
		if bound[x.Name] == 0 {
			res.Add(x.Name)
		}
		return
	case *Forall:
		bound[x.Var]++
		freeVars(x.Body, bound, res)
		bound[x.Var]--
		return
	case *Exists:
		bound[x.Var]++
		freeVars(x.Body, bound, res)
		bound[x.Var]--
		return
	}
	for _, c := range Children(n) {
		freeVars(c, bound, res)
	}
}

// BoundVars returns the names bound by some quantifier in f, whether or not
// the body refers to them.
func BoundVars(f Formula) VarSet {
	res := NewVarSet()
	Walk(f, func(n Node) bool {
		if v, ok := Binder(n); ok {
			res.Add(v)
		}
		return true
	})
	return res
}

// Shadowed returns, in pre-order, the binders of f which rebind a name
// already bound by an enclosing quantifier.
func Shadowed(f Formula) []string {
	var res []string
	var visit func(Node, map[string]int)
	visit = func(n Node, bound map[string]int) {
		v, ok := Binder(n)
		if ok {
			if bound[v] > 0 {
				res = append(res, v)
			}
			bound[v]++
		}
		for _, c := range Children(n) {
			visit(c, bound)
		}
		if ok {
			bound[v]--
		}
	}
	visit(f, map[string]int{})
	return res
}
