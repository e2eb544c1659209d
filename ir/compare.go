package ir

// Same reports whether a and b are structurally equal trees.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Var:
		return x.Name == b.(*Var).Name
	case *Func:
		y := b.(*Func)
		return x.Name == y.Name && equalTerms(x.Args, y.Args)
	case *Pred:
		y := b.(*Pred)
		return x.Name == y.Name && equalTerms(x.Args, y.Args)
	}
	if a.Kind().IsQuantifier() {
		va, _ := Binder(a)
		vb, _ := Binder(b)
		if va != vb {
			return false
		}
	}
	ca, cb := Children(a), Children(b)
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !Same(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
