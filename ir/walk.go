package ir

// Walk visits n and its descendants in pre-order.  Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
