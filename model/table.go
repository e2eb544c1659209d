package model

import (
	"strconv"
	"strings"
)

// Key identifies an argument tuple in a function or predicate table.
type Key string

func KeyOf(args []int) Key {
	var b []byte
	for i, a := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(a), 10)
	}
	return Key(b)
}

// Args decodes the tuple k was made from.
func (k Key) Args() []int {
	if k == "" {
		return []int{}
	}
	parts := strings.Split(string(k), ",")
	res := make([]int, len(parts))
	for i, p := range parts {
		res[i], _ = strconv.Atoi(p)
	}
	return res
}

type FuncTable map[Key]int

type PredTable map[Key]bool

// Tuples calls fn with every tuple of domain^arity for a domain of size n,
// in lexicographic order, until fn returns false.  The slice passed to fn is
// reused between calls.
func Tuples(n, arity int, fn func([]int) bool) {
	args := make([]int, arity)
	if arity > 0 && n <= 0 {
		return
	}
	for {
		if !fn(args) {
			return
		}
		i := arity - 1
		for ; i >= 0; i-- {
			args[i]++
			if args[i] < n {
				break
			}
			args[i] = 0
		}
		if i < 0 {
			return
		}
	}
}
