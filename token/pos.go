package token

import "fmt"

// Pos locates the first byte of a token.  Line and Col are 0-based, Col
// counts runes.
type Pos struct {
	I    int
	Line int
	Col  int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.I, p.Line, p.Col)
}
