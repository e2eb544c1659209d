package token

import (
	"fmt"
	"io"
)

// PrintTokens writes one line per token: its type, text and position.
func PrintTokens(w io.Writer, toks []Token, msg string) {
	if msg != "" {
		fmt.Fprintf(w, "%s tokens:\n", msg)
	}
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "\t%s `%s` %s\n", t.Type, t.Text(), t.Pos)
	}
}
