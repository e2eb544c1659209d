package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/fol/encode"
	"github.com/signadot/fol/ir"
)

// Logf writes to stderr, rendering formulas in their text form and maps
// and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, map[string]int, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Formula:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw formula] %v", x)
				continue
			}
			args[i] = string(bytes.TrimSpace(buf.Bytes()))
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
