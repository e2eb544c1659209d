package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/fol/ir"
)

func MustString(f ir.Formula, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(f, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
