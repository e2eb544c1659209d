package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/fol/ir"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ParenColor ColorAttr = iota
	MarkerColor
	SymbolColor
	FreeColor
	BoundColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: ParenColor}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = MarkerColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.ForallKind, Attr: MarkerColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.ExistsKind, Attr: MarkerColor}] = color.RGB(196, 96, 16).SprintfFunc()

	colors.Map[Colorable{Kind: ir.VarKind, Attr: FreeColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.VarKind, Attr: BoundColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ir.FuncKind, Attr: SymbolColor}] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[Colorable{Kind: ir.PredKind, Attr: SymbolColor}] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
