package encode

type EncodeOption func(*EncState)

// EncodeIndent lays compound formulas out over several lines, indenting
// each level by n spaces.  n == 0 writes a single line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
