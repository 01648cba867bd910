package cell

// CharCell is a cell holding a single character.
type CharCell struct {
	*Cell[rune]
}

// NewCharCell creates a character cell.
func NewCharCell(g *Graph, initial rune) *CharCell {
	return &CharCell{New(g, initial)}
}

// MapString derives a cell holding the character as a one-character string.
func (c *CharCell) MapString() (*StringCell, error) {
	return c.MapStringWith(func(r rune) string { return string(r) })
}

// MapAsInt derives an Int cell holding the code point.
func (c *CharCell) MapAsInt() (*NumberCell, error) {
	return c.MapInt(func(r rune) int32 { return r })
}
