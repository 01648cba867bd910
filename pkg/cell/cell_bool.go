package cell

// BoolCell is a cell holding a bool.
type BoolCell struct {
	*Cell[bool]
}

// NewBoolCell creates a boolean cell.
func NewBoolCell(g *Graph, initial bool) *BoolCell {
	return &BoolCell{New(g, initial)}
}

// Toggle inverts the value.
func (b *BoolCell) Toggle() error {
	return b.Update(func(v bool) bool { return !v })
}

// SetTrue sets the value to true.
func (b *BoolCell) SetTrue() error {
	return b.Set(true)
}

// SetFalse sets the value to false.
func (b *BoolCell) SetFalse() error {
	return b.Set(false)
}

// Negated derives a cell holding the inverse of the value.
func (b *BoolCell) Negated() (*BoolCell, error) {
	return b.MapBoolean(func(v bool) bool { return !v })
}

// MapAnd derives a cell holding value && other.
func (b *BoolCell) MapAnd(other bool) (*BoolCell, error) {
	return b.MapBoolean(func(v bool) bool { return v && other })
}

// MapOr derives a cell holding value || other.
func (b *BoolCell) MapOr(other bool) (*BoolCell, error) {
	return b.MapBoolean(func(v bool) bool { return v || other })
}
