package cell

import (
	"unicode/utf8"

	"github.com/vango-dev/cells/pkg/numeric"
)

// StringCell is a cell holding a string.
type StringCell struct {
	*Cell[string]
}

// NewStringCell creates a string cell.
func NewStringCell(g *Graph, initial string) *StringCell {
	return &StringCell{New(g, initial)}
}

// MapNumber derives a number cell by parsing the value with numeric.Parse.
// The kind of the new cell is the kind of the current value's literal; later
// literals are converted to it. A value that does not parse fails the
// derivation, or the Set that produced it.
func (s *StringCell) MapNumber() (*NumberCell, error) {
	return s.MapNumberWith(numeric.Parse)
}

// MapLength derives an Int cell holding the number of runes in the value.
func (s *StringCell) MapLength() (*NumberCell, error) {
	return s.MapInt(func(v string) int32 { return int32(utf8.RuneCountInString(v)) })
}

// MapIsEmpty derives a cell reporting whether the value is empty.
func (s *StringCell) MapIsEmpty() (*BoolCell, error) {
	return s.MapBoolean(func(v string) bool { return v == "" })
}
