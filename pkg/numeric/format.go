package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String returns the canonical text of n: decimal digits for integer kinds,
// and for floating kinds the shortest form that reads back to the same
// value, always with a fractional part ("20.0") and switching to scientific
// notation ("1.0E10") outside [1e-3, 1e7).
func (n Number) String() string {
	switch n.kind {
	case Byte, Short, Int, Long:
		return strconv.FormatInt(n.i, 10)
	case Float:
		return formatFloat(n.f, 32)
	case Double:
		return formatFloat(n.f, 64)
	default:
		return "<invalid>"
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}

// Format implements fmt.Formatter. Integer verbs (d, b, o, x, X, c, q, U)
// format the integer value, truncating floating kinds. Floating verbs
// (e, E, f, F, g, G) format the floating value. Every other verb prints
// String.
func (n Number) Format(f fmt.State, verb rune) {
	directive := fmt.FormatString(f, verb)
	switch verb {
	case 'd', 'b', 'o', 'O', 'x', 'X', 'c', 'q', 'U':
		fmt.Fprintf(f, directive, n.Int64())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, directive, n.Float64())
	default:
		fmt.Fprintf(f, strings.TrimSuffix(directive, string(verb))+"s", n.String())
	}
}
