package numeric

// Kind identifies the representation of a Number.
type Kind uint8

const (
	// Invalid is the kind of the zero Number. It marks an absent value.
	Invalid Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
)

var kindNames = [...]string{
	Invalid: "invalid",
	Byte:    "byte",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

// Kinds lists every valid kind in promotion order.
var Kinds = []Kind{Byte, Short, Int, Long, Float, Double}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports whether k is one of the six numeric kinds.
func (k Kind) Valid() bool {
	return k >= Byte && k <= Double
}

// IsInteger reports whether k is Byte, Short, Int or Long.
func (k Kind) IsInteger() bool {
	return k >= Byte && k <= Long
}

// IsFloating reports whether k is Float or Double.
func (k Kind) IsFloating() bool {
	return k == Float || k == Double
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Invalid, false
}

// Promote returns the result kind of an arithmetic operation on operands of
// kinds a and b.
func Promote(a, b Kind) Kind {
	switch {
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	case a == Long || b == Long:
		return Long
	default:
		return Int
	}
}

// bitwiseKind returns the result kind of and, or and xor.
func bitwiseKind(a, b Kind) Kind {
	if a == Long || b == Long {
		return Long
	}
	return Int
}

// shiftKind returns the result kind of a shift whose left operand has kind a.
func shiftKind(a Kind) Kind {
	if a == Long {
		return Long
	}
	return Int
}

// unaryKind returns the result kind of negation.
func unaryKind(a Kind) Kind {
	switch a {
	case Double, Float, Long:
		return a
	default:
		return Int
	}
}
