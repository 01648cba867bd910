// Package numeric implements typed arithmetic over a closed set of numeric
// kinds.
//
// Every value is a Number: a payload tagged with one of the kinds Byte,
// Short, Int, Long, Float or Double (the Go types int8, int16, int32, int64,
// float32 and float64). Operations never mix representations silently; each
// result carries the kind chosen by a fixed widening precedence:
//
//	Double > Float > Long > Int
//
// Byte and Short operands are promoted to Int for all arithmetic.
//
//	a := numeric.OfInt(1)
//	b := numeric.OfDouble(2)
//	sum := numeric.Add(a, b) // Double 3.0
//
// Bitwise operations only distinguish Long from Int, and shifts use the kind
// of the left operand. Compare returns an Int in {-1, 0, 1}.
//
// # Parsing
//
// Parse accepts Java-style literals: "10", "10L", "0x1F", "0x1FL", "1.5",
// "1.5F", "2D". Failures are reported as *ParseError values matching ErrParse.
//
// # Text Form
//
// Number.String renders the canonical text of the value the way the JVM does
// ("10", "20.0", "1.0E10", "NaN"), and Number implements fmt.Formatter so it
// can be used with any integer or floating point verb.
package numeric
