package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse matches every error returned by Parse.
var ErrParse = errors.New("numeric: invalid number literal")

// ParseError describes a literal Parse could not read.
type ParseError struct {
	// Text is the input as given to Parse.
	Text string

	// Err is the underlying strconv error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numeric: cannot parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("numeric: cannot parse %q", e.Text)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Parse reads a numeric literal. The text is trimmed and upper-cased, then:
//
//   - with a decimal point: suffix F gives Float, suffix D or no suffix
//     gives Double;
//   - without one: 0X...L is a hexadecimal Long, ...L a decimal Long, 0X...
//     a hexadecimal Int, ...F a Float, ...D a Double, anything else a
//     decimal Int.
func Parse(text string) (Number, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return Number{}, &ParseError{Text: text}
	}

	if strings.Contains(s, ".") {
		switch {
		case strings.HasSuffix(s, "F"):
			return parseFloat(text, s[:len(s)-1], Float)
		case strings.HasSuffix(s, "D"):
			return parseFloat(text, s[:len(s)-1], Double)
		default:
			return parseFloat(text, s, Double)
		}
	}

	hex := strings.HasPrefix(s, "0X")
	switch {
	case hex && strings.HasSuffix(s, "L"):
		return parseInt(text, s[2:len(s)-1], 16, Long)
	case strings.HasSuffix(s, "L"):
		return parseInt(text, s[:len(s)-1], 10, Long)
	case hex:
		return parseInt(text, s[2:], 16, Int)
	case strings.HasSuffix(s, "F"):
		return parseFloat(text, s[:len(s)-1], Float)
	case strings.HasSuffix(s, "D"):
		return parseFloat(text, s[:len(s)-1], Double)
	default:
		return parseInt(text, s, 10, Int)
	}
}

// MustParse is like Parse but panics on error. It is intended for constants
// in tests and examples.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

func parseInt(text, digits string, base int, kind Kind) (Number, error) {
	bits := 32
	if kind == Long {
		bits = 64
	}
	v, err := strconv.ParseInt(digits, base, bits)
	if err != nil {
		return Number{}, &ParseError{Text: text, Err: err}
	}
	if kind == Long {
		return OfLong(v), nil
	}
	return OfInt(int32(v)), nil
}

func parseFloat(text, digits string, kind Kind) (Number, error) {
	bits := 64
	if kind == Float {
		bits = 32
	}
	v, err := strconv.ParseFloat(digits, bits)
	// Out of range literals round to zero or infinity instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, &ParseError{Text: text, Err: err}
	}
	if kind == Float {
		return OfFloat(float32(v)), nil
	}
	return OfDouble(v), nil
}
