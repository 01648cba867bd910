// Package errors turns the errors of the cells libraries into coded,
// human-readable messages for the command line.
//
// Library code returns plain sentinel-wrapped errors (cell.ErrBoundValueSet,
// numeric.ErrParse, ...). At the edge of the program, Classify maps such an
// error to a registered code with a category, a short message and a
// longer explanation:
//
//	if err := b.Set(v); err != nil {
//	    errors.PrintError(errors.Classify(err))
//	}
//
//	// ERROR C001: Cannot set a bound cell
//	//
//	//   The cell takes its value from its source. Unbind it first.
//	//
//	//   cause: cell: cannot set the value of a bound cell: cell#4 is bound to cell#3
//
// # Error Codes
//
//   - C001-C009: graph errors (binding, release, invalid values)
//   - C010-C019: numeric errors (parsing, division)
//   - C020-C029: configuration errors
//   - C030-C039: command line usage errors
package errors
