package errors

import (
	"maps"
	"slices"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Graph Errors (C001-C009)
	// ============================================

	"C001": {
		Category:   CategoryGraph,
		Message:    "Cannot set a bound cell",
		Detail:     "The cell takes its value from its source. Writes, including in-place operators and container mutations, are refused while it is bound.",
		Suggestion: "Unbind the cell from its source first.",
	},
	"C002": {
		Category:   CategoryGraph,
		Message:    "Cell is already bound",
		Detail:     "A cell has at most one source. Binding it to a different source, or explicitly rebinding a derived cell, is refused.",
		Suggestion: "Unbind the cell before binding it elsewhere.",
	},
	"C003": {
		Category: CategoryGraph,
		Message:  "Invalid value",
		Detail:   "The value was rejected by the cell, for example an absent number or a nil container.",
	},
	"C004": {
		Category: CategoryGraph,
		Message:  "Dependent cannot receive values",
		Detail:   "Propagation reached a dependent handle that no longer addresses a cell.",
	},
	"C005": {
		Category: CategoryGraph,
		Message:  "Cell has been released",
		Detail:   "The cell was removed from its graph and cannot be written or bound.",
	},
	"C006": {
		Category: CategoryGraph,
		Message:  "Cells belong to different graphs",
		Detail:   "Only cells of the same graph can be bound together.",
	},
	"C007": {
		Category: CategoryGraph,
		Message:  "Index out of range",
		Detail:   "A list cell was accessed outside its bounds.",
	},

	// ============================================
	// Numeric Errors (C010-C019)
	// ============================================

	"C010": {
		Category:   CategoryNumeric,
		Message:    "Not a numeric literal",
		Detail:     "Accepted literals are decimal or 0x hexadecimal integers with an optional L suffix, and decimal floats with an optional F or D suffix.",
		Suggestion: `Examples: 10, 10L, 0x1F, 1.5, 1.5F, 2D`,
	},
	"C011": {
		Category: CategoryNumeric,
		Message:  "Integer division by zero",
		Detail:   "Division and remainder of integer kinds by zero are undefined. Floating point kinds produce Infinity or NaN instead.",
	},

	// ============================================
	// Config Errors (C020-C029)
	// ============================================

	"C020": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A value in cells.json is outside its allowed range.",
	},
	"C021": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration file",
		Detail:   "The configuration file does not exist or is not readable.",
	},
	"C022": {
		Category: CategoryConfig,
		Message:  "Malformed configuration file",
		Detail:   "cells.json is not valid JSON.",
	},

	// ============================================
	// CLI Errors (C030-C039)
	// ============================================

	"C030": {
		Category:   CategoryCLI,
		Message:    "Unknown operator",
		Suggestion: "Use one of + - * / % & | ^ << >> >>> cmp",
	},
	"C031": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
	},

	"C099": {
		Message: "Unexpected error",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns every registered code in order.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}
