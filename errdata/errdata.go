// Package errdata carries the structured error records the parser populates
// on failure. The marshalling layer reads only the description; the rest of
// the record exists for callers on this side of the boundary.
package errdata

import "fmt"

// Number classifies a parser failure.
type Number int

const (
	// OK marks a record that carries no failure.
	OK Number = iota
	// Parse marks a syntax error in the formula text.
	Parse
	// Numeric marks an arithmetic failure during evaluation.
	Numeric
	// Runtime marks any other evaluation failure.
	Runtime
	// BadArg marks an invalid argument passed across the boundary.
	BadArg
)

// String returns the classification name.
func (n Number) String() string {
	switch n {
	case OK:
		return "OK"
	case Parse:
		return "Parse"
	case Numeric:
		return "Numeric"
	case Runtime:
		return "Runtime"
	case BadArg:
		return "BadArg"
	default:
		return fmt.Sprintf("Number(%d)", int(n))
	}
}

// ErrorData describes a single parser failure. Records are immutable once
// built; the zero value reports OK with no message.
type ErrorData struct {
	number      Number
	source      string
	description string
}

// New builds a record for a failure classified by number, raised by the
// named source operation, with a human-readable description.
func New(number Number, source, description string) *ErrorData {
	return &ErrorData{number: number, source: source, description: description}
}

// Newf is New with a formatted description.
func Newf(number Number, source, format string, args ...any) *ErrorData {
	return New(number, source, fmt.Sprintf(format, args...))
}

// Description returns the human-readable message.
func (e *ErrorData) Description() string {
	return e.description
}

// Source returns the name of the operation that produced the record.
func (e *ErrorData) Source() string {
	return e.source
}

// Num returns the failure classification.
func (e *ErrorData) Num() Number {
	return e.number
}

// IsOK reports whether the record carries no failure.
func (e *ErrorData) IsOK() bool {
	return e.number == OK
}

// Error implements the error interface; it returns the description so a
// record can flow through ordinary Go error handling unchanged.
func (e *ErrorData) Error() string {
	return e.description
}
