// Package result defines the closed set of outcome codes returned by the
// containers in this module.
//
// Every failing operation returns a Code as its error value, so callers can
// branch with errors.Is:
//
//	if errors.Is(err, result.NotFound) { ... }
//
// Success is the zero value and is never returned as a non-nil error.
package result

import (
	"errors"
	"fmt"
)

type Code int

const (
	StaleReference         Code = -15
	Underflow              Code = -14
	Overflow               Code = -13
	SystemError            Code = -12
	SecurityError          Code = -11
	OutputPointerIsNotNull Code = -10
	Duplicate              Code = -9
	NotFound               Code = -8
	Empty                  Code = -7
	DependencyError        Code = -6
	ArgumentOutOfRange     Code = -5
	InvalidIndex           Code = -4
	ArithmeticOverflow     Code = -3
	FailedMemoryAllocation Code = -2
	NullParameter          Code = -1
	Success                Code = 0
)

var names = map[Code]string{
	StaleReference:         "StaleReference",
	Underflow:              "Underflow",
	Overflow:               "Overflow",
	SystemError:            "SystemError",
	SecurityError:          "SecurityError",
	OutputPointerIsNotNull: "OutputPointerIsNotNull",
	Duplicate:              "Duplicate",
	NotFound:               "NotFound",
	Empty:                  "Empty",
	DependencyError:        "DependencyError",
	ArgumentOutOfRange:     "ArgumentOutOfRange",
	InvalidIndex:           "InvalidIndex",
	ArithmeticOverflow:     "ArithmeticOverflow",
	FailedMemoryAllocation: "FailedMemoryAllocation",
	NullParameter:          "NullParameter",
	Success:                "Success",
}

var messages = map[Code]string{
	StaleReference:         "Reference was issued before the container last changed",
	Underflow:              "Underflow - request exceeds minimum size",
	Overflow:               "Overflow - request exceeds maximum size",
	SystemError:            "Underlying OS error",
	SecurityError:          "There was a security related error",
	OutputPointerIsNotNull: "An output parameter is already populated. It is intended to be populated by the function",
	Duplicate:              "The parameter is a duplicate of an existing item",
	NotFound:               "The requested object was not found",
	Empty:                  "List is empty",
	DependencyError:        "Error code from a dependency",
	ArgumentOutOfRange:     "The specified value is outside the range of valid values",
	InvalidIndex:           "Invalid index",
	ArithmeticOverflow:     "Arithmetic overflow",
	FailedMemoryAllocation: "Failed to allocate memory",
	NullParameter:          "A required parameter is nil",
	Success:                "success",
}

// Error returns the human readable message for c.
func (c Code) Error() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return "Unknown result code"
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Known reports whether c belongs to the taxonomy.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// Of maps err back to its Code. A nil error is Success and an error that
// carries no Code is reported as DependencyError.
func Of(err error) Code {
	if err == nil {
		return Success
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return DependencyError
}

// Wrap annotates code with the name of the failing operation. The returned
// error still matches code under errors.Is. Success wraps to nil.
func Wrap(code Code, op string) error {
	if code == Success {
		return nil
	}
	return fmt.Errorf("%s: %w", op, code)
}
