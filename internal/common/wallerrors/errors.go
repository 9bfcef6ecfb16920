// Package wallerrors contains the error types returned by the wall simulation
// core. Callers use IsValidationError to distinguish errors the user can fix
// by changing their input from internal failures.
//
// If multiple errors occur in some function (e.g., if several profile
// aggregations fail), that function should return an error of type
// multierror.Error from package github.com/hashicorp/go-multierror that
// encapsulates those individual errors.
package wallerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidConfigLine is returned by the profile config parser when a single
// line of the input is malformed. Line numbers are 1-indexed and refer to the
// raw input, including blank lines.
type ErrInvalidConfigLine struct {
	Line    int         // Line number the violation was found on
	Value   interface{} // The offending token or value, if there is one
	Message string      // Explanation of the violation
}

func (err *ErrInvalidConfigLine) Error() string {
	if err.Value == nil {
		return fmt.Sprintf("line %d: %s", err.Line, err.Message)
	}
	return fmt.Sprintf("line %d: value %v is invalid; %s", err.Line, err.Value, err.Message)
}

// ErrInvalidArgument is a generic error to be returned on invalid argument,
// e.g., an out-of-bounds team count or a malformed date.
// Message is optional and is omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the field referred to, e.g., "teams"
	Value   interface{} // The invalid value that was provided
	Message string      // An optional message explaining why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %q is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %q is invalid for field %q; %s", err.Value, err.Name, err.Message)
}

// ErrNotFound is a generic error to be returned whenever some resource isn't
// found, e.g., a reporting query for an unknown profile.
type ErrNotFound struct {
	Type  string // Resource type, e.g., "profile"
	Value interface{}
}

func (err *ErrNotFound) Error() string {
	return fmt.Sprintf("resource %v of type %q does not exist", err.Value, err.Type)
}

// ErrUnknownSection indicates that a processing result referred to a section
// id the driver has no state for. This is a data corruption signal: the run
// that produced it must be aborted, not retried.
type ErrUnknownSection struct {
	SectionID int64
}

func (err *ErrUnknownSection) Error() string {
	return fmt.Sprintf("processing result references unknown section %d", err.SectionID)
}

// IsValidationError reports whether err is caused by invalid caller input, as
// opposed to an internal failure. Uses errors.As to look through the chain of
// errors, as opposed to just considering the topmost error in the chain.
func IsValidationError(err error) bool {
	var invalidLine *ErrInvalidConfigLine
	var invalidArg *ErrInvalidArgument
	var notFound *ErrNotFound
	return errors.As(err, &invalidLine) || errors.As(err, &invalidArg) || errors.As(err, &notFound)
}
