package model

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is
var (
	// ErrInvalidArgument is returned when a required input is absent
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedData is returned when a declarative data source cannot be loaded
	ErrMalformedData = errors.New("malformed data source")
)

// InvalidArgumentError represents a violated precondition on an input
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Message)
}

// Is reports ErrInvalidArgument as a match
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Message:  message,
	}
}

// LoadError represents a failure while reading a static data source
type LoadError struct {
	Source  string
	Entry   int
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Entry >= 0 && e.Cause != nil {
		return fmt.Sprintf("[%s] entry %d: %s (%v)", e.Source, e.Entry, e.Message, e.Cause)
	}
	if e.Entry >= 0 {
		return fmt.Sprintf("[%s] entry %d: %s", e.Source, e.Entry, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports ErrMalformedData as a match
func (e *LoadError) Is(target error) bool {
	return target == ErrMalformedData
}

// NewLoadError creates a new load error. Use entry -1 for document level failures.
func NewLoadError(source string, entry int, message string, cause error) *LoadError {
	return &LoadError{
		Source:  source,
		Entry:   entry,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents a rejected identifier at an outer surface (CLI, HTTP)
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}
