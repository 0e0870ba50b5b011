package models

import (
	"errors"
)

// Error kinds reported by the core. Match them with errors.Is.
var (
	// ErrNotADirectory is returned when a listing root is missing or not a directory
	ErrNotADirectory = errors.New("not a directory")
	// ErrEmptyInput is returned when both comparison inputs are blank
	ErrEmptyInput = errors.New("provide at least one list")
	// ErrWriteFailure wraps I/O errors while exporting
	ErrWriteFailure = errors.New("write failed")
	// ErrReadFailure wraps I/O errors while loading or walking
	ErrReadFailure = errors.New("read failed")
	// ErrTooLarge is returned when loaded list files exceed the size guard
	ErrTooLarge = errors.New("input too large")
)

// OpError records a failed operation, its path and the underlying cause
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewReadError wraps err as a read failure on path
func NewReadError(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Kind: ErrReadFailure, Err: err}
}

// NewWriteError wraps err as a write failure on path
func NewWriteError(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Kind: ErrWriteFailure, Err: err}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
