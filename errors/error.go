package errors

import (
	"fmt"
	"strings"
)

// LoadError occurs when an input dataset cannot be read or parsed
type LoadError struct {
	Path  string
	Cause error
}

// Error returns a textual representation of this LoadError
func (e LoadError) Error() string {
	return fmt.Sprintf("unable to load dataset %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause of this LoadError
func (e LoadError) Unwrap() error {
	return e.Cause
}

// WriteError occurs when output cannot be written
type WriteError struct {
	Path  string
	Cause error
}

// Error returns a textual representation of this WriteError
func (e WriteError) Error() string {
	return fmt.Sprintf("unable to write result %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause of this WriteError
func (e WriteError) Unwrap() error {
	return e.Cause
}

// SchemaError occurs when an expected column is absent from a Schema
type SchemaError struct {
	Column string
}

// Error returns a textual representation of this SchemaError
func (e SchemaError) Error() string {
	return fmt.Sprintf("required column %s is absent", e.Column)
}

// JoinError occurs when duplicate join keys would multiply rows during a join
type JoinError struct {
	Columns []string
	Key     string
}

// Error returns a textual representation of this JoinError
func (e JoinError) Error() string {
	return fmt.Sprintf("duplicate join key %s for column(s) %s", e.Key, strings.Join(e.Columns, ", "))
}

// NoSuchColumnError occurs when a Row or Schema is asked for a column it does not contain
type NoSuchColumnError struct {
	Name string
}

// Error returns a textual representation of this NoSuchColumnError
func (e NoSuchColumnError) Error() string {
	return fmt.Sprintf("column %s does not exist", e.Name)
}

// ColumnExistsError occurs when a column is created or renamed over an existing column
type ColumnExistsError struct {
	Name string
}

// Error returns a textual representation of this ColumnExistsError
func (e ColumnExistsError) Error() string {
	return fmt.Sprintf("column %s already exists", e.Name)
}

// NilValueError occurs when a typed getter is used on a nil cell
type NilValueError struct {
	Name string
}

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("value for column %s is nil", e.Name)
}

// IncompatibleTypeError occurs when a value does not match a column's declared type
type IncompatibleTypeError struct {
	Name     string
	Expected string
}

// Error returns a textual representation of this IncompatibleTypeError
func (e IncompatibleTypeError) Error() string {
	return fmt.Sprintf("value for column %s is not a %s", e.Name, e.Expected)
}
