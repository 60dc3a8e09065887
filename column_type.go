package tally

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnType describes how a column's values are parsed from
// raw text, type-checked on assignment, and rendered for output.
type ColumnType interface {
	Parse(raw string) (interface{}, error)     // Parse converts a raw text cell into a value of this type
	Render(value interface{}) (string, error)  // Render converts a value of this type into its textual form
	Accepts(value interface{}) bool            // Accepts returns true iff value may be stored in a column of this type
	ToString() string                          // ToString returns a human-readable name for this ColumnType
}

// VarStringColumnType is a column type for variable-length string data
type VarStringColumnType struct{}

// Parse returns the raw cell unchanged
func (b *VarStringColumnType) Parse(raw string) (interface{}, error) {
	return raw, nil
}

// Render returns the stored string
func (b *VarStringColumnType) Render(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value %#v is not a %s", value, b.ToString())
	}
	return s, nil
}

// Accepts returns true iff value is a string
func (b *VarStringColumnType) Accepts(value interface{}) bool {
	_, ok := value.(string)
	return ok
}

// ToString returns a human-readable name for this ColumnType
func (b *VarStringColumnType) ToString() string {
	return "varstring"
}

// Float64ColumnType is a column type for 64-bit floating point data
type Float64ColumnType struct{}

// Parse converts a raw cell into a float64
func (b *Float64ColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseFloat(raw, 64)
}

// Render formats the stored float64 in its shortest exact form
func (b *Float64ColumnType) Render(value interface{}) (string, error) {
	f, ok := value.(float64)
	if !ok {
		return "", fmt.Errorf("value %#v is not a %s", value, b.ToString())
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// Accepts returns true iff value is a float64
func (b *Float64ColumnType) Accepts(value interface{}) bool {
	_, ok := value.(float64)
	return ok
}

// ToString returns a human-readable name for this ColumnType
func (b *Float64ColumnType) ToString() string {
	return "float64"
}

// Int64ColumnType is a column type for 64-bit signed integer data
type Int64ColumnType struct{}

// Parse converts a raw cell into an int64
func (b *Int64ColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// Render formats the stored int64 in base 10
func (b *Int64ColumnType) Render(value interface{}) (string, error) {
	i, ok := value.(int64)
	if !ok {
		return "", fmt.Errorf("value %#v is not a %s", value, b.ToString())
	}
	return strconv.FormatInt(i, 10), nil
}

// Accepts returns true iff value is an int64
func (b *Int64ColumnType) Accepts(value interface{}) bool {
	_, ok := value.(int64)
	return ok
}

// ToString returns a human-readable name for this ColumnType
func (b *Int64ColumnType) ToString() string {
	return "int64"
}

// BoolColumnType is a column type for boolean data
type BoolColumnType struct{}

// Parse converts a raw cell into a bool
func (b *BoolColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseBool(raw)
}

// Render formats the stored bool as "true" or "false"
func (b *BoolColumnType) Render(value interface{}) (string, error) {
	v, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("value %#v is not a %s", value, b.ToString())
	}
	return strconv.FormatBool(v), nil
}

// Accepts returns true iff value is a bool
func (b *BoolColumnType) Accepts(value interface{}) bool {
	_, ok := value.(bool)
	return ok
}

// ToString returns a human-readable name for this ColumnType
func (b *BoolColumnType) ToString() string {
	return "bool"
}

// TimeColumnType is a column type for timestamp data, parsed
// and rendered with a given format string
type TimeColumnType struct {
	Format string
}

// Parse converts a raw cell into a time.Time using this column's format
func (b *TimeColumnType) Parse(raw string) (interface{}, error) {
	return time.Parse(b.Format, raw)
}

// Render formats the stored time.Time using this column's format
func (b *TimeColumnType) Render(value interface{}) (string, error) {
	t, ok := value.(time.Time)
	if !ok {
		return "", fmt.Errorf("value %#v is not a %s", value, b.ToString())
	}
	return t.Format(b.Format), nil
}

// Accepts returns true iff value is a time.Time
func (b *TimeColumnType) Accepts(value interface{}) bool {
	_, ok := value.(time.Time)
	return ok
}

// ToString returns a human-readable name for this ColumnType
func (b *TimeColumnType) ToString() string {
	return "time"
}
