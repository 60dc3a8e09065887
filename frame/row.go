package frame

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/errors"
)

type rowImpl struct {
	frame *frameImpl
	idx   int
}

// Schema returns the schema for this row
func (r *rowImpl) Schema() tally.Schema {
	return r.frame.schema
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var sb strings.Builder
	sb.WriteString("(")
	first := true
	r.frame.schema.ForEachColumn(func(name string, col tally.Column) error {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		val := r.frame.rows[r.idx][col.Index()]
		if val == nil {
			fmt.Fprintf(&sb, "%s=nil", name)
		} else {
			fmt.Fprintf(&sb, "%s=%v", name, val)
		}
		return nil
	})
	sb.WriteString(")")
	return sb.String()
}

func (r *rowImpl) cell(colName string) (*interface{}, tally.Column, error) {
	col, err := r.frame.schema.GetColumn(colName)
	if err != nil {
		return nil, nil, err
	}
	return &r.frame.rows[r.idx][col.Index()], col, nil
}

// IsNil returns true iff the given column value is nil in this row
func (r *rowImpl) IsNil(colName string) bool {
	cell, _, err := r.cell(colName)
	if err != nil {
		return false
	}
	return *cell == nil
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	cell, _, err := r.cell(colName)
	if err != nil {
		return err
	}
	*cell = nil
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (interface{}, error) {
	cell, _, err := r.cell(colName)
	if err != nil {
		return nil, err
	}
	return *cell, nil
}

// GetString retrieves a string from the column with the given name
func (r *rowImpl) GetString(colName string) (string, error) {
	cell, col, err := r.cell(colName)
	if err != nil {
		return "", err
	}
	if *cell == nil {
		return "", errors.NilValueError{Name: colName}
	}
	val, ok := (*cell).(string)
	if !ok {
		return "", errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	return val, nil
}

// GetFloat64 retrieves a float64 from the column with the given name
func (r *rowImpl) GetFloat64(colName string) (float64, error) {
	cell, col, err := r.cell(colName)
	if err != nil {
		return 0, err
	}
	if *cell == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	val, ok := (*cell).(float64)
	if !ok {
		return 0, errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	return val, nil
}

// GetInt64 retrieves an int64 from the column with the given name
func (r *rowImpl) GetInt64(colName string) (int64, error) {
	cell, col, err := r.cell(colName)
	if err != nil {
		return 0, err
	}
	if *cell == nil {
		return 0, errors.NilValueError{Name: colName}
	}
	val, ok := (*cell).(int64)
	if !ok {
		return 0, errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	return val, nil
}

// GetBool retrieves a bool from the column with the given name
func (r *rowImpl) GetBool(colName string) (bool, error) {
	cell, col, err := r.cell(colName)
	if err != nil {
		return false, err
	}
	if *cell == nil {
		return false, errors.NilValueError{Name: colName}
	}
	val, ok := (*cell).(bool)
	if !ok {
		return false, errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	return val, nil
}

// GetTime retrieves a time.Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (time.Time, error) {
	cell, col, err := r.cell(colName)
	if err != nil {
		return time.Time{}, err
	}
	if *cell == nil {
		return time.Time{}, errors.NilValueError{Name: colName}
	}
	val, ok := (*cell).(time.Time)
	if !ok {
		return time.Time{}, errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	return val, nil
}

// Set stores any value accepted by the column's type.
// A nil value sets the cell to nil.
func (r *rowImpl) Set(colName string, value interface{}) error {
	cell, col, err := r.cell(colName)
	if err != nil {
		return err
	}
	if value == nil {
		*cell = nil
		return nil
	}
	if !col.Type().Accepts(value) {
		return errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
	}
	*cell = value
	return nil
}

// SetString stores a string in the column with the given name
func (r *rowImpl) SetString(colName string, value string) error {
	return r.Set(colName, value)
}

// SetFloat64 stores a float64 in the column with the given name
func (r *rowImpl) SetFloat64(colName string, value float64) error {
	return r.Set(colName, value)
}

// SetInt64 stores an int64 in the column with the given name
func (r *rowImpl) SetInt64(colName string, value int64) error {
	return r.Set(colName, value)
}

// SetBool stores a bool in the column with the given name
func (r *rowImpl) SetBool(colName string, value bool) error {
	return r.Set(colName, value)
}

// SetTime stores a time.Time in the column with the given name
func (r *rowImpl) SetTime(colName string, value time.Time) error {
	return r.Set(colName, value)
}
