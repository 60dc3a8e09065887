package schema

import (
	"fmt"
	"reflect"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/errors"
	"github.com/hashicorp/go-multierror"
)

// column describes the position and type of a named field in a Row.
type column struct {
	idx     int
	colType tally.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() tally.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the index of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() tally.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to typed Columns.
type schema struct {
	columns map[string]tally.Column
	names   []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() tally.Schema {
	return &schema{
		columns: make(map[string]tally.Column),
		names:   []string{},
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema tally.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col tally.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() tally.Schema {
	newColumns := make(map[string]tally.Column)
	for k, v := range s.columns {
		newColumns[k] = v.Clone()
	}
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	return &schema{columns: newColumns, names: newNames}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name, if it exists
func (s *schema) GetColumn(colName string) (tally.Column, error) {
	if col, ok := s.columns[colName]; ok {
		return col, nil
	}
	return nil, errors.NoSuchColumnError{Name: colName}
}

// HasColumn returns true iff this Schema contains the given column
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.columns[colName]
	return ok
}

// CreateColumn defines a new column within this Schema
func (s *schema) CreateColumn(colName string, columnType tally.ColumnType) (tally.Schema, error) {
	if s.HasColumn(colName) {
		return nil, errors.ColumnExistsError{Name: colName}
	}
	s.columns[colName] = &column{idx: len(s.names), colType: columnType}
	s.names = append(s.names, colName)
	return s, nil
}

// RenameColumn renames an existing column within this Schema
func (s *schema) RenameColumn(oldName string, newName string) (tally.Schema, error) {
	col, ok := s.columns[oldName]
	if !ok {
		return nil, errors.NoSuchColumnError{Name: oldName}
	}
	if oldName != newName && s.HasColumn(newName) {
		return nil, errors.ColumnExistsError{Name: newName}
	}
	delete(s.columns, oldName)
	s.columns[newName] = col
	s.names[col.Index()] = newName
	return s, nil
}

// RemoveColumn removes an existing column from this Schema,
// reindexing the columns which follow it
func (s *schema) RemoveColumn(colName string) (tally.Schema, error) {
	col, ok := s.columns[colName]
	if !ok {
		return nil, errors.NoSuchColumnError{Name: colName}
	}
	idx := col.Index()
	delete(s.columns, colName)
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	for _, name := range s.names[idx:] {
		c := s.columns[name]
		c.SetIndex(c.Index() - 1)
	}
	return s, nil
}

// Require returns an error describing every named column which is absent
func (s *schema) Require(colNames ...string) error {
	var multierr *multierror.Error
	for _, name := range colNames {
		if !s.HasColumn(name) {
			multierr = multierror.Append(multierr, errors.SchemaError{Column: name})
		}
	}
	return multierr.ErrorOrNil()
}

// ColumnNames returns the names of the columns in this Schema, in order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types of the columns in this Schema, in order
func (s *schema) ColumnTypes() []tally.ColumnType {
	types := make([]tally.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.columns[name].Type()
	}
	return types
}

// ForEachColumn runs a function for each column in this Schema, in order
func (s *schema) ForEachColumn(fn func(name string, col tally.Column) error) error {
	for _, name := range s.names {
		if err := fn(name, s.columns[name]); err != nil {
			return err
		}
	}
	return nil
}
