// Package frame provides the concrete in-memory Frame used by all
// of Tally's datasources and transform operations.
package frame

import (
	"github.com/go-tally/tally"
)

type frameImpl struct {
	schema tally.Schema
	rows   [][]interface{}
}

// CreateFrame returns a new, empty Frame with the given Schema
func CreateFrame(schema tally.Schema) tally.Frame {
	return &frameImpl{schema: schema, rows: [][]interface{}{}}
}

// Schema returns the Schema shared by all rows of this Frame
func (f *frameImpl) Schema() tally.Schema {
	return f.schema
}

// NumRows returns the number of rows in this Frame
func (f *frameImpl) NumRows() int {
	return len(f.rows)
}

// GetRow returns a mutable view of the row at the given position
func (f *frameImpl) GetRow(idx int) tally.Row {
	return &rowImpl{frame: f, idx: idx}
}

// AppendEmptyRow appends a row of all-nil cells and returns it
func (f *frameImpl) AppendEmptyRow() tally.Row {
	f.rows = append(f.rows, make([]interface{}, f.schema.NumColumns()))
	return &rowImpl{frame: f, idx: len(f.rows) - 1}
}

// AppendRow appends a copy of row, matching cells by column name.
// Every column of this Frame must exist in row's Schema.
func (f *frameImpl) AppendRow(row tally.Row) error {
	newRow := f.AppendEmptyRow()
	return f.schema.ForEachColumn(func(name string, col tally.Column) error {
		val, err := row.Get(name)
		if err != nil {
			return err
		}
		return newRow.Set(name, val)
	})
}

// ForEachRow visits each row in order, stopping at the first error
func (f *frameImpl) ForEachRow(fn tally.MapOperation) error {
	for i := range f.rows {
		if err := fn(&rowImpl{frame: f, idx: i}); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of this Frame
func (f *frameImpl) Clone() tally.Frame {
	newRows := make([][]interface{}, len(f.rows))
	for i, row := range f.rows {
		newRow := make([]interface{}, len(row))
		copy(newRow, row)
		newRows[i] = newRow
	}
	return &frameImpl{schema: f.schema.Clone(), rows: newRows}
}
