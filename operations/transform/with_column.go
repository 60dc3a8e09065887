package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

// WithColumn appends a new column with the given name and type, populating
// it by running fn against each row. Cells fn does not set remain nil.
func WithColumn(f tally.Frame, colName string, colType tally.ColumnType, fn tally.MapOperation) (tally.Frame, error) {
	newSchema, err := f.Schema().Clone().CreateColumn(colName, colType)
	if err != nil {
		return nil, err
	}
	result := frame.CreateFrame(newSchema)
	err = f.ForEachRow(func(row tally.Row) error {
		newRow := result.AppendEmptyRow()
		err := row.Schema().ForEachColumn(func(name string, col tally.Column) error {
			val, err := row.Get(name)
			if err != nil {
				return err
			}
			return newRow.Set(name, val)
		})
		if err != nil {
			return err
		}
		return fn(newRow)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
