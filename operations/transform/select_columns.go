package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
	"github.com/go-tally/tally/schema"
)

// SelectColumns projects a Frame onto the named columns, in the given order
func SelectColumns(f tally.Frame, colNames ...string) (tally.Frame, error) {
	newSchema := schema.CreateSchema()
	for _, colName := range colNames {
		col, err := f.Schema().GetColumn(colName)
		if err != nil {
			return nil, err
		}
		newSchema, err = newSchema.CreateColumn(colName, col.Type())
		if err != nil {
			return nil, err
		}
	}
	result := frame.CreateFrame(newSchema)
	err := f.ForEachRow(func(row tally.Row) error {
		return result.AppendRow(row)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
