package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

// RemoveColumns drops existing columns, preserving the order of the rest
func RemoveColumns(f tally.Frame, colNames ...string) (tally.Frame, error) {
	newSchema := f.Schema().Clone()
	for _, colName := range colNames {
		var err error
		newSchema, err = newSchema.RemoveColumn(colName)
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
