package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

// RenameColumn renames an existing column
func RenameColumn(f tally.Frame, oldName string, newName string) (tally.Frame, error) {
	newSchema, err := f.Schema().Clone().RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	result := frame.CreateFrame(newSchema)
	err = f.ForEachRow(func(row tally.Row) error {
		newRow := result.AppendEmptyRow()
		return row.Schema().ForEachColumn(func(name string, col tally.Column) error {
			val, err := row.Get(name)
			if err != nil {
				return err
			}
			if name == oldName {
				name = newName
			}
			return newRow.Set(name, val)
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
