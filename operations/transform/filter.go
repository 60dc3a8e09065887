package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

// Filter retains only the Rows for which fn returns true
func Filter(f tally.Frame, fn tally.FilterOperation) (tally.Frame, error) {
	result := frame.CreateFrame(f.Schema().Clone())
	err := f.ForEachRow(func(row tally.Row) error {
		keep, err := fn(row)
		if err != nil {
			return err
		}
		if keep {
			return result.AppendRow(row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
