package transform

import (
	"github.com/go-tally/tally"
)

// Map transforms each Row of a copy of the Frame in-place
func Map(f tally.Frame, fn tally.MapOperation) (tally.Frame, error) {
	result := f.Clone()
	if err := result.ForEachRow(fn); err != nil {
		return nil, err
	}
	return result, nil
}
