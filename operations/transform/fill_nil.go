package transform

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/errors"
)

// FillNil replaces every nil cell in the named columns with value,
// which must be accepted by each column's type
func FillNil(f tally.Frame, value interface{}, colNames ...string) (tally.Frame, error) {
	for _, colName := range colNames {
		col, err := f.Schema().GetColumn(colName)
		if err != nil {
			return nil, err
		}
		if !col.Type().Accepts(value) {
			return nil, errors.IncompatibleTypeError{Name: colName, Expected: col.Type().ToString()}
		}
	}
	return Map(f, func(row tally.Row) error {
		for _, colName := range colNames {
			if row.IsNil(colName) {
				if err := row.Set(colName, value); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
