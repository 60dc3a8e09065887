package transform

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

// SortBy stably orders a Frame by the named columns, ascending. Nil cells
// sort before any value. Sorting makes downstream output deterministic.
func SortBy(f tally.Frame, colNames ...string) (tally.Frame, error) {
	if err := f.Schema().Require(colNames...); err != nil {
		return nil, err
	}
	keys := make([][]interface{}, f.NumRows())
	order := make([]int, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		order[i] = i
		key := make([]interface{}, len(colNames))
		for j, name := range colNames {
			val, err := f.GetRow(i).Get(name)
			if err != nil {
				return nil, err
			}
			key[j] = val
		}
		keys[i] = key
	}
	var sortErr error
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		for j := range ka {
			cmp, err := compareCells(ka[j], kb[j])
			if err != nil && sortErr == nil {
				sortErr = fmt.Errorf("column %s: %w", colNames[j], err)
				return false
			}
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	if sortErr != nil {
		return nil, sortErr
	}
	result := frame.CreateFrame(f.Schema().Clone())
	for _, idx := range order {
		if err := result.AppendRow(f.GetRow(idx)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func compareCells(a interface{}, b interface{}) (int, error) {
	if a == nil && b == nil {
		return 0, nil
	} else if a == nil {
		return -1, nil
	} else if b == nil {
		return 1, nil
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			break
		}
		if av < bv {
			return -1, nil
		} else if av > bv {
			return 1, nil
		}
		return 0, nil
	case float64:
		bv, ok := b.(float64)
		if !ok {
			break
		}
		if av < bv {
			return -1, nil
		} else if av > bv {
			return 1, nil
		}
		return 0, nil
	case int64:
		bv, ok := b.(int64)
		if !ok {
			break
		}
		if av < bv {
			return -1, nil
		} else if av > bv {
			return 1, nil
		}
		return 0, nil
	case bool:
		bv, ok := b.(bool)
		if !ok {
			break
		}
		if av == bv {
			return 0, nil
		} else if !av {
			return -1, nil
		}
		return 1, nil
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			break
		}
		if av.Before(bv) {
			return -1, nil
		} else if av.After(bv) {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cells %#v and %#v are not comparable", a, b)
}
