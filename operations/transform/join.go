package transform

import (
	"bytes"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/frame"
)

// JoinType selects which unmatched rows survive a Join
type JoinType int

const (
	// InnerJoin retains only rows whose key appears on both sides
	InnerJoin JoinType = iota
	// LeftJoin retains every left row, with nil cells where the right side is unmatched
	LeftJoin
	// OuterJoin retains every row from both sides, with nil cells on the unmatched side
	OuterJoin
)

type rightEntry struct {
	key     []byte
	idx     int
	matched bool
}

// Join performs a hash join of two Frames on the named key columns. The
// result carries every left column followed by the right side's non-key
// columns. A key appearing more than once on the right side would multiply
// left rows, so it is rejected with a JoinError regardless of JoinType.
func Join(left tally.Frame, right tally.Frame, on []string, how JoinType) (tally.Frame, error) {
	if err := left.Schema().Require(on...); err != nil {
		return nil, err
	}
	if err := right.Schema().Require(on...); err != nil {
		return nil, err
	}

	keySet := make(map[string]bool, len(on))
	for _, name := range on {
		keySet[name] = true
	}

	// result schema: all left columns, then right non-key columns
	newSchema := left.Schema().Clone()
	var rightValueCols []string
	err := right.Schema().ForEachColumn(func(name string, col tally.Column) error {
		if keySet[name] {
			return nil
		}
		rightValueCols = append(rightValueCols, name)
		var err error
		newSchema, err = newSchema.CreateColumn(name, col.Type())
		return err
	})
	if err != nil {
		return nil, err
	}

	// index the right side, rejecting duplicate keys
	index := make(map[uint64][]*rightEntry)
	for i := 0; i < right.NumRows(); i++ {
		keyBuf, printable, err := rowKey(right.GetRow(i), on)
		if err != nil {
			return nil, err
		}
		hash := xxhash.Sum64(keyBuf)
		for _, entry := range index[hash] {
			if bytes.Equal(entry.key, keyBuf) {
				return nil, errors.JoinError{Columns: on, Key: printable}
			}
		}
		index[hash] = append(index[hash], &rightEntry{key: keyBuf, idx: i})
	}

	result := frame.CreateFrame(newSchema)
	err = left.ForEachRow(func(lrow tally.Row) error {
		keyBuf, _, err := rowKey(lrow, on)
		if err != nil {
			return err
		}
		var match *rightEntry
		for _, entry := range index[xxhash.Sum64(keyBuf)] {
			if bytes.Equal(entry.key, keyBuf) {
				match = entry
				break
			}
		}
		if match == nil && how == InnerJoin {
			return nil
		}
		newRow := result.AppendEmptyRow()
		err = lrow.Schema().ForEachColumn(func(name string, col tally.Column) error {
			val, err := lrow.Get(name)
			if err != nil {
				return err
			}
			return newRow.Set(name, val)
		})
		if err != nil {
			return err
		}
		if match == nil {
			return nil
		}
		match.matched = true
		rrow := right.GetRow(match.idx)
		for _, name := range rightValueCols {
			val, err := rrow.Get(name)
			if err != nil {
				return err
			}
			if err := newRow.Set(name, val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if how != OuterJoin {
		return result, nil
	}
	// append right rows which matched nothing on the left, in row order
	for i := 0; i < right.NumRows(); i++ {
		entry := findEntry(index, right.GetRow(i), on)
		if entry == nil || entry.matched {
			continue
		}
		rrow := right.GetRow(i)
		newRow := result.AppendEmptyRow()
		for _, name := range append(append([]string{}, on...), rightValueCols...) {
			val, err := rrow.Get(name)
			if err != nil {
				return nil, err
			}
			if err := newRow.Set(name, val); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func findEntry(index map[uint64][]*rightEntry, row tally.Row, on []string) *rightEntry {
	keyBuf, _, err := rowKey(row, on)
	if err != nil {
		return nil
	}
	for _, entry := range index[xxhash.Sum64(keyBuf)] {
		if bytes.Equal(entry.key, keyBuf) {
			return entry
		}
	}
	return nil
}

// rowKey renders the named cells into comparable key bytes, plus a
// printable form for error messages. Nil cells key as a distinct marker.
func rowKey(row tally.Row, on []string) ([]byte, string, error) {
	var buf bytes.Buffer
	printable := make([]string, 0, len(on))
	for _, name := range on {
		if row.IsNil(name) {
			buf.WriteByte(0x00)
			buf.WriteByte(0x1f)
			printable = append(printable, "nil")
			continue
		}
		buf.WriteByte(0x01)
		col, err := row.Schema().GetColumn(name)
		if err != nil {
			return nil, "", err
		}
		val, err := row.Get(name)
		if err != nil {
			return nil, "", err
		}
		rendered, err := col.Type().Render(val)
		if err != nil {
			return nil, "", err
		}
		buf.WriteString(rendered)
		buf.WriteByte(0x1f)
		printable = append(printable, rendered)
	}
	return buf.Bytes(), "(" + strings.Join(printable, ", ") + ")", nil
}
