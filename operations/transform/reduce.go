package transform

import (
	"bytes"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
)

type groupEntry struct {
	key []byte
	idx int
}

// Reduce groups Rows by the key produced by kfn and merges each subsequent
// member of a group into the group's accumulator row using fn. Groups appear
// in the result in first-seen order.
func Reduce(f tally.Frame, kfn tally.KeyingOperation, fn tally.ReductionOperation) (tally.Frame, error) {
	result := frame.CreateFrame(f.Schema().Clone())
	groups := make(map[uint64][]groupEntry)
	err := f.ForEachRow(func(row tally.Row) error {
		keyBuf, err := kfn(row)
		if err != nil {
			return err
		}
		hash := xxhash.Sum64(keyBuf)
		// key bytes are compared on hash hits to guard against collisions
		for _, entry := range groups[hash] {
			if bytes.Equal(entry.key, keyBuf) {
				return fn(result.GetRow(entry.idx), row)
			}
		}
		if err := result.AppendRow(row); err != nil {
			return err
		}
		key := make([]byte, len(keyBuf))
		copy(key, keyBuf)
		groups[hash] = append(groups[hash], groupEntry{key: key, idx: result.NumRows() - 1})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
