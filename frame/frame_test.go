package frame

import (
	"testing"

	"github.com/go-tally/tally"
	terrors "github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema() tally.Schema {
	s := schema.CreateSchema()
	s.CreateColumn("name", &tally.VarStringColumnType{})
	s.CreateColumn("amount", &tally.Float64ColumnType{})
	s.CreateColumn("count", &tally.Int64ColumnType{})
	return s
}

func TestFrameAppendAndGet(t *testing.T) {
	f := CreateFrame(createTestSchema())
	require.Equal(t, 0, f.NumRows())

	row := f.AppendEmptyRow()
	require.Equal(t, 1, f.NumRows())
	require.True(t, row.IsNil("name"))
	require.True(t, row.IsNil("amount"))

	require.Nil(t, row.SetString("name", "abc"))
	require.Nil(t, row.SetFloat64("amount", 12.5))
	require.Nil(t, row.SetInt64("count", 3))

	name, err := row.GetString("name")
	require.Nil(t, err)
	require.Equal(t, "abc", name)
	amount, err := row.GetFloat64("amount")
	require.Nil(t, err)
	require.Equal(t, 12.5, amount)
	count, err := row.GetInt64("count")
	require.Nil(t, err)
	require.Equal(t, int64(3), count)
}

func TestRowNilHandling(t *testing.T) {
	f := CreateFrame(createTestSchema())
	row := f.AppendEmptyRow()

	_, err := row.GetString("name")
	require.IsType(t, terrors.NilValueError{}, err)

	require.Nil(t, row.SetString("name", "abc"))
	require.False(t, row.IsNil("name"))
	require.Nil(t, row.SetNil("name"))
	require.True(t, row.IsNil("name"))

	// Get on a nil cell yields nil with no error
	val, err := row.Get("name")
	require.Nil(t, err)
	require.Nil(t, val)
}

func TestRowTypeChecking(t *testing.T) {
	f := CreateFrame(createTestSchema())
	row := f.AppendEmptyRow()

	err := row.Set("amount", "not a number")
	require.IsType(t, terrors.IncompatibleTypeError{}, err)

	require.Nil(t, row.SetFloat64("amount", 1.0))
	_, err = row.GetString("amount")
	require.IsType(t, terrors.IncompatibleTypeError{}, err)

	_, err = row.Get("missing")
	require.IsType(t, terrors.NoSuchColumnError{}, err)
}

func TestFrameAppendRowCopiesByName(t *testing.T) {
	src := CreateFrame(createTestSchema())
	row := src.AppendEmptyRow()
	row.SetString("name", "abc")
	row.SetFloat64("amount", 2.0)

	// destination with fewer columns, different order
	destSchema := schema.CreateSchema()
	destSchema.CreateColumn("amount", &tally.Float64ColumnType{})
	destSchema.CreateColumn("name", &tally.VarStringColumnType{})
	dest := CreateFrame(destSchema)

	require.Nil(t, dest.AppendRow(src.GetRow(0)))
	require.Equal(t, 1, dest.NumRows())
	name, err := dest.GetRow(0).GetString("name")
	require.Nil(t, err)
	require.Equal(t, "abc", name)
	amount, err := dest.GetRow(0).GetFloat64("amount")
	require.Nil(t, err)
	require.Equal(t, 2.0, amount)
}

func TestFrameCloneIsDeep(t *testing.T) {
	f := CreateFrame(createTestSchema())
	row := f.AppendEmptyRow()
	row.SetString("name", "abc")

	clone := f.Clone()
	clone.GetRow(0).SetString("name", "xyz")
	clone.AppendEmptyRow()

	name, err := f.GetRow(0).GetString("name")
	require.Nil(t, err)
	require.Equal(t, "abc", name)
	require.Equal(t, 1, f.NumRows())
	require.Equal(t, 2, clone.NumRows())
}

func TestFrameForEachRowStopsOnError(t *testing.T) {
	f := CreateFrame(createTestSchema())
	f.AppendEmptyRow().SetString("name", "a")
	f.AppendEmptyRow().SetString("name", "b")

	visited := 0
	err := f.ForEachRow(func(row tally.Row) error {
		visited++
		return terrors.NilValueError{Name: "name"}
	})
	require.NotNil(t, err)
	require.Equal(t, 1, visited)
}

func TestRowToString(t *testing.T) {
	f := CreateFrame(createTestSchema())
	row := f.AppendEmptyRow()
	row.SetString("name", "abc")
	require.Equal(t, "(name=abc, amount=nil, count=nil)", row.ToString())
}
