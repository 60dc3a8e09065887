package transform

import (
	"testing"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
	"github.com/go-tally/tally/schema"
	"github.com/stretchr/testify/require"
)

func createReduceFrame() tally.Frame {
	s := schema.CreateSchema()
	s.CreateColumn("group", &tally.VarStringColumnType{})
	s.CreateColumn("amount", &tally.Float64ColumnType{})
	f := frame.CreateFrame(s)
	for _, r := range []struct {
		group  string
		amount interface{}
	}{{"b", 5.0}, {"a", 1.0}, {"b", 2.0}, {"a", nil}, {"a", 4.0}} {
		row := f.AppendEmptyRow()
		row.SetString("group", r.group)
		row.Set("amount", r.amount)
	}
	return f
}

func groupKey(row tally.Row) ([]byte, error) {
	group, err := row.GetString("group")
	if err != nil {
		return nil, err
	}
	return []byte(group), nil
}

func sumAmount(acc tally.Row, row tally.Row) error {
	if row.IsNil("amount") {
		return nil
	}
	val, err := row.GetFloat64("amount")
	if err != nil {
		return err
	}
	if acc.IsNil("amount") {
		return acc.SetFloat64("amount", val)
	}
	sum, err := acc.GetFloat64("amount")
	if err != nil {
		return err
	}
	return acc.SetFloat64("amount", sum+val)
}

func TestReduceSumsByGroupInFirstSeenOrder(t *testing.T) {
	result, err := Reduce(createReduceFrame(), groupKey, sumAmount)
	require.Nil(t, err)
	require.Equal(t, 2, result.NumRows())

	group, err := result.GetRow(0).GetString("group")
	require.Nil(t, err)
	require.Equal(t, "b", group)
	amount, err := result.GetRow(0).GetFloat64("amount")
	require.Nil(t, err)
	require.Equal(t, 7.0, amount)

	group, err = result.GetRow(1).GetString("group")
	require.Nil(t, err)
	require.Equal(t, "a", group)
	amount, err = result.GetRow(1).GetFloat64("amount")
	require.Nil(t, err)
	require.Equal(t, 5.0, amount)
}

func TestReduceSingletonGroupsPassThrough(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("group", &tally.VarStringColumnType{})
	s.CreateColumn("amount", &tally.Float64ColumnType{})
	f := frame.CreateFrame(s)
	row := f.AppendEmptyRow()
	row.SetString("group", "only")
	row.SetFloat64("amount", 3.5)

	result, err := Reduce(f, groupKey, sumAmount)
	require.Nil(t, err)
	require.Equal(t, 1, result.NumRows())
	amount, err := result.GetRow(0).GetFloat64("amount")
	require.Nil(t, err)
	require.Equal(t, 3.5, amount)
}

func TestReducePropagatesKeyErrors(t *testing.T) {
	f := createReduceFrame()
	f.AppendEmptyRow() // nil group makes GetString fail
	_, err := Reduce(f, groupKey, sumAmount)
	require.NotNil(t, err)
}
