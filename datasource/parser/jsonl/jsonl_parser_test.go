package jsonl

import (
	"strings"
	"testing"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/schema"
	"github.com/stretchr/testify/require"
)

func TestJSONLParserTypedValues(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.VarStringColumnType{})
	s.CreateColumn("value", &tally.Float64ColumnType{})
	s.CreateColumn("count", &tally.Int64ColumnType{})
	s.CreateColumn("open", &tally.BoolColumnType{})

	data := `{"counter_party":"C1","value":12.5,"count":3,"open":true}` + "\n" +
		"\n" + // blank lines are skipped
		`{"counter_party":"C2","value":100,"count":0,"open":false}` + "\n"
	parser := CreateParser(&ParserConf{})
	f, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.Equal(t, 2, f.NumRows())

	cp, err := f.GetRow(0).GetString("counter_party")
	require.Nil(t, err)
	require.Equal(t, "C1", cp)
	val, err := f.GetRow(0).GetFloat64("value")
	require.Nil(t, err)
	require.Equal(t, 12.5, val)
	count, err := f.GetRow(1).GetInt64("count")
	require.Nil(t, err)
	require.Equal(t, int64(0), count)
	open, err := f.GetRow(1).GetBool("open")
	require.Nil(t, err)
	require.False(t, open)
}

func TestJSONLParserNestedPaths(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("party.name", &tally.VarStringColumnType{})
	s.CreateColumn("party.rating", &tally.Float64ColumnType{})

	data := `{"party":{"name":"C1","rating":4}}` + "\n"
	parser := CreateParser(&ParserConf{})
	f, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.Equal(t, 1, f.NumRows())

	name, err := f.GetRow(0).GetString("party.name")
	require.Nil(t, err)
	require.Equal(t, "C1", name)
	rating, err := f.GetRow(0).GetFloat64("party.rating")
	require.Nil(t, err)
	require.Equal(t, 4.0, rating)
}

func TestJSONLParserNullAndMissingAreNil(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.VarStringColumnType{})
	s.CreateColumn("value", &tally.Float64ColumnType{})

	data := `{"counter_party":null}` + "\n"
	parser := CreateParser(&ParserConf{})
	f, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.True(t, f.GetRow(0).IsNil("counter_party"))
	require.True(t, f.GetRow(0).IsNil("value"))
}

func TestJSONLParserRejectsWrongTypes(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("value", &tally.Float64ColumnType{})

	data := `{"value":"not a number"}` + "\n"
	parser := CreateParser(&ParserConf{})
	_, err := parser.Parse(strings.NewReader(data), s)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "value")
}
