package avro

import (
	"bytes"
	"testing"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/schema"
	goavro "github.com/linkedin/goavro/v2"
	"github.com/stretchr/testify/require"
)

const testAvroSchema = `{
	"type": "record",
	"name": "invoice",
	"fields": [
		{"name": "counter_party", "type": "string"},
		{"name": "value", "type": "int"},
		{"name": "rating", "type": ["null", "double"], "default": null}
	]
}`

func writeTestOCF(t *testing.T, records []map[string]interface{}) *bytes.Buffer {
	var buf bytes.Buffer
	w, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:      &buf,
		Schema: testAvroSchema,
	})
	require.Nil(t, err)
	data := make([]interface{}, len(records))
	for i, r := range records {
		data[i] = r
	}
	require.Nil(t, w.Append(data))
	return &buf
}

func TestAvroParserReadsRecords(t *testing.T) {
	buf := writeTestOCF(t, []map[string]interface{}{
		{"counter_party": "C1", "value": 100, "rating": goavro.Union("double", 4.5)},
		{"counter_party": "C2", "value": 50, "rating": nil},
	})

	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.VarStringColumnType{})
	s.CreateColumn("value", &tally.Float64ColumnType{})
	s.CreateColumn("rating", &tally.Float64ColumnType{})

	f, err := CreateParser().Parse(buf, s)
	require.Nil(t, err)
	require.Equal(t, 2, f.NumRows())

	cp, err := f.GetRow(0).GetString("counter_party")
	require.Nil(t, err)
	require.Equal(t, "C1", cp)

	// int avro values widen into float64 columns
	val, err := f.GetRow(0).GetFloat64("value")
	require.Nil(t, err)
	require.Equal(t, 100.0, val)

	// union values are unwrapped
	rating, err := f.GetRow(0).GetFloat64("rating")
	require.Nil(t, err)
	require.Equal(t, 4.5, rating)

	// null union branch becomes a nil cell
	require.True(t, f.GetRow(1).IsNil("rating"))
}

func TestAvroParserRejectsIncompatibleValues(t *testing.T) {
	buf := writeTestOCF(t, []map[string]interface{}{
		{"counter_party": "C1", "value": 100, "rating": nil},
	})

	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.BoolColumnType{})

	_, err := CreateParser().Parse(buf, s)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "counter_party")
}

func TestAvroParserRejectsGarbage(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.VarStringColumnType{})
	_, err := CreateParser().Parse(bytes.NewReader([]byte("not avro")), s)
	require.NotNil(t, err)
}
