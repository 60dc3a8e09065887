package avro

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
	goavro "github.com/linkedin/goavro/v2"
)

// Parser produces Frames from Avro object container files
type Parser struct{}

// CreateParser returns a new Avro Parser
func CreateParser() *Parser {
	return &Parser{}
}

// Parse parses an Avro object container file to produce a Frame
func (p *Parser) Parse(r io.Reader, schema tally.Schema) (tally.Frame, error) {
	ocfr, err := goavro.NewOCFReader(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	result := frame.CreateFrame(schema.Clone())
	for ocfr.Scan() {
		datum, err := ocfr.Read()
		if err != nil {
			return nil, err
		}
		record, ok := datum.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("avro datum is not a record: %#v", datum)
		}
		row := result.AppendEmptyRow()
		for i, name := range names {
			val := unwrapUnion(record[name])
			if val == nil {
				if err := row.SetNil(name); err != nil {
					return nil, err
				}
				continue
			}
			converted, err := convertValue(val, name, colTypes[i])
			if err != nil {
				return nil, err
			}
			if err := row.Set(name, converted); err != nil {
				return nil, err
			}
		}
	}
	if err := ocfr.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// unwrapUnion strips goavro's single-entry union wrapper, if present
func unwrapUnion(val interface{}) interface{} {
	if m, ok := val.(map[string]interface{}); ok && len(m) == 1 {
		for _, inner := range m {
			return inner
		}
	}
	return val
}

// convertValue coerces a goavro native value into the column's stored type
func convertValue(val interface{}, colName string, colType tally.ColumnType) (interface{}, error) {
	switch colType.(type) {
	case *tally.VarStringColumnType:
		switch v := val.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		}
	case *tally.Float64ColumnType:
		switch v := val.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case int32:
			return float64(v), nil
		}
	case *tally.Int64ColumnType:
		switch v := val.(type) {
		case int64:
			return v, nil
		case int32:
			return int64(v), nil
		}
	case *tally.BoolColumnType:
		if v, ok := val.(bool); ok {
			return v, nil
		}
	case *tally.TimeColumnType:
		if v, ok := val.(time.Time); ok {
			return v, nil
		}
	default:
		return nil, fmt.Errorf("avro parsing does not support column type %T", colType)
	}
	return nil, fmt.Errorf("column %s cannot hold avro value %#v", colName, val)
}
