package jsonl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/frame"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines. Defaults to bufio.MaxScanTokenSize.
}

// Parser produces Frames from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Frame
func (p *Parser) Parse(r io.Reader, schema tally.Schema) (tally.Frame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	result := frame.CreateFrame(schema.Clone())
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		row := result.AppendEmptyRow()
		for i, name := range names {
			if err := parseValue(gjson.GetBytes(line, name), name, colTypes[i], row); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// parseValue stores a single gjson result into a row, according to the column type
func parseValue(res gjson.Result, colName string, colType tally.ColumnType, row tally.Row) error {
	if !res.Exists() || res.Type == gjson.Null {
		return row.SetNil(colName)
	}
	switch colType.(type) {
	case *tally.VarStringColumnType:
		if res.Type != gjson.String {
			return fmt.Errorf("column %s was not a string. Was: %s", colName, res.Raw)
		}
		return row.SetString(colName, res.String())
	case *tally.Float64ColumnType:
		if res.Type != gjson.Number {
			return fmt.Errorf("column %s was not a number. Was: %s", colName, res.Raw)
		}
		return row.SetFloat64(colName, res.Float())
	case *tally.Int64ColumnType:
		if res.Type != gjson.Number {
			return fmt.Errorf("column %s was not a number. Was: %s", colName, res.Raw)
		}
		return row.SetInt64(colName, res.Int())
	case *tally.BoolColumnType:
		if res.Type != gjson.True && res.Type != gjson.False {
			return fmt.Errorf("column %s was not a boolean. Was: %s", colName, res.Raw)
		}
		return row.SetBool(colName, res.Bool())
	case *tally.TimeColumnType:
		format := colType.(*tally.TimeColumnType).Format
		if res.Type != gjson.String {
			return fmt.Errorf("column %s was not a string. Was: %s", colName, res.Raw)
		}
		tval, err := time.Parse(format, res.String())
		if err != nil {
			return fmt.Errorf("column %s could not be parsed as a datetime with format %s. Was: %s", colName, format, res.Raw)
		}
		return row.SetTime(colName, tval)
	}
	return fmt.Errorf("JSONL parsing does not support column type %T", colType)
}
