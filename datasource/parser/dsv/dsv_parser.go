package dsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/frame"
	"github.com/hashicorp/go-multierror"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter rune   // The delimiter separating columns in the file. Defaults to ,
	Comment   rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue  string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	NoHeader  bool   // When true, the file has no header row and columns are assumed to follow Schema order.
}

// Parser produces Frames from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a Frame
func (p *Parser) Parse(r io.Reader, schema tally.Schema) (tally.Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	names := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	indices, err := p.columnIndices(reader, names)
	if err != nil {
		return nil, err
	}

	result := frame.CreateFrame(schema.Clone())
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row := result.AppendEmptyRow()
		if err := scanRow(p.conf, names, colTypes, indices, record, row); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// columnIndices maps each schema column to its position within a record,
// either via the header row or (with NoHeader) via schema order.
func (p *Parser) columnIndices(reader *csv.Reader, names []string) ([]int, error) {
	indices := make([]int, len(names))
	if p.conf.NoHeader {
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset has no header row")
	} else if err != nil {
		return nil, err
	}
	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.TrimSpace(h)] = i
	}
	var multierr *multierror.Error
	for i, name := range names {
		idx, ok := positions[name]
		if !ok {
			multierr = multierror.Append(multierr, errors.SchemaError{Column: name})
			continue
		}
		indices[i] = idx
	}
	return indices, multierr.ErrorOrNil()
}

// scanRow parses a slice of strings into a Row, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []tally.ColumnType, indices []int, record []string, row tally.Row) error {
	for i := 0; i < len(names); i++ {
		if indices[i] >= len(record) {
			return fmt.Errorf("record is too short to contain column %s", names[i])
		}
		colVal := record[indices[i]]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			if err := row.SetNil(names[i]); err != nil {
				return err
			}
			continue
		}
		// otherwise, parse according to the column type
		val, err := colTypes[i].Parse(colVal)
		if err != nil {
			return fmt.Errorf("column %s: %w", names[i], err)
		}
		if err := row.Set(names[i], val); err != nil {
			return err
		}
	}
	return nil
}
