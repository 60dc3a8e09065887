// Package datasource defines how tabular data enters Tally, and selects
// a Parser for a dataset based on its file extension.
package datasource

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/datasource/parser/avro"
	"github.com/go-tally/tally/datasource/parser/dsv"
	"github.com/go-tally/tally/datasource/parser/jsonl"
)

// Parser produces a Frame from raw bytes, populating the columns
// named by the given Schema.
type Parser interface {
	Parse(r io.Reader, schema tally.Schema) (tally.Frame, error)
}

// CompressedExt marks a dataset whose byte stream is lz4-compressed.
// The extension underneath it selects the parser.
const CompressedExt = ".lz4"

// ParserFor selects a Parser with default configuration based on the
// extension of path, ignoring a trailing CompressedExt.
func ParserFor(path string) (Parser, error) {
	if strings.EqualFold(filepath.Ext(path), CompressedExt) {
		path = path[:len(path)-len(CompressedExt)]
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".dsv":
		return dsv.CreateParser(&dsv.ParserConf{}), nil
	case ".tsv":
		return dsv.CreateParser(&dsv.ParserConf{Delimiter: '\t'}), nil
	case ".jsonl", ".ndjson":
		return jsonl.CreateParser(&jsonl.ParserConf{}), nil
	case ".avro":
		return avro.CreateParser(), nil
	}
	return nil, fmt.Errorf("no parser is registered for extension %q", ext)
}
