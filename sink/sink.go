// Package sink writes Frames to delimited text files. Output is written
// to a temporary file beside the destination and renamed into place only
// on success, so a failed run never leaves partial output behind.
package sink

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-tally/tally"
	terrors "github.com/go-tally/tally/errors"
	"github.com/gofrs/uuid"
	"github.com/pierrec/lz4"
)

// Conf configures a delimited writer
type Conf struct {
	Delimiter rune   // The delimiter separating columns in the file. Defaults to ,
	NilValue  string // The string written for nil cells. Defaults to "" (the empty string).
}

// Write renders a Frame as delimited text with a header row and no index
// column. A destination ending in the compressed extension is
// lz4-compressed. Columns appear in Schema order.
func Write(path string, f tally.Frame, conf *Conf) error {
	if conf == nil {
		conf = &Conf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}

	id, err := uuid.NewV4()
	if err != nil {
		return terrors.WriteError{Path: path, Cause: err}
	}
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+id.String()+".tmp")
	fd, err := os.Create(tmpPath)
	if err != nil {
		return terrors.WriteError{Path: path, Cause: err}
	}

	if err := writeTo(fd, path, f, conf); err != nil {
		fd.Close()
		os.Remove(tmpPath)
		return terrors.WriteError{Path: path, Cause: err}
	}
	if err := fd.Close(); err != nil {
		os.Remove(tmpPath)
		return terrors.WriteError{Path: path, Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return terrors.WriteError{Path: path, Cause: err}
	}
	return nil
}

func writeTo(w io.Writer, path string, f tally.Frame, conf *Conf) error {
	var compressor *lz4.Writer
	if strings.EqualFold(filepath.Ext(path), ".lz4") {
		compressor = lz4.NewWriter(w)
		w = compressor
	}

	writer := csv.NewWriter(w)
	writer.Comma = conf.Delimiter
	if err := writer.Write(f.Schema().ColumnNames()); err != nil {
		return err
	}

	colTypes := f.Schema().ColumnTypes()
	names := f.Schema().ColumnNames()
	record := make([]string, len(names))
	err := f.ForEachRow(func(row tally.Row) error {
		for i, name := range names {
			val, err := row.Get(name)
			if err != nil {
				return err
			}
			if val == nil {
				record[i] = conf.NilValue
				continue
			}
			rendered, err := colTypes[i].Render(val)
			if err != nil {
				return err
			}
			record[i] = rendered
		}
		return writer.Write(record)
	})
	if err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if compressor != nil {
		return compressor.Close()
	}
	return nil
}
