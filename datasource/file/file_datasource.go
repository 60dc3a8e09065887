package file

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/datasource"
	terrors "github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/frame"
	"github.com/pierrec/lz4"
	"golang.org/x/sync/errgroup"
)

// Load reads every file matching pattern into a single Frame using the
// given parser. A pattern matching nothing is treated as a literal path,
// so a missing file surfaces as a LoadError for that path. Files ending
// in the compressed extension are transparently decompressed.
func Load(pattern string, parser datasource.Parser, schema tally.Schema) (tally.Frame, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, terrors.LoadError{Path: pattern, Cause: err}
	}
	if len(paths) == 0 {
		paths = []string{pattern}
	}
	sort.Strings(paths)

	parts := make([]tally.Frame, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			part, err := loadOne(path, parser, schema)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	result := frame.CreateFrame(schema.Clone())
	for _, part := range parts {
		for i := 0; i < part.NumRows(); i++ {
			if err := result.AppendRow(part.GetRow(i)); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func loadOne(path string, parser datasource.Parser, schema tally.Schema) (tally.Frame, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, terrors.LoadError{Path: path, Cause: err}
	}
	defer fd.Close()
	var r io.Reader = fd
	if strings.EqualFold(filepath.Ext(path), datasource.CompressedExt) {
		r = lz4.NewReader(fd)
	}
	result, err := parser.Parse(r, schema)
	if err != nil {
		return nil, terrors.LoadError{Path: path, Cause: err}
	}
	return result, nil
}
