package file

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/datasource/parser/dsv"
	terrors "github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/schema"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"
)

func createTestSchema() tally.Schema {
	s := schema.CreateSchema()
	s.CreateColumn("counter_party", &tally.VarStringColumnType{})
	s.CreateColumn("value", &tally.Float64ColumnType{})
	return s
}

func TestLoadGlobAppendsPartsInSortedOrder(t *testing.T) {
	dir, err := ioutil.TempDir("", "tally-load")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	// written out of order on purpose
	require.Nil(t, ioutil.WriteFile(
		filepath.Join(dir, "part-01.csv"),
		[]byte("counter_party,value\nC3,30\n"), 0644))
	require.Nil(t, ioutil.WriteFile(
		filepath.Join(dir, "part-00.csv"),
		[]byte("counter_party,value\nC1,10\nC2,20\n"), 0644))

	parser := dsv.CreateParser(&dsv.ParserConf{})
	f, err := Load(filepath.Join(dir, "part-*.csv"), parser, createTestSchema())
	require.Nil(t, err)
	require.Equal(t, 3, f.NumRows())

	for i, expected := range []string{"C1", "C2", "C3"} {
		cp, err := f.GetRow(i).GetString("counter_party")
		require.Nil(t, err)
		require.Equal(t, expected, cp)
	}
}

func TestLoadMissingFileIsLoadError(t *testing.T) {
	parser := dsv.CreateParser(&dsv.ParserConf{})
	_, err := Load("/nonexistent/input.csv", parser, createTestSchema())
	require.NotNil(t, err)
	lerr, ok := err.(terrors.LoadError)
	require.True(t, ok)
	require.Equal(t, "/nonexistent/input.csv", lerr.Path)
}

func TestLoadCompressedFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "tally-load-lz4")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "input.csv.lz4")
	fd, err := os.Create(path)
	require.Nil(t, err)
	zw := lz4.NewWriter(fd)
	_, err = zw.Write([]byte("counter_party,value\nC1,42\n"))
	require.Nil(t, err)
	require.Nil(t, zw.Close())
	require.Nil(t, fd.Close())

	parser := dsv.CreateParser(&dsv.ParserConf{})
	f, err := Load(path, parser, createTestSchema())
	require.Nil(t, err)
	require.Equal(t, 1, f.NumRows())
	val, err := f.GetRow(0).GetFloat64("value")
	require.Nil(t, err)
	require.Equal(t, 42.0, val)
}
