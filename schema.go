package tally

// Schema is an ordered mapping from column names to typed
// Columns within a Frame. It allows one to look up columns
// by name, define new columns, remove columns, etc.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	RemoveColumn(colName string) (newSchema Schema, err error)
	Require(colNames ...string) error // Require returns an error describing every named column which is absent
	ColumnNames() []string
	ColumnTypes() []ColumnType
	ForEachColumn(fn func(name string, col Column) error) error
}
