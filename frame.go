package tally

// Frame is an in-memory table: a Schema plus zero or more Rows of
// nullable cells. Transform operations consume a Frame and produce
// a new one, leaving the input untouched.
type Frame interface {
	Schema() Schema                 // Schema returns the Schema shared by all rows of this Frame
	NumRows() int                   // NumRows returns the number of rows in this Frame
	GetRow(idx int) Row             // GetRow returns a mutable view of the row at the given position
	AppendEmptyRow() Row            // AppendEmptyRow appends a row of all-nil cells and returns it
	AppendRow(row Row) error        // AppendRow appends a copy of row, matching cells by column name. Every column of this Frame must exist in row's Schema.
	ForEachRow(fn MapOperation) error // ForEachRow visits each row in order, stopping at the first error
	Clone() Frame                   // Clone returns a deep copy of this Frame
}
