package tally

import "time"

// Row is a representation of a single row of tabular data, along
// with a reference to the Schema for that row. Cells are nullable:
// a nil cell is distinct from any value of the column's type. In
// practice, users of Row call its getter and setter methods to
// retrieve, manipulate and store data.
type Row interface {
	Schema() Schema                                      // Schema returns the schema for this row
	ToString() string                                    // ToString returns a string representation of this row
	IsNil(colName string) bool                           // IsNil returns true iff the given column value is nil in this row. If the column does not exist, this function returns false.
	SetNil(colName string) error                         // SetNil sets the given column value to nil within this row
	Get(colName string) (col interface{}, err error)     // Get returns the value of any column as an interface{}, if it exists. A nil cell yields nil with no error.
	GetString(colName string) (col string, err error)    // GetString retrieves a string from the column with the given name
	GetFloat64(colName string) (col float64, err error)  // GetFloat64 retrieves a float64 from the column with the given name
	GetInt64(colName string) (col int64, err error)      // GetInt64 retrieves an int64 from the column with the given name
	GetBool(colName string) (col bool, err error)        // GetBool retrieves a bool from the column with the given name
	GetTime(colName string) (col time.Time, err error)   // GetTime retrieves a time.Time from the column with the given name
	Set(colName string, value interface{}) error         // Set stores any value accepted by the column's type. A nil value sets the cell to nil.
	SetString(colName string, value string) error        // SetString stores a string in the column with the given name
	SetFloat64(colName string, value float64) error      // SetFloat64 stores a float64 in the column with the given name
	SetInt64(colName string, value int64) error          // SetInt64 stores an int64 in the column with the given name
	SetBool(colName string, value bool) error            // SetBool stores a bool in the column with the given name
	SetTime(colName string, value time.Time) error       // SetTime stores a time.Time in the column with the given name
}
