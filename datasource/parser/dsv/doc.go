// Package dsv parses delimiter-separated values (such as CSV or TSV).
// The first non-comment line of a file is expected to be a header, which
// maps file columns to Schema columns by name. File columns which do not
// appear in the Schema are ignored.
package dsv
