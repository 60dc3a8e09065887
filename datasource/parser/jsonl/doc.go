// Package jsonl parses JSON Lines data. This parser uses
// https://github.com/tidwall/gjson to process data, and supports Schema
// column names formatted as gjson paths. Values within the JSON which do
// not correspond to a Schema column are ignored.
package jsonl
