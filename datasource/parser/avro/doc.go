// Package avro parses Avro object container files via
// https://github.com/linkedin/goavro. Record fields map to Schema columns
// by name; union values are unwrapped before conversion.
package avro
