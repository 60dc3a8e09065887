// Package transform provides the relational operations of Tally. Every
// operation is eager: it consumes a Frame and produces a new one, leaving
// its input untouched.
package transform
