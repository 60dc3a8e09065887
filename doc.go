// Package tally contains the core components of Tally, a small engine for
// reconciling tabular financial data on a single machine. This root package
// defines the types which are employed during regular use of the engine, as
// well as in its extension, and is a good overview of Tally's key concepts.
package tally
