package tally

// MapOperation - A generic function for manipulating Rows in-place
type MapOperation func(row Row) error

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// KeyingOperation - A generic function for generating a grouping key from a Row
type KeyingOperation func(row Row) ([]byte, error)

// ReductionOperation - A generic function for combining Rows which share a key. rrow is merged into lrow, and rrow is discarded.
type ReductionOperation func(lrow Row, rrow Row) error
