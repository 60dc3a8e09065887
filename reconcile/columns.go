package reconcile

import (
	"github.com/go-tally/tally"
	"github.com/go-tally/tally/schema"
)

// Column names shared by the input datasets and the summary.
const (
	ColInvoiceID    = "invoice_id"
	ColLegalEntity  = "legal_entity"
	ColCounterParty = "counter_party"
	ColStatus       = "status"
	ColValue        = "value"
	ColRating       = "rating"
	ColTier         = "tier"
	ColRatings      = "ratings"
)

// Status codes recognised by the reconciliation. Rows carrying any other
// status are excluded from both aggregates by policy.
const (
	StatusARAP = "ARAP"
	StatusACCR = "ACCR"
)

// Labels prefixing the per-status aggregate columns.
const (
	LabelARAP = "arap"
	LabelACCR = "accr"
)

// ValueColumn returns the name of the aggregated value column for a label
func ValueColumn(label string) string {
	return label + "_value"
}

// RatingColumn returns the name of the aggregated rating column for a label
func RatingColumn(label string) string {
	return label + "_rating"
}

// InvoiceSchema describes the columns required of the invoice extract
func InvoiceSchema() tally.Schema {
	s := schema.CreateSchema()
	s.CreateColumn(ColInvoiceID, &tally.VarStringColumnType{})
	s.CreateColumn(ColLegalEntity, &tally.VarStringColumnType{})
	s.CreateColumn(ColCounterParty, &tally.VarStringColumnType{})
	s.CreateColumn(ColStatus, &tally.VarStringColumnType{})
	s.CreateColumn(ColValue, &tally.Float64ColumnType{})
	s.CreateColumn(ColRating, &tally.Float64ColumnType{})
	return s
}

// ReferenceSchema describes the columns required of the reference dataset
func ReferenceSchema() tally.Schema {
	s := schema.CreateSchema()
	s.CreateColumn(ColCounterParty, &tally.VarStringColumnType{})
	s.CreateColumn(ColTier, &tally.VarStringColumnType{})
	return s
}

// SummaryColumns is the exact column order of the reconciliation summary
func SummaryColumns() []string {
	return []string{ColLegalEntity, ColCounterParty, ColTier, ColRatings, ValueColumn(LabelARAP), ValueColumn(LabelACCR)}
}
