// Package reconcile builds a reconciliation summary from an invoice
// extract and counterparty reference data. The pipeline is a linear
// sequence of pure frame-to-frame stages: drop the invoice identifier,
// split by status, aggregate each status by (legal_entity, counter_party),
// outer-merge the aggregates, join reference data, compute ratings and
// zero-fill, then save. Any stage failure aborts the run; no output file
// is produced on failure.
package reconcile
