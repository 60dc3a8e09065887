package reconcile

import (
	"fmt"

	"github.com/go-tally/tally/logging"
	"github.com/go-tally/tally/sink"
	"github.com/gofrs/uuid"
)

// Config holds the three paths a reconciliation run recognises
type Config struct {
	InvoicesPath  string // invoice extract (dataset A)
	ReferencePath string // counterparty reference data (dataset B)
	ResultPath    string // destination for the summary
}

// Run executes the full reconciliation: load, transform, save. Each stage
// failure aborts the run with the stage named in the returned error, and
// no output file is left behind.
func Run(cfg Config, logger *logging.Logger) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	runID := id.String()

	logger.Infof("[%s] loading datasets %s and %s", runID, cfg.InvoicesPath, cfg.ReferencePath)
	invoices, reference, err := LoadDatasets(cfg.InvoicesPath, cfg.ReferencePath)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}
	logger.Infof("[%s] loaded %d invoice rows and %d reference rows", runID, invoices.NumRows(), reference.NumRows())

	trimmed, err := DropInvoiceID(invoices)
	if err != nil {
		return fmt.Errorf("drop invoice id: %w", err)
	}

	arap, accr, err := SplitByStatus(trimmed)
	if err != nil {
		return fmt.Errorf("split by status: %w", err)
	}
	logger.Infof("[%s] split into %d %s rows and %d %s rows", runID, arap.NumRows(), StatusARAP, accr.NumRows(), StatusACCR)

	arapAgg, err := AggregateByPair(arap, LabelARAP)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", StatusARAP, err)
	}
	accrAgg, err := AggregateByPair(accr, LabelACCR)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", StatusACCR, err)
	}

	merged, err := MergeAggregates(arapAgg, accrAgg)
	if err != nil {
		return fmt.Errorf("merge aggregates: %w", err)
	}
	logger.Infof("[%s] merged aggregates cover %d (legal_entity, counter_party) pairs", runID, merged.NumRows())

	joined, err := JoinReference(merged, reference)
	if err != nil {
		return fmt.Errorf("join reference data: %w", err)
	}

	summary, err := FinalizeRatings(joined)
	if err != nil {
		return fmt.Errorf("finalize ratings: %w", err)
	}

	if err := sink.Write(cfg.ResultPath, summary, nil); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	logger.Infof("[%s] wrote %d rows to %s", runID, summary.NumRows(), cfg.ResultPath)
	return nil
}
