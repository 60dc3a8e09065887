package reconcile

import (
	"bytes"

	"github.com/go-tally/tally"
	"github.com/go-tally/tally/datasource"
	"github.com/go-tally/tally/datasource/file"
	terrors "github.com/go-tally/tally/errors"
	"github.com/go-tally/tally/operations/transform"
)

// LoadDatasets reads the invoice extract and the reference dataset. Each
// path may be a glob of part-files; the parser is selected by extension.
func LoadDatasets(invoicesPath string, referencePath string) (tally.Frame, tally.Frame, error) {
	invoices, err := loadDataset(invoicesPath, InvoiceSchema())
	if err != nil {
		return nil, nil, err
	}
	reference, err := loadDataset(referencePath, ReferenceSchema())
	if err != nil {
		return nil, nil, err
	}
	return invoices, reference, nil
}

func loadDataset(path string, schema tally.Schema) (tally.Frame, error) {
	parser, err := datasource.ParserFor(path)
	if err != nil {
		return nil, terrors.LoadError{Path: path, Cause: err}
	}
	return file.Load(path, parser, schema)
}

// DropInvoiceID removes the invoice identifier column, which plays no
// further part in the reconciliation
func DropInvoiceID(invoices tally.Frame) (tally.Frame, error) {
	if err := invoices.Schema().Require(ColInvoiceID); err != nil {
		return nil, err
	}
	return transform.RemoveColumns(invoices, ColInvoiceID)
}

// SplitByStatus partitions invoices into the ARAP and ACCR subsets. Rows
// carrying any other status value are excluded from both.
func SplitByStatus(invoices tally.Frame) (arap tally.Frame, accr tally.Frame, err error) {
	arap, err = transform.Filter(invoices, statusIs(StatusARAP))
	if err != nil {
		return nil, nil, err
	}
	accr, err = transform.Filter(invoices, statusIs(StatusACCR))
	if err != nil {
		return nil, nil, err
	}
	return arap, accr, nil
}

func statusIs(status string) tally.FilterOperation {
	return func(row tally.Row) (bool, error) {
		if row.IsNil(ColStatus) {
			return false, nil
		}
		val, err := row.GetString(ColStatus)
		if err != nil {
			return false, err
		}
		return val == status, nil
	}
}

// AggregateByPair groups a status subset by (legal_entity, counter_party),
// summing value and taking the maximum rating per pair. The aggregate
// columns are renamed with the given label so both statuses remain
// distinguishable after the merge. Nil cells are excluded from sum and max.
func AggregateByPair(subset tally.Frame, label string) (tally.Frame, error) {
	grouped, err := transform.Reduce(subset, pairKey, sumValueMaxRating)
	if err != nil {
		return nil, err
	}
	grouped, err = transform.RemoveColumns(grouped, ColStatus)
	if err != nil {
		return nil, err
	}
	grouped, err = transform.RenameColumn(grouped, ColValue, ValueColumn(label))
	if err != nil {
		return nil, err
	}
	return transform.RenameColumn(grouped, ColRating, RatingColumn(label))
}

// pairKey produces grouping key bytes from (legal_entity, counter_party)
func pairKey(row tally.Row) ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range []string{ColLegalEntity, ColCounterParty} {
		if row.IsNil(name) {
			buf.WriteByte(0x00)
			buf.WriteByte(0x1f)
			continue
		}
		val, err := row.GetString(name)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(0x01)
		buf.WriteString(val)
		buf.WriteByte(0x1f)
	}
	return buf.Bytes(), nil
}

// sumValueMaxRating merges rrow into lrow: value cells are summed and
// rating cells keep the maximum, skipping nils on either side
func sumValueMaxRating(lrow tally.Row, rrow tally.Row) error {
	if !rrow.IsNil(ColValue) {
		rval, err := rrow.GetFloat64(ColValue)
		if err != nil {
			return err
		}
		if lrow.IsNil(ColValue) {
			if err := lrow.SetFloat64(ColValue, rval); err != nil {
				return err
			}
		} else {
			lval, err := lrow.GetFloat64(ColValue)
			if err != nil {
				return err
			}
			if err := lrow.SetFloat64(ColValue, lval+rval); err != nil {
				return err
			}
		}
	}
	if !rrow.IsNil(ColRating) {
		rval, err := rrow.GetFloat64(ColRating)
		if err != nil {
			return err
		}
		if lrow.IsNil(ColRating) {
			return lrow.SetFloat64(ColRating, rval)
		}
		lval, err := lrow.GetFloat64(ColRating)
		if err != nil {
			return err
		}
		if rval > lval {
			return lrow.SetFloat64(ColRating, rval)
		}
	}
	return nil
}

// MergeAggregates outer-joins the two per-status aggregates on
// (legal_entity, counter_party). The join must be outer: a pair active on
// only one side must survive, with nil cells on the other side.
func MergeAggregates(arapAgg tally.Frame, accrAgg tally.Frame) (tally.Frame, error) {
	return transform.Join(arapAgg, accrAgg, []string{ColLegalEntity, ColCounterParty}, transform.OuterJoin)
}

// JoinReference left-joins the merged aggregates to the reference dataset
// on counter_party. Pairs with no reference row are retained with a nil
// tier rather than silently dropped. A duplicate counter_party in the
// reference dataset is rejected as a JoinError.
func JoinReference(merged tally.Frame, reference tally.Frame) (tally.Frame, error) {
	return transform.Join(merged, reference, []string{ColCounterParty}, transform.LeftJoin)
}

// FinalizeRatings computes ratings as the nil-safe maximum of the two
// per-status ratings, fills the remaining nil numeric cells with zero,
// drops the intermediate rating columns, projects the summary columns in
// their exact order and sorts by (legal_entity, counter_party) so that
// repeated runs produce byte-identical output.
func FinalizeRatings(joined tally.Frame) (tally.Frame, error) {
	withRatings, err := transform.WithColumn(joined, ColRatings, &tally.Float64ColumnType{}, func(row tally.Row) error {
		var best float64
		found := false
		for _, name := range []string{RatingColumn(LabelARAP), RatingColumn(LabelACCR)} {
			if row.IsNil(name) {
				continue
			}
			val, err := row.GetFloat64(name)
			if err != nil {
				return err
			}
			if !found || val > best {
				best = val
				found = true
			}
		}
		if !found {
			return nil // zero-filled below
		}
		return row.SetFloat64(ColRatings, best)
	})
	if err != nil {
		return nil, err
	}
	filled, err := transform.FillNil(withRatings, float64(0), ColRatings, ValueColumn(LabelARAP), ValueColumn(LabelACCR))
	if err != nil {
		return nil, err
	}
	trimmed, err := transform.RemoveColumns(filled, RatingColumn(LabelARAP), RatingColumn(LabelACCR))
	if err != nil {
		return nil, err
	}
	selected, err := transform.SelectColumns(trimmed, SummaryColumns()...)
	if err != nil {
		return nil, err
	}
	return transform.SortBy(selected, ColLegalEntity, ColCounterParty)
}
