package cmd

import (
	"github.com/go-tally/tally/reconcile"
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <invoices> <reference> <output>",
	Short: "Reconcile an invoice extract against counterparty reference data",
	Long: `Reconcile loads an invoice extract and a counterparty reference dataset,
aggregates ARAP and ACCR activity by (legal_entity, counter_party), and
writes a summary CSV with the columns
legal_entity, counter_party, tier, ratings, arap_value, accr_value.

Dataset paths may be globs of part-files; the format is chosen by file
extension (.csv, .tsv, .jsonl, .avro, optionally with a trailing .lz4).`,
	Args:         cobra.ExactArgs(3),
	RunE:         reconcileFn,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func reconcileFn(cmd *cobra.Command, args []string) error {
	cfg := reconcile.Config{
		InvoicesPath:  args[0],
		ReferencePath: args[1],
		ResultPath:    args[2],
	}
	return reconcile.Run(cfg, newLogger())
}
