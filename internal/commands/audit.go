package commands

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/logging"
)

// errAuditFailed signals a completed audit with discrepancies. It maps to
// exit code 1 without implying the audit could not run.
var errAuditFailed = errors.New("audit failed")

func newAuditCommand() *cobra.Command {
	var (
		paths      tally.Paths
		output     string
		period     string
		tolerance  float64
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit financial statements against accounting identities",
		Long: `Audit cross-validates a balance sheet and its account change table, and
optionally an income statement with detail records and a transaction
listing. The report prints to stdout; --output additionally writes a
multi-sheet workbook. Exit code is 0 when the audit passes, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logging.SetVerbose()
			}
			log := logging.Get()

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("tolerance") {
				cfg.Tolerance = tolerance
			}
			if cmd.Flags().Changed("period") {
				cfg.Period = period
			}

			opts := tally.Options{
				Tolerance: cfg.ToleranceDecimal(),
				Period:    cfg.Period,
				Columns:   cfg.Columns,
			}

			result, _, err := tally.AuditFiles(paths, opts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tally.RenderText(result, cfg.Period))

			if output != "" {
				if err := tally.Export(result, cfg.Period, output); err != nil {
					return fmt.Errorf("exporting report: %w", err)
				}
				log.WithFields(logrus.Fields{
					"path":   output,
					"passed": result.IsPassed,
				}).Info("audit report exported")
			}

			if !result.IsPassed {
				return fmt.Errorf("%w: %d unbalanced item(s)", errAuditFailed, len(result.Unbalanced))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&paths.BalanceSheet, "balance-sheet", "b", "", "balance sheet file (csv or xlsx)")
	cmd.Flags().StringVarP(&paths.AccountChanges, "account-changes", "a", "", "account change detail file")
	cmd.Flags().StringVarP(&paths.IncomeStatement, "income-statement", "i", "", "income statement file (optional)")
	cmd.Flags().StringVarP(&paths.IncomeDetails, "income-details", "d", "", "income detail file (optional)")
	cmd.Flags().StringVarP(&paths.Transactions, "transactions", "t", "", "transaction detail file (optional)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report workbook to this path")
	cmd.Flags().StringVarP(&period, "period", "p", "", "period label for the report")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "maximum difference treated as equal")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML column mapping config file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable info logging")

	cmd.Flags().StringVar(&paths.BalanceSheetSheet, "bs-sheet", "", "balance sheet worksheet name")
	cmd.Flags().StringVar(&paths.AccountChangesSheet, "ac-sheet", "", "account changes worksheet name")
	cmd.Flags().StringVar(&paths.IncomeStatementSheet, "is-sheet", "", "income statement worksheet name")
	cmd.Flags().StringVar(&paths.IncomeDetailsSheet, "id-sheet", "", "income details worksheet name")
	cmd.Flags().StringVar(&paths.TransactionsSheet, "trans-sheet", "", "transactions worksheet name")

	_ = cmd.MarkFlagRequired("balance-sheet")
	_ = cmd.MarkFlagRequired("account-changes")

	return cmd
}
