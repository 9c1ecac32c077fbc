package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/receipt"
	"github.com/ibcheck/ibcheck/internal/ui"
)

func newReceiptCommand(repoDir *string) *cobra.Command {
	var terms []string

	cmd := &cobra.Command{
		Use:   "receipt <file.pdf>...",
		Short: "Check that PDF receipts or statements contain every expected term",
		Long: `Extracts the text of each PDF and looks for every --term in it.
Relative paths are resolved against the project's receipts directory
when they do not exist in the working directory.`,
		Example: `  ibcheck receipt transfer-0042.pdf --term "MUR 1,000.00" --term "own account transfer"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(terms) == 0 {
				return fmt.Errorf("at least one --term is required")
			}
			p, err := loadProject(*repoDir)
			if err != nil {
				return err
			}

			failed := false
			for _, arg := range args {
				path := resolveReceipt(p, arg)
				report, err := receipt.Verify(receipt.PDFExtractor{}, path, terms)
				if err != nil {
					ui.Error(err.Error())
					failed = true
					continue
				}
				if report.Pass() {
					ui.Success(filepath.Base(path))
					continue
				}
				failed = true
				ui.Error(filepath.Base(path))
				for _, m := range report.Missing {
					ui.Info(fmt.Sprintf("missing %q", m))
				}
			}
			if failed {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&terms, "term", nil, "expected term (repeatable)")

	return cmd
}

func resolveReceipt(p *project, arg string) string {
	if filepath.IsAbs(arg) || fileExists(arg) {
		return arg
	}
	return filepath.Join(p.path(p.cfg.Paths.ReceiptsDir), arg)
}
