package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/history"
	"github.com/ibcheck/ibcheck/internal/ui"
)

func newHistoryCommand(repoDir *string) *cobra.Command {
	var date, amt, remarks string

	cmd := &cobra.Command{
		Use:   "history <rows.txt|->",
		Short: "Find an expected transaction in captured history rows",
		Long: `Reads one rendered history row per line and reports the first row that
contains the transaction's date, signed amount and remarks. The amount is
searched for as given, so pass it the way the history list shows it
("- € 50.00", "Rs 500.00"). Dates use verification.date_format from ibcheck.yaml.`,
		Example: `  ibcheck history rows.txt --date 01/02/2024 --amount "- € 50.00" --remarks Salary`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*repoDir)
			if err != nil {
				return err
			}
			layout := p.cfg.Verification.DateFormat
			if layout == "" {
				layout = history.DefaultDateLayout
			}

			m, err := p.currencies().ParseMoney(amt)
			if err != nil {
				return err
			}
			e := history.Entry{Amount: m.Value, Currency: m.Currency, Display: amt, Remarks: remarks}
			if date != "" {
				e.Date, err = time.Parse(layout, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			rows, err := readRows(args[0])
			if err != nil {
				return err
			}

			i, err := history.Find(rows, e, layout)
			if err != nil {
				ui.Error(err.Error())
				return errChecksFailed
			}
			ui.Success(fmt.Sprintf("found at row %d", i+1))
			ui.Info(rows[i])
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date")
	cmd.Flags().StringVar(&amt, "amount", "", `signed amount as displayed, e.g. "- € 50.00" (required)`)
	cmd.Flags().StringVar(&remarks, "remarks", "", "transaction remarks")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// readRows returns the non-blank lines of path, or of stdin for "-".
func readRows(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening rows: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rows []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
