package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/dataset"
	"github.com/ibcheck/ibcheck/internal/runlog"
	"github.com/ibcheck/ibcheck/internal/ui"
	"github.com/ibcheck/ibcheck/internal/verify"
)

func newRunCommand(repoDir *string) *cobra.Command {
	var noLog bool

	cmd := &cobra.Command{
		Use:   "run [dataset.csv|dataset.xlsx]...",
		Short: "Run the reconciliation cases of one or more datasets",
		Long: `Loads reconciliation cases from CSV or Excel sheets and checks every
balance movement. Without arguments, every dataset in the data directory
is run. Outcomes are appended to logs/verify-log.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*repoDir)
			if err != nil {
				return err
			}

			files, err := datasetFiles(p, args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				ui.Warning("no datasets found in " + p.path(p.cfg.Paths.DataDir))
				return nil
			}

			tol, err := p.cfg.Tolerance()
			if err != nil {
				return err
			}
			runner := &verify.Runner{Tolerance: tol, Workers: p.cfg.Runner.Workers}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			currencies := p.currencies()
			runID := uuid.NewString()
			reg := dataset.DefaultRegistry()
			var all []verify.Outcome
			invalid := 0

			ui.Header(p.cfg.Project.Name)
			for i, path := range files {
				ui.Step(i+1, len(files), path)

				table, err := reg.LoadFile(path)
				if err != nil {
					return err
				}
				cases, verrs := dataset.DecodeCases(table, currencies)
				for _, ve := range verrs {
					ui.Warning(ve.Error())
				}
				invalid += len(verrs)

				outcomes := runner.Run(ctx, cases)
				for _, o := range outcomes {
					printOutcome(o)
				}
				all = append(all, outcomes...)
			}

			if !noLog && len(all) > 0 {
				now := time.Now().UTC()
				entries := make([]runlog.Entry, len(all))
				for i, o := range all {
					entries[i] = runlog.FromOutcome(runID, now, o)
				}
				if err := runlog.Append(p.path(p.cfg.Paths.LogDir), entries); err != nil {
					return fmt.Errorf("writing verify log: %w", err)
				}
			}

			passed, failed, errored := verify.Summary(all)
			fmt.Fprintf(ui.Out, "\n%d passed, %d failed, %d errors, %d invalid rows (run %s)\n",
				passed, failed, errored, invalid, runID)
			if failed+errored+invalid > 0 {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noLog, "no-log", false, "do not append outcomes to the verify log")

	return cmd
}

// datasetFiles returns args, or the loadable files of the data directory.
func datasetFiles(p *project, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	infos, err := dataset.Scan(p.path(p.cfg.Paths.DataDir))
	if err != nil {
		return nil, err
	}
	files := make([]string, len(infos))
	for i, info := range infos {
		files[i] = info.Path
	}
	return files, nil
}

func printOutcome(o verify.Outcome) {
	label := o.Case.ID
	if o.Case.IsFX() {
		label += fmt.Sprintf(" (%s @ %s %s)", amount.Format(o.Case.Currency, o.Case.Amount),
			o.Case.Rate.String(), o.Case.Direction)
	}
	switch o.Status() {
	case "pass":
		ui.Success(label)
	case "fail":
		ui.Error(label)
		ui.Info(o.Result.Err().Error())
	default:
		ui.Error(label)
		ui.Info(o.Err.Error())
	}
}
