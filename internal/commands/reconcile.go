package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/config"
	"github.com/ibcheck/ibcheck/internal/reconcile"
	"github.com/ibcheck/ibcheck/internal/ui"
)

type reconcileFlags struct {
	before, after, amount string
	tolerance             string
	rate, direction       string
}

func newReconcileCommand(repoDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check that a balance moved by the expected amount",
	}

	cmd.AddCommand(newReconcileCheckCommand(repoDir, "debit", "Check that the balance decreased by the amount"))
	cmd.AddCommand(newReconcileCheckCommand(repoDir, "credit", "Check that the balance increased by the amount"))

	return cmd
}

func newReconcileCheckCommand(repoDir *string, check, short string) *cobra.Command {
	var f reconcileFlags

	cmd := &cobra.Command{
		Use:   check,
		Short: short,
		Example: fmt.Sprintf(`  ibcheck reconcile %s --before "MUR 10,000.00" --after "MUR 9,000.00" --amount "MUR 1,000.00"
  ibcheck reconcile %s --before "MUR 10,000.00" --after "MUR 5,950.00" --amount "USD 100" --rate 40.5 --direction sell`, check, check),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*repoDir)
			if err != nil {
				return err
			}
			res, err := runReconcile(p, check, f)
			if err != nil {
				return err
			}

			ui.Info(fmt.Sprintf("expected %s", res.Expected.StringFixed(2)))
			ui.Info(fmt.Sprintf("actual   %s", res.Actual.StringFixed(2)))
			if err := res.Err(); err != nil {
				ui.Error(err.Error())
				return errChecksFailed
			}
			ui.Success(check + " verified")
			return nil
		},
	}

	cmd.Flags().StringVar(&f.before, "before", "", "balance before the transaction (required)")
	cmd.Flags().StringVar(&f.after, "after", "", "balance after the transaction (required)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&f.tolerance, "tolerance", "", "allowed difference (default from "+config.FileName+")")
	cmd.Flags().StringVar(&f.rate, "rate", "", "exchange rate for a foreign amount")
	cmd.Flags().StringVar(&f.direction, "direction", "", "buy or sell, with --rate")
	_ = cmd.MarkFlagRequired("before")
	_ = cmd.MarkFlagRequired("after")
	_ = cmd.MarkFlagRequired("amount")
	cmd.MarkFlagsRequiredTogether("rate", "direction")

	return cmd
}

func runReconcile(p *project, check string, f reconcileFlags) (reconcile.Result, error) {
	values := make([]decimal.Decimal, 3)
	for i, raw := range []string{f.before, f.after, f.amount} {
		v, err := amount.Parse(raw)
		if err != nil {
			return reconcile.Result{}, err
		}
		values[i] = v
	}
	before, after, expected := values[0], values[1], values[2]

	tol, err := p.cfg.Tolerance()
	if err != nil {
		return reconcile.Result{}, err
	}
	if f.tolerance != "" {
		tol, err = decimal.NewFromString(f.tolerance)
		if err != nil {
			return reconcile.Result{}, fmt.Errorf("parsing tolerance %q: %w", f.tolerance, err)
		}
		if tol.IsNegative() {
			return reconcile.Result{}, fmt.Errorf("tolerance %s must not be negative", f.tolerance)
		}
	}

	if f.direction == "" {
		if check == "debit" {
			return reconcile.Debit(before, after, expected, tol), nil
		}
		return reconcile.Credit(before, after, expected, tol), nil
	}

	rate, dir, err := parseFX(f.rate, f.direction)
	if err != nil {
		return reconcile.Result{}, err
	}
	if check == "debit" {
		return reconcile.DebitFX(before, after, expected, rate, dir, tol)
	}
	return reconcile.CreditFX(before, after, expected, rate, dir, tol)
}
