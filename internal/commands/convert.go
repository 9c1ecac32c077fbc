package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/reconcile"
)

func newConvertCommand() *cobra.Command {
	var rate, direction string

	cmd := &cobra.Command{
		Use:     "convert <amount>",
		Short:   "Convert a foreign amount at a buy or sell rate",
		Example: `  ibcheck convert "USD 100" --rate 40.5 --direction sell`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := amount.Parse(args[0])
			if err != nil {
				return err
			}
			r, dir, err := parseFX(rate, direction)
			if err != nil {
				return err
			}
			got, err := reconcile.Convert(value, r, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), got.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&rate, "rate", "", "exchange rate (required)")
	cmd.Flags().StringVar(&direction, "direction", "", "buy or sell (required)")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("direction")

	return cmd
}

// parseFX validates a rate/direction pair from flags.
func parseFX(rate, direction string) (decimal.Decimal, reconcile.Direction, error) {
	dir, err := reconcile.ParseDirection(direction)
	if err != nil {
		return decimal.Zero, 0, err
	}
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("parsing rate %q: %w", rate, err)
	}
	return r, dir, nil
}
