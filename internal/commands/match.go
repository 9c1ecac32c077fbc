package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/match"
	"github.com/ibcheck/ibcheck/internal/ui"
)

func newMatchCommand() *cobra.Command {
	var text string
	var terms []string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Check that rendered text contains every expected term",
		Example: `  ibcheck match --text "01/02/2024 - € 50.00 Salary" --term 01/02/2024 --term "- € 50.00"
  pbpaste | ibcheck match --text - --term salary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if text == "-" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}

			missing := match.Missing(text, terms)
			if len(missing) == 0 {
				ui.Success(fmt.Sprintf("all %d terms found", len(terms)))
				return nil
			}
			for _, m := range missing {
				ui.Error(fmt.Sprintf("missing %q", m))
			}
			return errChecksFailed
		},
	}

	cmd.Flags().StringVar(&text, "text", "", `rendered text, or "-" to read stdin (required)`)
	_ = cmd.MarkFlagRequired("text")
	cmd.Flags().StringArrayVar(&terms, "term", nil, "expected term (repeatable)")

	return cmd
}
