package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <amount>...",
		Short:   "Parse displayed amounts into currency code and value",
		Example: `  ibcheck parse "MUR 1,098.20" "- € 245,911.10"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*repoDir)
			if err != nil {
				return err
			}
			table := p.currencies()

			out := cmd.OutOrStdout()
			for _, raw := range args {
				m, err := table.ParseMoney(raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", m.Currency, m.Value.StringFixed(2))
			}
			return nil
		},
	}
}
