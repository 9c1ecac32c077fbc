package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/config"
)

// exampleDataset is written to data/ so a new project has a runnable sheet.
const exampleDataset = `case_id,check,before,after,amount,currency,rate,direction,tolerance,remarks
own-001,debit,"MUR 10,000.00","MUR 9,000.00",MUR 1000.00,MUR,,,,Own account transfer
sal-001,credit,"€ 139,426.55","€ 139,476.55",€ 50.00,EUR,,,,Salary
card-001,debit,"MUR 10,000.00","MUR 5,950.00",USD 100.00,USD,40.5,sell,,Prepaid card recharge
`

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ibcheck project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "suite name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(name)

	// Create directory structure.
	for _, d := range []string{cfg.Paths.DataDir, cfg.Paths.ReceiptsDir, cfg.Paths.LogDir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	examplePath := filepath.Join(dir, cfg.Paths.DataDir, "example.csv")
	if err := os.WriteFile(examplePath, []byte(exampleDataset), 0o644); err != nil {
		return fmt.Errorf("writing example dataset: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cfg.Paths.ReceiptsDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized ibcheck project at %s\n", dir)
	return nil
}
