package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ibcheck/ibcheck/internal/amount"
	"github.com/ibcheck/ibcheck/internal/buildinfo"
	"github.com/ibcheck/ibcheck/internal/config"
)

// errChecksFailed makes the process exit non-zero after results were printed.
var errChecksFailed = errors.New("verification failed")

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var repoDir string

	rootCmd := &cobra.Command{
		Use:     "ibcheck",
		Short:   "Verify Internet Banking transactions, balances and receipts",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", ".", "project directory containing "+config.FileName)

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand(&repoDir))
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newReconcileCommand(&repoDir))
	rootCmd.AddCommand(newReceiptCommand(&repoDir))
	rootCmd.AddCommand(newHistoryCommand(&repoDir))
	rootCmd.AddCommand(newRunCommand(&repoDir))

	return rootCmd
}

// project is a loaded configuration rooted at a directory.
type project struct {
	root string
	cfg  *config.Config
}

// loadProject reads <repoDir>/ibcheck.yaml. A missing file yields defaults.
func loadProject(repoDir string) (*project, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = config.Default(filepath.Base(root))
	case err != nil:
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.FileName, err)
	}
	return &project{root: root, cfg: cfg}, nil
}

func (p *project) currencies() *amount.CurrencyTable {
	return amount.NewCurrencyTable(p.cfg.Currency.Aliases)
}

// path resolves a configured directory against the project root.
func (p *project) path(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.root, dir)
}
