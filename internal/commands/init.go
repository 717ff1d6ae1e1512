package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/config"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default payflow.yaml and a sample account snapshot",
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

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, "payflow.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	sample := []model.Account{
		{ID: "A1", Balance: 500, Currency: "USD"},
		{ID: "A2", Balance: 10, Currency: "USD"},
	}
	f, err := os.Create(filepath.Join(dir, "accounts.csv"))
	if err != nil {
		return fmt.Errorf("creating sample snapshot: %w", err)
	}
	defer f.Close()
	if err := snapshot.WriteCSV(f, sample); err != nil {
		return fmt.Errorf("writing sample snapshot: %w", err)
	}

	fmt.Printf("Initialized payflow project at %s\n", dir)
	return nil
}
