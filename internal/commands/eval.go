package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/settle"
	"github.com/payflow-dev/payflow/internal/snapshot"
)

func newEvalCommand() *cobra.Command {
	var accountsPath string
	var format string

	cmd := &cobra.Command{
		Use:   "eval <instruction>",
		Short: "Evaluate one instruction against a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args[0], accountsPath, format)
		},
	}

	cmd.Flags().StringVar(&accountsPath, "accounts", "", "account snapshot file (required)")
	_ = cmd.MarkFlagRequired("accounts")
	cmd.Flags().StringVar(&format, "format", "", "snapshot format (csv, json or yaml; default: from extension)")

	return cmd
}

func runEval(instructionText, accountsPath, format string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(accountsPath), ".")
		if format == "yml" {
			format = "yaml"
		}
	}

	registry := snapshot.DefaultRegistry()
	parser := registry.Get(format)
	if parser == nil {
		return fmt.Errorf("unknown snapshot format %q (supported: %s)", format, strings.Join(registry.Formats(), ", "))
	}

	f, err := os.Open(accountsPath)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	accounts, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	evaluator := settle.New(messages.Default())
	result := evaluator.Evaluate(accounts, instructionText)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))

	if result.Status == model.StatusFailed {
		return fmt.Errorf("settlement failed: %s", result.StatusCode)
	}
	return nil
}
