package main

import (
	"os"

	"github.com/payflow-dev/payflow/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
