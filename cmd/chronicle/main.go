// Package main provides the chronicle command-line tool for checking the historical catalog.
package main

import (
	"errors"
	"fmt"
	"os"

	"chronicle/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	// findings are already printed by the command
	if errors.Is(err, cli.ErrValidationFailed) || errors.Is(err, cli.ErrDuplicateCandidates) {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(2)
}
