// Package main is the entry point for the cdn-cost CLI.
package main

import (
	"os"

	"cdn-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
