// Package main is the entry point for the brandcost CLI.
package main

import (
	"os"

	"github.com/davidbz/brandcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
