// Package main provides the dupcheck CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/dupcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
