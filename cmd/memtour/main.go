// Package main is the entry point for the memtour CLI.
package main

import (
	"os"

	"github.com/groundwork-labs/memtour/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
