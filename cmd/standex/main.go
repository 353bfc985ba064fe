// Package main provides the standex CLI.
package main

import (
	"os"

	"github.com/standexlabs/standex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
