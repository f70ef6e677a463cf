// Package main is the entry point for the pinyingen CLI.
package main

import (
	"os"

	"github.com/f3rmion/pinyingen/cmd/pinyingen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
