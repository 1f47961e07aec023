// Command itp solves bracketed scalar equations from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/rootfind/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
