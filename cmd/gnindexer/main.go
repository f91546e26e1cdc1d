// Package main provides the gnindexer CLI application.
// gnindexer builds the search indexes backing taxonomic name resolution
// from a Darwin Core Archive of biological names.
package main

import (
	"os"
)

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is set by build flags.
	Build = "n/a"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
