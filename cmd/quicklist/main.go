// Package main is the entry point for the quicklist server.
package main

import (
	"os"

	"github.com/donaldgifford/quicklist/cmd/quicklist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
