// Package main is the entry point for the qlctl CLI.
package main

import "github.com/donaldgifford/quicklist/cmd/qlctl/cmd"

func main() {
	cmd.Execute()
}
