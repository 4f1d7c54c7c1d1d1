// Package main generates reference documentation for the quicklist and qlctl
// command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	qlctl "github.com/donaldgifford/quicklist/cmd/qlctl/cmd"
	server "github.com/donaldgifford/quicklist/cmd/quicklist/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"quicklist": server.Root(),
		"qlctl":     qlctl.Root(),
	}

	for name, root := range trees {
		dir := filepath.Join(*output, name)
		if err := generate(root, dir, *format); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		fmt.Printf("%s docs generated in %s/\n", name, dir)
	}
}

func generate(root *cobra.Command, dir, format string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true

	switch format {
	case "markdown":
		return doc.GenMarkdownTree(root, dir)
	case "man":
		return doc.GenManTree(root, &doc.GenManHeader{Title: root.Name(), Section: "1"}, dir)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
