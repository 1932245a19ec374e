// Command slide-inventory extracts a JSON inventory of the text-bearing
// shapes of a presentation: absolute geometry, reading order, and
// per-paragraph formatting.
//
// Usage:
//
//	slide-inventory [--issues-only] input.pptx output.json
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	slidelens "github.com/VantageDataChat/SlideLens"
)

func main() {
	issuesOnly := flag.Bool("issues-only", false, "restrict output to shapes with layout issues (overflow/overlap)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--issues-only] input.pptx output.json\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *issuesOnly); err != nil {
		fmt.Fprintf(os.Stderr, "slide-inventory: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, issuesOnly bool) error {
	if err := checkInput(inputPath); err != nil {
		return err
	}

	doc, err := slidelens.OpenDocument(inputPath)
	if err != nil {
		return err
	}

	inv := slidelens.BuildInventory(doc)
	if issuesOnly {
		inv = inv.FilterIssues()
	}
	return inv.WriteJSON(outputPath)
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("input is a directory: %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pptx") {
		return fmt.Errorf("input must be a .pptx file: %s", path)
	}
	cfg := slidelens.LoadConfig()
	if info.Size() > cfg.MaxFileSizeBytes {
		return fmt.Errorf("input file exceeds maximum size (%d bytes)", cfg.MaxFileSizeBytes)
	}
	return nil
}
