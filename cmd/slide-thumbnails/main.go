// Command slide-thumbnails renders a presentation into paginated thumbnail
// contact sheets. Visible slides are rasterized through the office
// converter; hidden slides appear as crossed-out placeholders at their
// original positions.
//
// Usage:
//
//	slide-thumbnails [-o output.png] [-c columns] input.pptx
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	slidelens "github.com/VantageDataChat/SlideLens"
)

const defaultOutput = "thumbnails.png"

func main() {
	output := flag.String("o", defaultOutput, "output image path (pages get a numeric suffix when more than one)")
	columns := flag.Int("c", slidelens.DefaultGridColumns, "thumbnail columns per page")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-o output.png] [-c columns] input.pptx\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *columns); err != nil {
		fmt.Fprintf(os.Stderr, "slide-thumbnails: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, columns int) error {
	if err := checkInput(inputPath); err != nil {
		return err
	}

	cols, clamped := slidelens.ClampColumns(columns)
	if clamped {
		fmt.Fprintf(os.Stderr, "warning: column count %d exceeds maximum, using %d\n", columns, cols)
	}

	cfg := slidelens.LoadConfig()

	doc, err := slidelens.OpenDocument(inputPath)
	if err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "slidelens-")
	if err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	images, err := slidelens.RenderSlideImages(cfg, doc, workDir)
	if err != nil {
		return err
	}

	opts := slidelens.DefaultGridOptions()
	opts.Columns = cols
	pages, err := slidelens.ComposeGrid(images, opts)
	if err != nil {
		return err
	}

	paths, err := slidelens.WriteGridImages(pages, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d slide thumbnails to %s\n", len(images), strings.Join(paths, ", "))
	return nil
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
	return nil
}
