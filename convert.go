package slidelens

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ConvertToPDF runs the office converter on docPath, writing a PDF with the
// same base name into outDir. The call blocks until the converter exits; a
// nonzero exit status or a missing output file is a hard failure, never
// retried.
func ConvertToPDF(cfg *Config, docPath, outDir string) (string, error) {
	bin := cfg.SofficePath
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("office converter %q not found on PATH: %w", bin, err)
	}

	cmd := exec.Command(bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, docPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("pdf conversion failed: %w, output: %s", err, strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("expected pdf file not found: %s", pdfPath)
	}
	return pdfPath, nil
}

// CountPDFPages returns the number of pages in a PDF file.
func CountPDFPages(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return r.NumPage(), nil
}

// RasterizePDF converts each PDF page to a PNG in outDir using the
// configured rasterizer. Output files are named <stem>-<page>.png by the
// tool; the returned paths are in natural page order.
func RasterizePDF(cfg *Config, pdfPath, outDir, stem string) ([]string, error) {
	bin := cfg.PdftoppmPath
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("rasterizer %q not found on PATH: %w", bin, err)
	}

	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	cmd := exec.Command(bin, "-png", "-r", fmt.Sprint(dpi), pdfPath, filepath.Join(outDir, stem))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("rasterization failed: %w, output: %s", err, strings.TrimSpace(string(out)))
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list raster output: %w", err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, stem+"-") && strings.HasSuffix(name, ".png") {
			files = append(files, filepath.Join(outDir, name))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no raster images produced for %s", pdfPath)
	}

	sortNatural(files)
	return files, nil
}

// sortNatural sorts paths with embedded page numbers in numeric order, so
// that "page-10" follows "page-9" rather than "page-1".
func sortNatural(paths []string) {
	collate.New(language.Und, collate.Numeric).SortStrings(paths)
}
