package slidelens

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Default placeholder dimensions, used when a document has no visible
// slides to take dimensions from.
const (
	defaultPlaceholderWidth  = 1920
	defaultPlaceholderHeight = 1080
)

// minPlaceholderLineWidth is the minimum stroke width of the placeholder X.
const minPlaceholderLineWidth = 5

var (
	placeholderBackground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	placeholderStroke     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// RenderSlideImages produces one image per slide, in document order:
// rasterized images for visible slides and synthesized placeholders for
// hidden ones. The office converter only emits visible slides into the
// PDF, so the rasterizer runs exactly on the visible subset; the PDF page
// count is verified against the visible-slide count before rasterizing.
// workDir holds the intermediate PDF and raster files; the caller owns its
// lifetime.
func RenderSlideImages(cfg *Config, doc *Document, workDir string) ([]image.Image, error) {
	visible := doc.VisibleSlideCount()

	var rasters []image.Image
	if visible > 0 {
		pdfPath, err := ConvertToPDF(cfg, doc.Path, workDir)
		if err != nil {
			return nil, err
		}
		pages, err := CountPDFPages(pdfPath)
		if err != nil {
			return nil, err
		}
		if pages != visible {
			return nil, fmt.Errorf("pdf has %d pages but document has %d visible slides", pages, visible)
		}
		files, err := RasterizePDF(cfg, pdfPath, workDir, "slide")
		if err != nil {
			return nil, err
		}
		if len(files) != visible {
			return nil, fmt.Errorf("rasterizer produced %d images for %d visible slides", len(files), visible)
		}
		rasters = make([]image.Image, len(files))
		for i, f := range files {
			img, err := loadPNG(f)
			if err != nil {
				return nil, err
			}
			rasters[i] = img
		}
	}

	hidden := make([]bool, len(doc.Slides))
	for i, s := range doc.Slides {
		hidden[i] = s.Hidden
	}
	return MergeSlideImages(hidden, rasters)
}

// MergeSlideImages splices placeholders for hidden slides into the ordered
// sequence of rasterized visible-slide images. The output has exactly one
// entry per slide, in original slide order: every hidden position holds a
// placeholder and every visible position holds the next unused raster.
func MergeSlideImages(hidden []bool, rasters []image.Image) ([]image.Image, error) {
	visible := 0
	for _, h := range hidden {
		if !h {
			visible++
		}
	}
	if visible != len(rasters) {
		return nil, fmt.Errorf("have %d raster images for %d visible slides", len(rasters), visible)
	}

	phW, phH := defaultPlaceholderWidth, defaultPlaceholderHeight
	if len(rasters) > 0 {
		b := rasters[0].Bounds()
		phW, phH = b.Dx(), b.Dy()
	}

	out := make([]image.Image, 0, len(hidden))
	next := 0
	for _, h := range hidden {
		if h {
			out = append(out, NewHiddenSlidePlaceholder(phW, phH))
			continue
		}
		out = append(out, rasters[next])
		next++
	}
	return out, nil
}

// NewHiddenSlidePlaceholder synthesizes the stand-in image for a hidden
// slide: a neutral background crossed corner-to-corner by an X, with a
// stroke width proportional to the image size.
func NewHiddenSlidePlaceholder(w, h int) *image.RGBA {
	if w <= 0 {
		w = defaultPlaceholderWidth
	}
	if h <= 0 {
		h = defaultPlaceholderHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillImage(img, placeholderBackground)

	lw := min(w, h) / 100
	if lw < minPlaceholderLineWidth {
		lw = minPlaceholderLineWidth
	}
	drawThickLine(img, 0, 0, w-1, h-1, lw, placeholderStroke)
	drawThickLine(img, 0, h-1, w-1, 0, lw, placeholderStroke)
	return img
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raster image: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raster image %s: %w", path, err)
	}
	return img, nil
}
