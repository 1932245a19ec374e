package slidelens

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// MaxGridColumns is the hard upper bound on grid columns; requests
	// above it are clamped, not rejected.
	MaxGridColumns = 6
	// DefaultGridColumns is used when no column count is requested.
	DefaultGridColumns = 5

	defaultCellWidth     = 320
	gridPadding          = 10
	thumbnailBorderWidth = 2
	labelPadding         = 4
	labelFontSize        = 14.0
)

var (
	gridBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gridBorder     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridLabelColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// GridOptions configures contact sheet composition.
type GridOptions struct {
	// Columns per page. Clamped to MaxGridColumns.
	Columns int
	// CellWidth is the thumbnail cell width in pixels. Cell height is
	// derived from the first image's aspect ratio.
	CellWidth int
	// FontCache for label text. A new cache is created when nil.
	FontCache *FontCache
}

// DefaultGridOptions returns the default composition options.
func DefaultGridOptions() *GridOptions {
	return &GridOptions{
		Columns:   DefaultGridColumns,
		CellWidth: defaultCellWidth,
	}
}

// ClampColumns bounds a requested column count to [1, MaxGridColumns] and
// reports whether it was reduced.
func ClampColumns(requested int) (int, bool) {
	if requested <= 0 {
		return DefaultGridColumns, false
	}
	if requested > MaxGridColumns {
		return MaxGridColumns, true
	}
	return requested, false
}

// GridPage is one composed page of the contact sheet: an ordered run of
// images starting at a global ordinal, plus the derived cell and canvas
// dimensions shared by the whole run.
type GridPage struct {
	// Start is the global index of the page's first image; labels are
	// continuous across pages, not reset per page.
	Start   int
	Images  []image.Image
	Columns int

	CellWidth    int
	CellHeight   int
	LabelHeight  int
	CanvasWidth  int
	CanvasHeight int

	face font.Face
}

// BuildGridPages partitions an ordered image sequence into grid pages.
// Page capacity is columns x (columns+1), chosen so pages are never
// perfectly square and column count alone determines the row count. The
// first image's aspect ratio fixes the uniform cell height for the whole
// run.
func BuildGridPages(images []image.Image, opts *GridOptions) ([]*GridPage, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to compose")
	}
	if opts == nil {
		opts = DefaultGridOptions()
	}

	cols, _ := ClampColumns(opts.Columns)
	cellW := opts.CellWidth
	if cellW <= 0 {
		cellW = defaultCellWidth
	}

	first := images[0].Bounds()
	if first.Dx() <= 0 || first.Dy() <= 0 {
		return nil, fmt.Errorf("first image has empty bounds")
	}
	cellH := cellW * first.Dy() / first.Dx()

	fc := opts.FontCache
	if fc == nil {
		fc = NewFontCache()
	}
	face := fc.LabelFace(labelFontSize)
	labelH := face.Metrics().Height.Ceil() + 2*labelPadding

	capacity := cols * (cols + 1)

	var pages []*GridPage
	for start := 0; start < len(images); start += capacity {
		end := start + capacity
		if end > len(images) {
			end = len(images)
		}
		chunk := images[start:end]
		rows := (len(chunk) + cols - 1) / cols

		pages = append(pages, &GridPage{
			Start:        start,
			Images:       chunk,
			Columns:      cols,
			CellWidth:    cellW,
			CellHeight:   cellH,
			LabelHeight:  labelH,
			CanvasWidth:  cols*cellW + (cols+1)*gridPadding,
			CanvasHeight: rows*(cellH+labelH) + (rows+1)*gridPadding,
			face:         face,
		})
	}
	return pages, nil
}

// Render composes the page into a canvas: per cell, the global ordinal
// label centered above the thumbnail region, the source image scaled to
// fit the cell without upscaling and centered in both axes, and a border
// around the scaled thumbnail.
func (p *GridPage) Render() *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, p.CanvasWidth, p.CanvasHeight))
	fillImage(canvas, gridBackground)

	for idx, src := range p.Images {
		row := idx / p.Columns
		col := idx % p.Columns
		cellX := gridPadding + col*(p.CellWidth+gridPadding)
		cellY := gridPadding + row*(p.CellHeight+p.LabelHeight+gridPadding)

		p.drawLabel(canvas, strconv.Itoa(p.Start+idx), cellX, cellY)
		p.drawThumbnail(canvas, src, cellX, cellY+p.LabelHeight)
	}
	return canvas
}

func (p *GridPage) drawLabel(canvas *image.RGBA, text string, cellX, cellY int) {
	textW := font.MeasureString(p.face, text).Ceil()
	x := cellX + (p.CellWidth-textW)/2
	y := cellY + labelPadding + p.face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  canvas,
		Src:  &image.Uniform{gridLabelColor},
		Face: p.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (p *GridPage) drawThumbnail(canvas *image.RGBA, src image.Image, cellX, cellY int) {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW <= 0 || srcH <= 0 {
		return
	}

	// Fit within the cell preserving aspect ratio; never upscale.
	scale := 1.0
	if sx := float64(p.CellWidth) / float64(srcW); sx < scale {
		scale = sx
	}
	if sy := float64(p.CellHeight) / float64(srcH); sy < scale {
		scale = sy
	}
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	x := cellX + (p.CellWidth-dstW)/2
	y := cellY + (p.CellHeight-dstH)/2
	dstRect := image.Rect(x, y, x+dstW, y+dstH)

	xdraw.ApproxBiLinear.Scale(canvas, dstRect, src, sb, xdraw.Over, nil)
	drawRect(canvas, dstRect, gridBorder, thumbnailBorderWidth)
}

// ComposeGrid builds and renders all pages for the image sequence.
func ComposeGrid(images []image.Image, opts *GridOptions) ([]*image.RGBA, error) {
	pages, err := BuildGridPages(images, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*image.RGBA, len(pages))
	for i, p := range pages {
		out[i] = p.Render()
	}
	return out, nil
}

// WriteGridImages writes the rendered pages as PNG files. A single page is
// written to path verbatim; multiple pages get a 1-based ordinal suffix
// inserted before the file extension, in page order. The written paths are
// returned.
func WriteGridImages(pages []*image.RGBA, path string) ([]string, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no grid pages to write")
	}

	paths := make([]string, len(pages))
	if len(pages) == 1 {
		paths[0] = path
	} else {
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		for i := range pages {
			paths[i] = fmt.Sprintf("%s_%d%s", base, i+1, ext)
		}
	}

	for i, page := range pages {
		if err := writePNG(page, paths[i]); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func writePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
