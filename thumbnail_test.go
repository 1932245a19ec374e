package slidelens

import (
	"image"
	"image/color"
	"testing"
)

func TestMergeSlideImagesSplicesPlaceholders(t *testing.T) {
	red := solidImage(200, 100, color.RGBA{R: 255, A: 255})
	blue := solidImage(200, 100, color.RGBA{B: 255, A: 255})

	// Slides: visible, hidden, visible.
	out, err := MergeSlideImages([]bool{false, true, false}, []image.Image{red, blue})
	if err != nil {
		t.Fatalf("MergeSlideImages: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 images, got %d", len(out))
	}
	if out[0] != image.Image(red) || out[2] != image.Image(blue) {
		t.Error("visible rasters not placed in slide order")
	}

	ph := out[1]
	b := ph.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("placeholder = %dx%d, want 200x100 matching the rasters", b.Dx(), b.Dy())
	}
	if got := colorAt(ph, 100, 50); got != placeholderStroke {
		t.Errorf("placeholder center = %v, want stroke color %v", got, placeholderStroke)
	}
}

func TestMergeSlideImagesCountMismatch(t *testing.T) {
	red := solidImage(10, 10, color.RGBA{R: 255, A: 255})
	if _, err := MergeSlideImages([]bool{false, false}, []image.Image{red}); err == nil {
		t.Error("expected an error when raster count does not match visible slides")
	}
	if _, err := MergeSlideImages([]bool{true}, []image.Image{red}); err == nil {
		t.Error("expected an error when rasters are supplied for an all-hidden deck")
	}
}

func TestMergeSlideImagesAllHiddenUsesDefaults(t *testing.T) {
	out, err := MergeSlideImages([]bool{true, true}, nil)
	if err != nil {
		t.Fatalf("MergeSlideImages: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 placeholders, got %d", len(out))
	}
	b := out[0].Bounds()
	if b.Dx() != defaultPlaceholderWidth || b.Dy() != defaultPlaceholderHeight {
		t.Errorf("placeholder = %dx%d, want defaults %dx%d",
			b.Dx(), b.Dy(), defaultPlaceholderWidth, defaultPlaceholderHeight)
	}
}

func TestHiddenSlidePlaceholderStroke(t *testing.T) {
	img := NewHiddenSlidePlaceholder(1000, 600)

	// Both diagonals pass through the center.
	if got := img.RGBAAt(500, 300); got != placeholderStroke {
		t.Errorf("center = %v, want %v", got, placeholderStroke)
	}
	if got := img.RGBAAt(0, 0); got != placeholderStroke {
		t.Errorf("corner = %v, want %v", got, placeholderStroke)
	}
	// Off-diagonal area keeps the background.
	if got := img.RGBAAt(500, 20); got != placeholderBackground {
		t.Errorf("off-diagonal = %v, want background %v", got, placeholderBackground)
	}
}

func TestHiddenSlidePlaceholderMinLineWidth(t *testing.T) {
	// 100px min dimension would give a 1px line; the floor keeps it at 5.
	img := NewHiddenSlidePlaceholder(200, 100)
	if got := img.RGBAAt(100, 50); got != placeholderStroke {
		t.Errorf("pixel within minimum stroke width = %v, want %v", got, placeholderStroke)
	}
}

func colorAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
