package slidelens

import (
	"image"
	"image/color"
	"image/draw"
)

// drawRect draws a rectangle outline of the given width, inset into rect.
func drawRect(img *image.RGBA, rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			setPixel(img, x, rect.Min.Y+i, c)
			setPixel(img, x, rect.Max.Y-1-i, c)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			setPixel(img, rect.Min.X+i, y, c)
			setPixel(img, rect.Max.X-1-i, y, c)
		}
	}
}

// drawThickLine draws a line of the given width by stamping a square brush
// along a Bresenham walk.
func drawThickLine(img *image.RGBA, x1, y1, x2, y2, width int, c color.RGBA) {
	if width < 1 {
		width = 1
	}
	half := width / 2

	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				setPixel(img, x1+ox, y1+oy, c)
			}
		}
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.SetRGBA(x, y, c)
	}
}

func fillImage(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
