package testing

import (
	"image"

	"github.com/go-drift/cardview/pkg/graphics"
)

// Rasterize draws p onto a transparent RasterCanvas and returns the image.
func Rasterize(width, height int, p Painter) *image.RGBA {
	canvas := graphics.NewRasterCanvas(width, height)
	p.Draw(canvas)
	return canvas.Image()
}

// AlphaAt returns the alpha channel at (x, y), or 0 outside the image.
func AlphaAt(img *image.RGBA, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return img.RGBAAt(x, y).A
}

// DiffPixels counts the pixels where any channel of a and b differs by
// more than tolerance, and returns the smallest rectangle holding them.
// Images of different bounds compare over their intersection.
func DiffPixels(a, b *image.RGBA, tolerance uint8) (int, image.Rectangle) {
	r := a.Bounds().Intersect(b.Bounds())
	count := 0
	var region image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ca, cb := a.RGBAAt(x, y), b.RGBAAt(x, y)
			if absDiff(ca.R, cb.R) > tolerance || absDiff(ca.G, cb.G) > tolerance ||
				absDiff(ca.B, cb.B) > tolerance || absDiff(ca.A, cb.A) > tolerance {
				count++
				region = region.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return count, region
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
