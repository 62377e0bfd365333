package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/cardview/pkg/errors"
)

// RasterCanvas is a pure-Go Canvas that fills paths into an *image.RGBA
// with anti-aliasing. It supports translation and rectangular clips, which
// is everything the card drawables use.
type RasterCanvas struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	clip   image.Rectangle
}

// NewRasterCanvas creates a canvas backed by a new transparent image.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewRasterCanvasFor creates a canvas drawing into img.
func NewRasterCanvasFor(img *image.RGBA) *RasterCanvas {
	return &RasterCanvas{
		img:   img,
		ras:   &vector.Rasterizer{},
		state: rasterState{clip: img.Bounds()},
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.deviceRect(rect))
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.state.clip, image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	if rect.IsEmpty() {
		return
	}
	path := NewPath()
	path.AddRect(rect)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	if rrect.Rect.IsEmpty() {
		return
	}
	path := NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	defer errors.Recover("graphics.RasterCanvas.DrawPath")
	if path == nil || path.IsEmpty() || !paint.IsVisible() {
		return
	}
	r := c.state.clip.Intersect(c.deviceRect(path.Bounds()))
	if r.Empty() {
		return
	}
	c.rasterize(path, r, 0, 0)

	alpha := paint.EffectiveAlpha()
	if paint.Gradient != nil {
		src := &gradientImage{gradient: paint.Gradient.Translate(c.state.dx, c.state.dy), alpha: alpha}
		c.ras.Draw(c.img, r, src, r.Min)
		return
	}
	col := paint.Color.WithAlpha8(uint8(math.Round(float64(paint.Color.Alpha8()) * alpha)))
	c.ras.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{})
}

func (c *RasterCanvas) DrawRRectShadow(rrect RRect, shadow BoxShadow) {
	defer errors.Recover("graphics.RasterCanvas.DrawRRectShadow")
	if shadow.Color.Alpha8() == 0 || rrect.Rect.IsEmpty() {
		return
	}
	shape := shadowShape(rrect, shadow)
	margin := int(math.Ceil(3*shadow.Sigma())) + 1
	mb := c.deviceRect(shape.Rect).Inset(-margin)
	r := c.state.clip.Intersect(mb)
	if r.Empty() {
		return
	}

	path := NewPath()
	path.AddRRect(shape)
	mask := image.NewNRGBA(image.Rect(0, 0, mb.Dx(), mb.Dy()))
	c.rasterize(path, mask.Bounds(), mb.Min.X, mb.Min.Y)
	c.ras.Draw(mask, mask.Bounds(), image.NewUniform(color.NRGBA{A: 0xFF}), image.Point{})

	blurred := mask
	if sigma := shadow.Sigma(); sigma > 0 {
		blurred = imaging.Blur(mask, sigma)
	}
	if shadow.BlurStyle == BlurStyleOuter {
		punchOut(blurred, mask)
	}
	draw.DrawMask(c.img, r, image.NewUniform(shadow.Color.NRGBA()), image.Point{}, blurred, r.Min.Sub(mb.Min), draw.Over)
}

func (c *RasterCanvas) DrawText(layout *TextLayout, position Offset) {
	defer errors.Recover("graphics.RasterCanvas.DrawText")
	if layout == nil || layout.Face == nil || layout.Color.Alpha8() == 0 {
		return
	}
	dst, ok := c.img.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(layout.Color.NRGBA()),
		Face: layout.Face,
	}
	x := position.X + c.state.dx
	baseline := position.Y + c.state.dy + layout.Ascent
	for _, line := range layout.Lines {
		if strings.TrimSpace(line.Text) != "" {
			drawer.Dot = fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)}
			drawer.DrawString(line.Text)
		}
		baseline += layout.LineHeight
	}
}

func (c *RasterCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// rasterize loads path into the rasterizer, sized to r, with the current
// translation applied and r.Min (plus the extra origin) as the mask origin.
func (c *RasterCanvas) rasterize(path *Path, r image.Rectangle, originX, originY int) {
	c.ras.Reset(r.Dx(), r.Dy())
	c.ras.DrawOp = draw.Over
	ox := float32(c.state.dx) - float32(r.Min.X) - float32(originX)
	oy := float32(c.state.dy) - float32(r.Min.Y) - float32(originY)
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			c.ras.MoveTo(float32(a[0])+ox, float32(a[1])+oy)
		case PathOpLineTo:
			c.ras.LineTo(float32(a[0])+ox, float32(a[1])+oy)
		case PathOpQuadTo:
			c.ras.QuadTo(float32(a[0])+ox, float32(a[1])+oy, float32(a[2])+ox, float32(a[3])+oy)
		case PathOpCubicTo:
			c.ras.CubeTo(
				float32(a[0])+ox, float32(a[1])+oy,
				float32(a[2])+ox, float32(a[3])+oy,
				float32(a[4])+ox, float32(a[5])+oy,
			)
		case PathOpClose:
			c.ras.ClosePath()
		}
	}
	c.ras.ClosePath()
}

// deviceRect maps a local rect to the pixels it fully or partly covers.
func (c *RasterCanvas) deviceRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left+c.state.dx)),
		int(math.Floor(r.Top+c.state.dy)),
		int(math.Ceil(r.Right+c.state.dx)),
		int(math.Ceil(r.Bottom+c.state.dy)),
	)
}

// shadowShape moves and grows rrect according to the shadow's offset and spread.
func shadowShape(rrect RRect, shadow BoxShadow) RRect {
	grow := func(r Radius) Radius {
		if r.IsZero() {
			return r
		}
		return Radius{X: math.Max(0, r.X+shadow.Spread), Y: math.Max(0, r.Y+shadow.Spread)}
	}
	rect := rrect.Rect.Translate(shadow.Offset.X, shadow.Offset.Y).Inflate(shadow.Spread)
	return RRect{
		Rect:        rect,
		TopLeft:     grow(rrect.TopLeft),
		TopRight:    grow(rrect.TopRight),
		BottomRight: grow(rrect.BottomRight),
		BottomLeft:  grow(rrect.BottomLeft),
	}
}

// punchOut removes the unblurred shape from the blurred mask.
func punchOut(blurred, shape *image.NRGBA) {
	for i := 3; i < len(blurred.Pix) && i < len(shape.Pix); i += 4 {
		blurred.Pix[i] = uint8(uint32(blurred.Pix[i]) * uint32(255-shape.Pix[i]) / 255)
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// gradientImage exposes a Gradient as an image source in device space.
type gradientImage struct {
	gradient *Gradient
	alpha    float64
}

func (g *gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradientImage) At(x, y int) color.Color {
	col := g.gradient.ColorAt(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	n := col.NRGBA()
	n.A = uint8(math.Round(float64(n.A) * g.alpha))
	return n
}
