package cmd

import (
	"fmt"
	"image"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/cardview/cmd/cardshot/internal/config"
	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

// labelColor is 87% black, the usual primary text colour on a light card.
var labelColor = graphics.ColorBlack.WithAlpha8(0xDE)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a card file to PNG",
		Long: `Render the card described in a YAML or TOML file to a PNG image.

The file's platform section picks the drawing tier: hosts with native
elevation shadows get a blurred shadow, older hosts get the gradient
shadow drawn by cardview itself.

Flags:
  -o, --output FILE  Output path (default: the input path with .png)`,
		Usage: "cardshot render <file> [-o out.png]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	file, out, err := parseFileArgs("render", args)
	if err != nil {
		return err
	}
	res, err := config.Resolve(file)
	if err != nil {
		return err
	}
	return renderTo(res, out)
}

// parseFileArgs extracts the input file and the -o/--output path.
func parseFileArgs(name string, args []string) (file, out string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("%s requires a file path", arg)
			}
			out = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			out = strings.TrimPrefix(arg, "--output=")
		case strings.HasPrefix(arg, "-"):
			return "", "", fmt.Errorf("unknown flag %q", arg)
		case file == "":
			file = arg
		default:
			return "", "", fmt.Errorf("%s takes one file, got %q and %q", name, file, arg)
		}
	}
	if file == "" {
		return "", "", fmt.Errorf("usage: cardshot %s <file> [-o out.png]", name)
	}
	if out == "" {
		out = strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
	}
	return file, out, nil
}

// renderTo draws res and writes the image to out.
func renderTo(res *config.Resolved, out string) error {
	img, view := renderCard(res)
	if err := imaging.Save(img, out); err != nil {
		return errors.Wrap("cardshot.render", errors.KindRender, out, err)
	}
	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d, %s)\n", out, b.Dx(), b.Dy(), view.Tier())
	return nil
}

// renderCard draws the card, and its label when set, onto a canvas of
// the configured size and scales the result by the configured density.
func renderCard(res *config.Resolved) (*image.RGBA, *card.View) {
	tier := card.Init(res.Platform)
	if want := card.TierFor(res.Platform); want != tier {
		log.Printf("cardshot: %s wants the %s tier, drawing with %s selected at startup", res.Platform, want, tier)
	}

	canvas := graphics.NewRasterCanvas(res.Width, res.Height)
	canvas.Clear(res.Background)

	view := card.New(res.Attributes)
	view.Layout(float64(res.Width), float64(res.Height))
	view.Draw(canvas)

	if res.Label != "" {
		content := view.ContentRect()
		canvas.Save()
		canvas.ClipRect(content)
		canvas.DrawText(graphics.LayoutText(res.Label, labelColor, nil), graphics.Offset{X: content.Left, Y: content.Top})
		canvas.Restore()
	}
	return scaleImage(canvas.Image(), res.Scale), view
}

func scaleImage(src *image.RGBA, scale float64) *image.RGBA {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
