package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Color      Color
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64
	Lines      []TextLine
}

// LayoutText measures text set in face, one line per newline. A nil face
// uses the bundled 7x13 bitmap face.
func LayoutText(text string, color Color, face font.Face) *TextLayout {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	layout := &TextLayout{
		Text:       text,
		Color:      color,
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
	}
	for _, line := range strings.Split(text, "\n") {
		width := fixedToFloat(font.MeasureString(face, line))
		layout.Lines = append(layout.Lines, TextLine{Text: line, Width: width})
		if width > layout.Size.Width {
			layout.Size.Width = width
		}
	}
	layout.Size.Height = lineHeight * float64(len(layout.Lines))
	return layout
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
