package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/cardview/cmd/cardshot/internal/config"
	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print the layout computed for a card file",
		Long: `Print the tier, padding, content rectangle and minimum size computed
for the card described in a YAML or TOML file, without drawing it.`,
		Usage: "cardshot inspect <file>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cardshot inspect <file>")
	}
	res, err := config.Resolve(args[0])
	if err != nil {
		return err
	}
	card.Init(res.Platform)
	view := card.New(res.Attributes)
	view.Layout(float64(res.Width), float64(res.Height))
	writeInspect(os.Stdout, res, view)
	return nil
}

func writeInspect(w io.Writer, res *config.Resolved, view *card.View) {
	minSize := view.MinSize()
	measured := view.Measure(float64(res.Width), float64(res.Height))
	fmt.Fprintf(w, "File:          %s\n", res.Path)
	fmt.Fprintf(w, "Platform:      %s\n", res.Platform)
	fmt.Fprintf(w, "Tier:          %s\n", view.Tier())
	fmt.Fprintf(w, "Bounds:        %s\n", formatRect(view.Bounds()))
	fmt.Fprintf(w, "Radius:        %g (requested %g)\n", view.Radius(), res.Attributes.CornerRadius)
	fmt.Fprintf(w, "Elevation:     %g (max %g)\n", view.CardElevation(), view.MaxCardElevation())
	fmt.Fprintf(w, "Corners:       %s\n", view.Corners())
	fmt.Fprintf(w, "Edge shadows:  %s\n", view.EdgeShadows())
	fmt.Fprintf(w, "Shadow pad:    %s\n", formatInsets(view.ShadowPadding()))
	fmt.Fprintf(w, "Padding:       %s\n", formatInsets(view.Padding()))
	fmt.Fprintf(w, "Content:       %s\n", formatRect(view.ContentRect()))
	fmt.Fprintf(w, "Min size:      %gx%g\n", minSize.Width, minSize.Height)
	fmt.Fprintf(w, "Measured:      %gx%g\n", measured.Width, measured.Height)
}

func formatRect(r graphics.Rect) string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}

func formatInsets(e graphics.EdgeInsets) string {
	return fmt.Sprintf("left=%g top=%g right=%g bottom=%g", e.Left, e.Top, e.Right, e.Bottom)
}
