package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/cardview/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String formats the op as name(key=value, ...) with sorted keys.
func (op DisplayOp) String() string {
	var sb strings.Builder
	sb.WriteString(op.Op)
	sb.WriteByte('(')
	for i, k := range sortedKeys(op.Params) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, op.Params[k])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Painter is anything that draws itself onto a canvas.
type Painter interface {
	Draw(canvas graphics.Canvas)
}

// Record draws p onto a serializing canvas of the given size and returns
// the operations it issued.
func Record(size graphics.Size, p Painter) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	p.Draw(canvas)
	return canvas.ops
}

// RecordDisplayList replays a DisplayList through the serializing canvas.
func RecordDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// OpNames returns the Op field of each operation in order.
func OpNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

// Filter returns the operations named name.
func Filter(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := sortedMap("rect", serializeRect(rect))
	serializePaint(params, paint)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := sortedMap(
		"rect", serializeRect(rrect.Rect),
		"radius", serializeRadius(rrect),
	)
	serializePaint(params, paint)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := sortedMap()
	if path != nil {
		params["bounds"] = serializeRect(path.Bounds())
		params["commands"] = len(path.Commands)
	}
	serializePaint(params, paint)
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRectShadow",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(shadow.Color),
			"blur", round2(shadow.BlurRadius),
			"dy", round2(shadow.Offset.Y),
		),
	})
}

func (c *serializingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	params := sortedMap("x", round2(position.X), "y", round2(position.Y))
	if layout != nil {
		params["text"] = layout.Text
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawText", Params: params})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// --- Serialization helpers ---

func serializePaint(params map[string]any, paint graphics.Paint) {
	if g := paint.Gradient; g != nil {
		params["gradient"] = g.Type.String()
		params["stops"] = len(g.Stops())
		return
	}
	params["color"] = serializeColor(paint.Color)
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Go maps iterate in random order; JSON marshaling sorts the keys.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
