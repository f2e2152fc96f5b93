package frame

import (
	"image"
	"image/color"

	"github.com/npillmayer/docview/dom/style/cascade"
	"golang.org/x/image/draw"
)

// ResolveBoundingBox positions a box and its descendants. (x, y) is the
// absolute content origin of the parent box; for inline boxes it is the
// content origin of their containing block. The root box resolves
// against (0, 0).
func (b *Box) ResolveBoundingBox(x, y float64) {
	dx, dy := b.relativeOffset()
	if b.isInline() {
		b.origin = point{x + dx, y + dy}
		var r Rect
		for _, f := range b.frags {
			r = r.Union(f)
		}
		b.bbox = r.Translate(b.origin.X, b.origin.Y)
		for _, ch := range b.boxes() {
			ch.ResolveBoundingBox(b.origin.X, b.origin.Y)
		}
		return
	}
	bx := x + b.pos.X + dx + b.margins[left]
	by := y + b.pos.Y + dy + b.margins[top]
	b.bbox = Rect{
		X: bx,
		Y: by,
		W: b.borders[left] + b.paddings[left] + b.width + b.paddings[right] + b.borders[right],
		H: b.borders[top] + b.paddings[top] + b.height + b.paddings[bottom] + b.borders[bottom],
	}
	b.origin = point{bx + b.borders[left] + b.paddings[left], by + b.borders[top] + b.paddings[top]}
	for _, ch := range b.boxes() {
		ch.ResolveBoundingBox(b.origin.X, b.origin.Y)
	}
}

// relativeOffset returns the shift of a relatively positioned box.
func (b *Box) relativeOffset() (dx, dy float64) {
	pos := cascade.Position(b.style.ComputedProperty("position", b))
	if !pos.IsRelative() {
		return 0, 0
	}
	dx, _ = b.usedLength("left", b.cbW)
	dy, _ = b.usedLength("top", b.cbH)
	return dx, dy
}

// FramesForPoint returns all frames containing a point, outermost first.
// Inline boxes contain a point if one of their line fragments does.
func (b *Box) FramesForPoint(x, y float64) []Frame {
	var frames []Frame
	if b.containsPoint(x, y) {
		frames = append(frames, b)
	}
	for _, ch := range b.boxes() {
		frames = append(frames, ch.FramesForPoint(x, y)...)
	}
	return frames
}

func (b *Box) containsPoint(x, y float64) bool {
	if !b.isInline() {
		return b.bbox.Contains(x, y)
	}
	for _, f := range b.frags {
		if f.Translate(b.origin.X, b.origin.Y).Contains(x, y) {
			return true
		}
	}
	return false
}

// DrawCull draws the backgrounds and borders of all boxes overlapping the
// clip rectangle of a canvas. Text is drawn as a bar along the baseline of
// every line fragment.
func (b *Box) DrawCull(c *Canvas) {
	r := c.toDevice(b.bbox)
	if b.kind == blockBox && !r.Overlaps(c.Clip) && !b.overflows() {
		return
	}
	if b.style.ComputedProperty("visibility", b).IsIdent("visible") {
		b.draw(c, r)
	}
	for _, ch := range b.boxes() {
		ch.DrawCull(c)
	}
}

// overflows is true if descendants may be positioned outside of the box.
func (b *Box) overflows() bool {
	return b.bbox.IsEmpty() || b.height == 0
}

func (b *Box) draw(c *Canvas, r image.Rectangle) {
	if b.kind == textBox {
		fg, _ := b.style.ComputedProperty("color", b).ToRGBA()
		font := b.font()
		for _, f := range b.frags {
			f = f.Translate(b.origin.X, b.origin.Y)
			base := f.Y + (f.H+font.Ascent()-font.Descent())/2
			bar := Rect{X: f.X, Y: base - font.Size()/10, W: f.W, H: font.Size() / 10}
			fill(c, c.toDevice(bar), fg)
		}
		return
	}
	if b.kind != blockBox {
		return
	}
	if bg, ok := b.style.ComputedProperty("background-color", b).ToRGBA(); ok && bg.A > 0 {
		fill(c, r, bg)
	}
	bb := b.bbox
	edges := [4]Rect{
		{X: bb.X, Y: bb.Y, W: bb.W, H: b.borders[top]},
		{X: bb.X + bb.W - b.borders[right], Y: bb.Y, W: b.borders[right], H: bb.H},
		{X: bb.X, Y: bb.Y + bb.H - b.borders[bottom], W: bb.W, H: b.borders[bottom]},
		{X: bb.X, Y: bb.Y, W: b.borders[left], H: bb.H},
	}
	for i, side := range sides {
		if edges[i].IsEmpty() {
			continue
		}
		col, ok := b.style.ComputedProperty("border-"+side+"-color", b).ToRGBA()
		if ok && col.A > 0 {
			fill(c, c.toDevice(edges[i]), col)
		}
	}
}

func fill(c *Canvas, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.Clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.Image, r, image.NewUniform(col), image.Point{}, draw.Over)
}
