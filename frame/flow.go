package frame

import (
	"strings"
	"unicode"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/docview/dom/style"
	"github.com/npillmayer/docview/dom/style/cascade"
)

var (
	sides        = [4]string{"top", "right", "bottom", "left"}
	marginNames  = [4]string{"margin-top", "margin-right", "margin-bottom", "margin-left"}
	paddingNames = [4]string{"padding-top", "padding-right", "padding-bottom", "padding-left"}
	borderNames  = [4]string{"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"}
)

// Flow lays out a box and all of its descendants. Block boxes are stacked
// vertically within the content box of their parent, runs of inline boxes
// are broken into lines. Inline boxes delegate to their containing block.
func (b *Box) Flow() {
	if b.isInline() {
		if c := b.container(); c != nil {
			c.Flow()
		}
		return
	}
	b.flowBlock()
	tracer().Debugf("flow %v: %.2f x %.2f", b, b.width, b.height)
}

func (b *Box) flowBlock() {
	cbW := b.cbW
	for i := range sides {
		b.margins[i] = b.lengthOr(marginNames[i], cbW, 0)
		b.paddings[i] = b.lengthOr(paddingNames[i], cbW, 0)
		b.borders[i] = b.lengthOr(borderNames[i], cbW, 0)
	}
	edges := b.borders[left] + b.paddings[left] + b.paddings[right] + b.borders[right]
	if w, ok := b.usedLength("width", cbW); ok {
		b.width = w
		if b.isAuto("margin-left") && b.isAuto("margin-right") {
			m := max(0, (cbW-w-edges)/2)
			b.margins[left], b.margins[right] = m, m
		}
	} else {
		b.width = max(0, cbW-b.margins[left]-b.margins[right]-edges)
	}
	h, fixedHeight := -1.0, false
	if b.cbH >= 0 || !b.isPercentage("height") {
		h, fixedHeight = b.usedLength("height", b.cbH)
	}
	y := 0.0
	children := b.boxes()
	for i := 0; i < len(children); {
		if children[i].isInline() {
			j := i
			for j < len(children) && children[j].isInline() {
				j++
			}
			y += b.layoutLines(children[i:j], y)
			i = j
			continue
		}
		ch := children[i]
		ch.cbW = b.width
		ch.cbH = -1
		if fixedHeight {
			ch.cbH = h
		}
		ch.flowBlock()
		ch.pos = point{0, y}
		y += ch.LayoutMetrics().Height
		i++
	}
	if fixedHeight {
		b.height = h
	} else {
		b.height = y
	}
	b.dirty = false
}

// --- Lengths ---------------------------------------------------------------

// usedLength returns a length in points. Percentages are resolved against
// ref. ok is false for "auto" and for values we cannot resolve.
func (b *Box) usedLength(name string, ref float64) (float64, bool) {
	v := b.style.ComputedProperty(name, b)
	var pt, p float64
	switch m := v.Match(); m {
	case m.Length(cascade.FontSize(b), &pt):
		return pt, true
	case m.Percentage(&p):
		if ref < 0 {
			return 0, false
		}
		return p * ref, true
	}
	return 0, false
}

func (b *Box) lengthOr(name string, ref float64, dflt float64) float64 {
	if x, ok := b.usedLength(name, ref); ok {
		return x
	}
	return dflt
}

// fixedLength returns an absolute length, excluding percentages.
func (b *Box) fixedLength(name string) (float64, bool) {
	v := b.style.ComputedProperty(name, b)
	if v.Kind() == css.PercentageKind {
		return 0, false
	}
	return b.usedLength(name, -1)
}

func (b *Box) isAuto(name string) bool {
	return b.style.ComputedProperty(name, b).IsAuto()
}

func (b *Box) isPercentage(name string) bool {
	return b.style.ComputedProperty(name, b).Kind() == css.PercentageKind
}

// --- Line breaking ---------------------------------------------------------

// word is a piece of text which will not be broken.
type word struct {
	box         *Box // text box
	text        string
	width       float64
	space       float64 // width of a preceding space
	spaceBefore bool
	lineHeight  float64
	breakBefore bool // forced line break
}

// layoutLines breaks a run of inline boxes into lines, starting at offset y
// of the content box. It returns the height of all lines.
// Fragments of inline boxes are set relative to the content origin of b.
func (b *Box) layoutLines(run []*Box, y float64) float64 {
	var words []word
	trailingSpace := false
	for _, ib := range run {
		words, trailingSpace = collectWords(ib, words, trailingSpace)
	}
	avail := b.width
	align := b.style.ComputedProperty("text-align", b)
	var line []word
	lineNo, lineW, lineH, height := 0, 0.0, 0.0, 0.0
	flush := func() {
		if len(line) == 0 {
			return
		}
		shift := 0.0
		switch {
		case align.IsIdent("center"):
			shift = max(0, (avail-lineW)/2)
		case align.IsIdent("right"):
			shift = max(0, avail-lineW)
		}
		x := shift
		for i, w := range line {
			if i > 0 && w.spaceBefore {
				x += w.space
			}
			r := Rect{X: x, Y: y + height, W: w.width, H: lineH}
			w.box.addFragment(r, lineNo)
			for p := w.box.parent(); p != nil && p != b; p = p.parent() {
				p.addFragment(r, lineNo)
			}
			x += w.width
		}
		height += lineH
		lineNo++
		line, lineW, lineH = line[:0], 0, 0
	}
	for _, w := range words {
		need := w.width
		if len(line) > 0 && w.spaceBefore {
			need += w.space
		}
		if len(line) > 0 && (w.breakBefore || lineW+need > avail) {
			flush()
			need = w.width
		}
		line = append(line, w)
		lineW += need
		lineH = max(lineH, w.lineHeight)
	}
	flush()
	for _, ib := range run {
		ib.setClean()
	}
	return height
}

// collectWords appends the words of an inline box and its descendants.
// Fragments of the boxes are reset.
func collectWords(ib *Box, words []word, trailingSpace bool) ([]word, bool) {
	ib.frags = ib.frags[:0]
	ib.fragLine = -1
	if ib.kind == inlineBox {
		for _, ch := range ib.boxes() {
			words, trailingSpace = collectWords(ch, words, trailingSpace)
		}
		return words, trailingSpace
	}
	if ib.kind != textBox {
		tracer().Errorf("block box %v within inline content", ib)
		return words, trailingSpace
	}
	font := ib.font()
	space := font.TextWidth(" ")
	lh := ib.lineHeight(font)
	pre := ib.style.ComputedProperty("white-space", ib).IsIdent("pre")
	if pre {
		for i, l := range strings.Split(ib.text, "\n") {
			words = append(words, word{box: ib, text: l, width: font.TextWidth(l),
				lineHeight: lh, breakBefore: i > 0})
		}
		return words, false
	}
	spaceBefore := trailingSpace
	start := -1
	emit := func(end int) {
		t := ib.text[start:end]
		words = append(words, word{box: ib, text: t, width: font.TextWidth(t),
			space: space, spaceBefore: spaceBefore, lineHeight: lh})
		spaceBefore, start = false, -1
	}
	for i, r := range ib.text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				emit(i)
			}
			spaceBefore = true
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		emit(len(ib.text))
	}
	return words, spaceBefore
}

func (b *Box) addFragment(r Rect, line int) {
	if n := len(b.frags); n > 0 && b.fragLine == line {
		b.frags[n-1] = b.frags[n-1].Union(r)
		return
	}
	b.frags = append(b.frags, r)
	b.fragLine = line
}

func (b *Box) setClean() {
	b.dirty = false
	for _, ch := range b.boxes() {
		ch.setClean()
	}
}

// font returns the font for a text box, as selected by its computed style.
func (b *Box) font() device.Font {
	dev := b.style.Tree().Device()
	families := style.FontFamilies(b.style.ComputedProperty("font-family", b))
	size := cascade.FontSize(b)
	fstyle := b.style.ComputedProperty("font-style", b).Str()
	weight := b.style.ComputedProperty("font-weight", b)
	w := "normal"
	if weight.Num() >= 700 {
		w = "bold"
	}
	return dev.Font(families, size, fstyle, w)
}

func (b *Box) lineHeight(font device.Font) float64 {
	lh := b.style.ComputedProperty("line-height", b)
	if pt, ok := lh.ToPt(0); ok && lh.Kind() == css.DimensionKind {
		return pt
	}
	return font.Ascent() + font.Descent()
}
