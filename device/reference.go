package device

import (
	"strings"
	"unicode"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/tyse/core/dimen"
)

// Scale factors for named font sizes, relative to "medium" (CSS 2.1 §15.7).
var namedSizes = map[string]float64{
	"xx-small": 3.0 / 5.0,
	"x-small":  3.0 / 4.0,
	"small":    8.0 / 9.0,
	"medium":   1,
	"large":    6.0 / 5.0,
	"x-large":  3.0 / 2.0,
	"xx-large": 2,
}

// Reference is a deterministic render device. It does not know about real
// fonts; metrics are derived from the font size.
type Reference struct {
	dpi    float64
	medium float64
}

// NewReferenceDevice creates a reference device for a resolution and a
// "medium" font size in points. Zero values select 72 dpi and 12pt.
func NewReferenceDevice(dpi float64, medium float64) *Reference {
	if dpi <= 0 {
		dpi = 72
	}
	if medium <= 0 {
		medium = 12
	}
	return &Reference{dpi: dpi, medium: medium}
}

// NamedFontSize is part of interface RenderDevice.
func (dev *Reference) NamedFontSize(name string) css.Value {
	if f, ok := namedSizes[name]; ok {
		return css.Pt(f * dev.medium)
	}
	return css.Pt(dev.medium)
}

// DimensionToPt is part of interface RenderDevice.
func (dev *Reference) DimensionToPt(v css.Value, fontSize float64) float64 {
	pt, ok := v.ToPt(fontSize)
	if !ok {
		tracer().Debugf("cannot convert %s to points", v)
	}
	return pt
}

// DimensionToDevice is part of interface RenderDevice.
func (dev *Reference) DimensionToDevice(v css.Value, fontSize float64) float64 {
	return dev.DimensionToPt(v, fontSize) * dev.dpi / 72
}

// DPI is part of interface RenderDevice.
func (dev *Reference) DPI() float64 {
	return dev.dpi
}

// Font is part of interface RenderDevice.
func (dev *Reference) Font(families []string, size float64, style, weight string) Font {
	f := &refFont{size: css.PtToDU(size), advance: 0.5, space: 0.25}
	for _, fam := range families {
		if strings.TrimSpace(fam) == "monospace" {
			f.advance, f.space = 0.6, 0.6
			break
		}
	}
	if weight == "bold" || weight == "700" || weight == "800" || weight == "900" {
		f.advance *= 1.1
	}
	return f
}

var _ RenderDevice = &Reference{}

type refFont struct {
	size    dimen.DU
	advance float64 // advance width of a glyph, relative to size
	space   float64 // advance width of white space, relative to size
}

func (f *refFont) Size() float64 {
	return css.DUToPt(f.size)
}

func (f *refFont) Ascent() float64 {
	return css.DUToPt(f.size * 4 / 5)
}

func (f *refFont) Descent() float64 {
	return css.DUToPt(f.size / 5)
}

func (f *refFont) TextWidth(s string) float64 {
	var w dimen.DU
	glyph := dimen.DU(float64(f.size) * f.advance)
	space := dimen.DU(float64(f.size) * f.space)
	for _, r := range s {
		if unicode.IsSpace(r) {
			w += space
		} else {
			w += glyph
		}
	}
	return css.DUToPt(w)
}
