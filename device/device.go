/*
Package device defines the contract between styling/layout and an output device.

The cascade needs a device to resolve named font sizes and to convert
dimensions; layout needs font metrics. Package device declares these needs as
interfaces and offers a deterministic reference device, which computes font
metrics from the font size alone. The reference device is good enough for
tests and for a plain-text dump of a layout; real output devices will bring
real fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package device

import (
	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/schuko/tracing"
)

// RenderDevice is an output device for a document view.
// All lengths exchanged with the device are in points, unless stated otherwise.
type RenderDevice interface {
	// NamedFontSize resolves a font size keyword, e.g. "medium", to a dimension.
	NamedFontSize(name string) css.Value
	// DimensionToPt resolves a length to points, given the current font size.
	DimensionToPt(v css.Value, fontSize float64) float64
	// DimensionToDevice resolves a length to device pixels.
	DimensionToDevice(v css.Value, fontSize float64) float64
	// Font returns a font handle for a list of families.
	Font(families []string, size float64, style, weight string) Font
	// DPI returns the device resolution in dots per inch.
	DPI() float64
}

// Font is a handle for a font at a given size. Metrics are in points.
type Font interface {
	Size() float64
	Ascent() float64
	Descent() float64
	TextWidth(s string) float64
}

// tracer traces with key 'docview.device'.
func tracer() tracing.Trace {
	return tracing.Select("docview.device")
}
