/*
Package css provides the value model for CSS property values.

CSS properties are plentyful and their values come in a small number of
shapes: identifiers, strings, numbers, percentages, dimensions with a unit,
colors and URIs. This package models these as a closed tagged union (type
Value), which is comparable by content. Everything above this package
(declarations, the cascade, layout) builds on Value equality: two
declarations carrying equal values are interchangeable.

Parsing of value text is done with the CSS scanner of the Gorilla toolkit,
named colors are taken from the X11/SVG color table of golang.org/x/image.

Status

This is a first draft. It is unstable and the API may change without
notice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docview.css'.
func tracer() tracing.Trace {
	return tracing.Select("docview.css")
}
