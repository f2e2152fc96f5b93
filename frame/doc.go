/*
Package frame implements a reference frame tree for a document view.

Frames are the boxes of the CSS box model, generated for the elements of a
content tree. This package provides the Frame interface, which is what a
document view needs from a frame tree, and a simple implementation of it:
type Box lays out block-level frames vertically, one after another, and
breaks inline content into lines, using the font metrics of a render
device. Relatively positioned boxes are shifted when their bounding box is
resolved.

Frame trees are built by a Builder, which assembles the cascade path for an
element: user agent defaults, matching author rules (ordered by selector
specificity, then source order), presentational attributes, inline styles,
followed by important author rules and important inline styles. Selectors
are matched with https://godoc.org/github.com/andybalholm/cascadia.

Not implemented: margin collapsing, floats, absolute positioning (treated
as static), tables (treated as blocks), and padding or borders of inline
boxes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docview.frame'.
func tracer() tracing.Trace {
	return tracing.Select("docview.frame")
}
