/*
Package view implements a document view, which keeps a frame tree in sync
with a content tree.

A DocumentView listens to mutations of a document. It does not react to a
mutation immediately, but records what has to be done: elements whose
frames have to be rebuilt (reconstruct) and frames which have to be laid
out again (reflow). Pending work is carried out lazily, the next time
geometry is observed, i.e. when the view is drawn, measured or hit-tested.
Every observation reflects all mutations up to that moment.

Style changes are handled as precisely as possible: if an element's cascade
path changes, the view compares the specified values of the old and the new
style node and purges only the computed values of changed properties.
Changes of property "display" may change the structure of the frame tree,
and will trigger reconstruction of the parent element's frames.

Views, documents and frame trees are not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docview.view'.
func tracer() tracing.Trace {
	return tracing.Select("docview.view")
}
