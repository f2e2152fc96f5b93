/*
Package style holds CSS declarations and the registry of supported properties.

A Declaration is a property name together with its (parsed) values. Declarations
are grouped into DeclarationSets, each set forming one layer of the cascade, e.g.
the declarations of one CSS rule or of an element's inline style. Sets are
immutable and carry a content key, so that sets with identical content are
interchangeable.

The property registry knows, for every supported property, its target
attributes (shorthands like "margin" assign to several longhands), whether it is
inherited by default, its initial value and how to validate its values. Invalid
declarations are not an error condition for clients: CSS mandates to drop the
offending declaration and continue. We do this and report a diagnostic to the
tracer.

Status

This is a first draft. It is unstable and the API may change without
notice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'docview.style'
func tracer() tracing.Trace {
	return tracing.Select("docview.style")
}
