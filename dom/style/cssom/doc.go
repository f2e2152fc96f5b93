/*
Package cssom provides an abstraction of CSS stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. The styling
engine does not depend on a concrete CSS parser, but works on top of the
interfaces StyleSheet and Rule. A concrete implementation on top of
github.com/aymerick/douceur may be found in sub-package douceuradapter.

Rules carry their declarations already parsed into style.Declarations.
Function DeclarationSets splits them into cascade layers for normal and for
important declarations, ready to be fed into a cascade.StyleTree.

Selector matching is not part of this package. Frame builders will use
https://godoc.org/github.com/andybalholm/cascadia for matching the selectors
of a rule against the elements of a document.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'docview.style'.
func tracer() tracing.Trace {
	return tracing.Select("docview.style")
}
