/*
Package cascade resolves CSS property values for frames.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the ordered fallback of many declaration
layers and (2) the complicated semantics of computing style attributes for a
given box.

Style Tree

Every element is styled by an ordered sequence of declaration sets, least
specific first: user agent defaults, author rules in order of specificity,
presentational attributes, inline style, and important declarations. We call
such a sequence a cascade path. Elements with equal cascade paths are styled
identically, and this is very common: think of all the paragraphs of a
chapter. A StyleTree is a trie over cascade paths; each trie node is a
StyleNode. Asking the tree for the node of a path returns the same
StyleNode instance for equal paths, so equally styled elements share one
StyleNode and its caches.

A StyleNode's cascade parent is the node for the path one layer shorter. It is
not the style of the parent element! Walking up the cascade parents visits
less specific layers of the same element.

Specified and Computed Values

The specified value of a property is the first explicit value found walking
up the cascade parents. If none is found, inherited properties are
specified as "inherit", others take their initial value.

Computed values are resolved for a box (a frame of the layout tree). Some
computed values are a function of the StyleNode alone and are cached there,
shared between all boxes. Others depend on the box they are computed
for, e.g. a font size of 2em depends on the parent box's font size. These are
cached in the box's own cache. Compute functions decide which cache applies.

Status

This is a first draft. It is unstable and the API may change without
notice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docview.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("docview.cascade")
}
