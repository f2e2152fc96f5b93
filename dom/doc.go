/*
Package dom implements the content tree of a document view.

Overview

A Document owns a tree of Elements. Elements hold either child elements or
text, never both: adding a child to an element holding text will move the
text into an anonymous text element first. Every mutation of the tree
(adding children or text, setting attributes or inline styles) is reported
synchronously to the listeners of the document. Listeners, usually a
document view, use these notifications as their only means of change
detection.

Elements keep a mirror of themselves as nodes of golang.org/x/net/html.
The mirror is used for selector matching with
https://godoc.org/github.com/andybalholm/cascadia and is kept in sync with
every mutation.

Markup is ingested with Parse, which builds a document from HTML. Embedded
<style> elements are collected as stylesheets of the document.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'docview.dom'.
func tracer() tracing.Trace {
	return tracing.Select("docview.dom")
}
