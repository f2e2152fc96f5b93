package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/docview/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TextElementName is the element name of anonymous text elements.
const TextElementName = "#text"

// UserAgentDisplay returns the default `display` CSS property for an element
// name. Elements unknown to us will be set to display: block.
func UserAgentDisplay(name string) css.Value {
	if name == TextElementName {
		return css.Ident("inline")
	}
	switch atom.Lookup([]byte(strings.ToLower(name))) {
	case atom.Head, atom.Script, atom.Style, atom.Title, atom.Meta, atom.Link, atom.Template:
		return css.None
	case atom.Html, atom.Body, atom.Article, atom.Aside, atom.Div, atom.Section, atom.Header,
		atom.Footer, atom.Nav, atom.Main, atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5,
		atom.H6, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre, atom.Hr, atom.Center, atom.Figure,
		atom.Dl, atom.Dt, atom.Dd, atom.Form, atom.Address:
		return css.Ident("block")
	case atom.Li:
		return css.Ident("list-item")
	case atom.Table:
		return css.Ident("table")
	case atom.I, atom.B, atom.Span, atom.Strong, atom.Em, atom.A, atom.Code, atom.Small,
		atom.Big, atom.Sub, atom.Sup, atom.U, atom.S, atom.Img, atom.Br, atom.Label, atom.Tt,
		atom.Abbr, atom.Cite, atom.Q, atom.Var, atom.Kbd, atom.Mark, atom.Font:
		return css.Ident("inline")
	}
	tracer().Infof("unknown element %q will be set to display: block", name)
	return css.Ident("block")
}

// User agent style declarations besides display, per element name.
var uaDeclarations = map[string]string{
	"body":       "margin: 8px",
	"p":          "margin-top: 1em; margin-bottom: 1em",
	"h1":         "font-size: 2em; font-weight: bold; margin-top: .67em; margin-bottom: .67em",
	"h2":         "font-size: 1.5em; font-weight: bold; margin-top: .83em; margin-bottom: .83em",
	"h3":         "font-size: 1.17em; font-weight: bold; margin-top: 1em; margin-bottom: 1em",
	"h4":         "font-weight: bold; margin-top: 1.33em; margin-bottom: 1.33em",
	"h5":         "font-size: .83em; font-weight: bold; margin-top: 1.67em; margin-bottom: 1.67em",
	"h6":         "font-size: .67em; font-weight: bold; margin-top: 2.33em; margin-bottom: 2.33em",
	"b":          "font-weight: bolder",
	"strong":     "font-weight: bolder",
	"i":          "font-style: italic",
	"em":         "font-style: italic",
	"cite":       "font-style: italic",
	"pre":        "white-space: pre; font-family: monospace; margin-top: 1em; margin-bottom: 1em",
	"code":       "font-family: monospace",
	"tt":         "font-family: monospace",
	"center":     "text-align: center",
	"blockquote": "margin: 1em 40px",
	"ul":         "padding-left: 40px; margin-top: 1em; margin-bottom: 1em",
	"ol":         "padding-left: 40px; margin-top: 1em; margin-bottom: 1em",
	"hr":         "border: 1px inset gray; margin-top: .5em; margin-bottom: .5em",
	"small":      "font-size: smaller",
	"big":        "font-size: larger",
}

var uaSets = map[string]*DeclarationSet{}

// UserAgentDeclarations returns the user agent declaration set for an
// element name. In real-world browsers these are the user-agent CSS values.
// Sets are shared between calls for the same element name.
func UserAgentDeclarations(name string) *DeclarationSet {
	name = strings.ToLower(name)
	if set, ok := uaSets[name]; ok {
		return set
	}
	decls := []Declaration{{Property: "display", Values: []css.Value{UserAgentDisplay(name)}}}
	if text, ok := uaDeclarations[name]; ok {
		more, err := ParseDeclarations(text)
		if err != nil {
			tracer().Errorf("user agent styles for %s: %v", name, err)
		}
		decls = append(decls, more...)
	}
	set := NewDeclarationSet(decls...)
	uaSets[name] = set
	return set
}

// IntrinsicDeclarations maps legacy presentational attributes of an element
// to CSS declarations, e.g. <td bgcolor="red"> to background-color: red.
// Returns nil if no such attribute is present.
func IntrinsicDeclarations(name string, attrs []html.Attribute) *DeclarationSet {
	var decls []Declaration
	add := func(property, value string) {
		d, err := ConvertDeclaration(property, value, false)
		if err != nil {
			tracer().Debugf("ignoring presentational attribute %s=%q: %v", property, value, err)
			return
		}
		decls = append(decls, d)
	}
	for _, a := range attrs {
		switch strings.ToLower(a.Key) {
		case "bgcolor":
			add("background-color", a.Val)
		case "color":
			if strings.EqualFold(name, "font") {
				add("color", a.Val)
			}
		case "width", "height":
			add(strings.ToLower(a.Key), pixels(a.Val))
		case "align":
			switch strings.ToLower(name) {
			case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6":
				add("text-align", a.Val)
			}
		case "border":
			if strings.EqualFold(name, "img") || strings.EqualFold(name, "table") {
				add("border", pixels(a.Val)+" solid")
			}
		}
	}
	if len(decls) == 0 {
		return nil
	}
	return NewDeclarationSet(decls...)
}

// pixels turns a bare number into a pixel dimension.
func pixels(s string) string {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s + "px"
	}
	return s
}
