/*
Package domdbg implements helpers to debug a content tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/style"
	"github.com/xlab/treeprint"
)

// Print returns a string representation of the content tree below e,
// including text and inline styles.
func Print(e *dom.Element) string {
	if e == nil {
		return "<empty>"
	}
	tp := treeprint.NewWithRoot(label(e))
	printChildren(e, tp)
	return tp.String()
}

func printChildren(e *dom.Element, branch treeprint.Tree) {
	for _, ch := range e.Children() {
		if len(ch.Children()) == 0 {
			branch.AddNode(label(ch))
		} else {
			printChildren(ch, branch.AddBranch(label(ch)))
		}
	}
}

func label(e *dom.Element) string {
	var b strings.Builder
	b.WriteString(e.String())
	if !e.IsText() && e.Text() != "" {
		fmt.Fprintf(&b, " %q", e.Text())
	}
	normal, important := e.InlineStyle()
	for _, set := range []*style.DeclarationSet{normal, important} {
		if !set.IsEmpty() {
			b.WriteString(" ")
			b.WriteString(set.String())
		}
	}
	return b.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	SEdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a content tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document and a Writer.
// The diagram will include the inline and intrinsic styles of elements.
func ToGraphViz(doc *dom.Document, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("styles").Parse(styleTmpl))
	gparams.SEdgeTmpl = template.Must(template.New("sedge").Parse(styleEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*dom.Element]string, 4096)
	if doc.Root() != nil {
		nodes(doc.Root(), w, dict, &gparams)
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a document and a testing.T, it will
// create a Graphiviz image of the content tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.Document, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	E    *dom.Element
	Name string
}

type styles struct {
	Name  string
	Decls []style.Declaration
}

func nodes(e *dom.Element, w io.Writer, dict map[*dom.Element]string, gparams *graphParamsType) {
	domNode(e, w, dict, gparams)
	for _, ch := range e.Children() {
		nodes(ch, w, dict, gparams)
		domEdge(e, ch, w, dict, gparams)
	}
}

func domNode(e *dom.Element, w io.Writer, dict map[*dom.Element]string, gparams *graphParamsType) {
	name := nodeName(e, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{e, name}); err != nil {
		panic(err)
	}
	var decls []style.Declaration
	normal, important := e.InlineStyle()
	for _, set := range []*style.DeclarationSet{e.IntrinsicStyle(), normal, important} {
		decls = append(decls, set.Declarations()...)
	}
	if len(decls) == 0 {
		return
	}
	s := styles{Name: name + "s", Decls: decls}
	if err := gparams.StyleTmpl.Execute(w, s); err != nil {
		panic(err)
	}
	if err := gparams.SEdgeTmpl.Execute(w, []string{name, s.Name}); err != nil {
		panic(err)
	}
}

func nodeName(e *dom.Element, dict map[*dom.Element]string) string {
	name := dict[e]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[e] = name
	}
	return name
}

type edge struct {
	N1, N2 node
}

func domEdge(e1 *dom.Element, e2 *dom.Element, w io.Writer, dict map[*dom.Element]string,
	gparams *graphParamsType) {
	//
	ed := edge{node{e1, nodeName(e1, dict)}, node{e2, nodeName(e2, dict)}}
	if err := gparams.EdgeTmpl.Execute(w, ed); err != nil {
		panic(err)
	}
}

func shortText(e *dom.Element) string {
	t := e.Text()
	s := "\"\\\""
	if len(t) > 10 {
		s += t[:10] + "...\\\"\""
	} else {
		s += t + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .E.IsText }}
{{ .Name }}	[ label={{ shortstring .E }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .E.Name }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Decls }}
      <tr><td align="right">{{ .Property }}:</td><td>{{ range .Values }}{{ . }} {{ end }}{{ if .Important }}!{{ end }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const styleEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
