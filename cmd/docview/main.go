/*
Command docview lays out an HTML document and prints its frame tree.

Usage:

    docview [flags] file.html

Flags:

    -width, -height  viewport size in pt
    -trace           trace level for all docview tracers (Debug, Info, Error)
    -at x,y          print the elements at a point of the viewport
    -dom             print the content tree
    -bmp file        draw the viewport into a BMP image

Configuration is read from docview.nt (NestedText) at the usual
configuration locations, if present. Flags override configuration values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/docview/dom"
	"github.com/npillmayer/docview/dom/domdbg"
	"github.com/npillmayer/docview/frame"
	"github.com/npillmayer/docview/view"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

var traceKeys = []string{
	"docview.css", "docview.style", "docview.cascade", "docview.device",
	"docview.dom", "docview.frame", "docview.view",
}

func main() {
	width := flag.Int("width", 0, "viewport width in pt")
	height := flag.Int("height", 0, "viewport height in pt")
	level := flag.String("trace", "", "trace level (Debug, Info, Error)")
	at := flag.String("at", "", "print elements at viewport point `x,y`")
	printDOM := flag.Bool("dom", false, "print the content tree")
	out := flag.String("bmp", "", "draw the viewport into a BMP `file`")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: docview [flags] file.html")
		flag.PrintDefaults()
		os.Exit(2)
	}
	conf := koanfadapter.New(nil, "docview", []string{"nt"})
	conf.InitDefaults()
	if *level != "" {
		conf.Set("trace.root", *level)
		for _, key := range traceKeys {
			conf.Set("trace."+key, *level)
		}
	}
	if *width > 0 {
		conf.Set("viewport.width", *width)
	}
	if *height > 0 {
		conf.Set("viewport.height", *height)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "cannot configure tracing: %v\n", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if err := run(conf, flag.Arg(0), *at, *printDOM, *out); err != nil {
		tracing.Select("docview.view").Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(conf *koanfadapter.KConf, path, at string, printDOM bool, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}
	if printDOM {
		fmt.Println(domdbg.Print(doc.Root()))
	}
	v := view.New(nil, doc, conf)
	fmt.Printf("canvas: %.2f x %.2f pt\n", v.CanvasWidth(), v.CanvasHeight())
	fmt.Println(frame.Dump(v.Root()))
	if at != "" {
		x, y, err := parsePoint(at)
		if err != nil {
			return err
		}
		for _, e := range v.ElementsForPoint(x, y) {
			fmt.Printf("%v\n", e)
		}
	}
	if out != "" {
		return drawTo(v, out)
	}
	return nil
}

func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}

func drawTo(v *view.DocumentView, path string) error {
	scale := v.Device().DPI() / 72
	w := int(v.ViewportWidth() * scale)
	h := int(v.ViewportHeight() * scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	v.Draw(img)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
