/*
monoimg renders a line of text into a PNG image, using the pre-rasterized
monobitmap glyph tables through the standard x/image drawing machinery.
It is a demo for the face package, not part of the runtime core.

Usage:

	monoimg -text "Grüße, Welt" -weight bold -size 32 -out hello.png

Characters outside the compiled-in codepoint ranges are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/npillmayer/monobitmap"
	"github.com/npillmayer/monobitmap/face"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'monobitmap.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("monobitmap.fonts")
}

const margin = 4 // pixels of padding around the rendered line

func main() {
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.monobitmap.fonts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	text := flag.String("text", "Hello, World!", "Text to render")
	weightArg := flag.String("weight", "regular", "Font weight [light|regular|bold]")
	sizeArg := flag.Int("size", 16, "Raster height in pixels [14|16|24|32|64]")
	outArg := flag.String("out", "monoimg.png", "Output PNG file")
	flag.Parse()
	//
	weight, err := parseWeight(*weightArg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	size := monobitmap.Height(*sizeArg)
	f, err := face.New(weight, size)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	img := renderLine(f, size, *text)
	file, err := os.Create(*outArg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	err = png.Encode(file, img)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Printf("rendered %d×%d px to %s\n", img.Bounds().Dx(), img.Bounds().Dy(), *outArg)
}

// renderLine draws text onto a black canvas sized to fit the line.
func renderLine(f font.Face, size monobitmap.Height, text string) *image.Gray {
	d := &font.Drawer{Face: f, Src: image.White}
	width := d.MeasureString(text).Ceil()
	img := image.NewGray(image.Rect(0, 0, width+2*margin, size.Val()+2*margin))
	d.Dst = img
	d.Dot = fixed.P(margin, margin+f.Metrics().Ascent.Round())
	d.DrawString(text)
	tracer().Debugf("rendered %q, dot advanced to %v", text, d.Dot)
	return img
}

func parseWeight(arg string) (monobitmap.Weight, error) {
	switch strings.ToLower(arg) {
	case "light":
		return monobitmap.Light, nil
	case "regular":
		return monobitmap.Regular, nil
	case "bold":
		return monobitmap.Bold, nil
	}
	return 0, fmt.Errorf("unknown font weight %q", arg)
}
