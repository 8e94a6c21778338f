/*
monogen rasterizes a monospaced TrueType font into the embedded glyph
tables of the monobitmap module.

This is the offline half of the module: it runs at development time,
produces the .bin raster assets and the Go registration files in the
light, regular and bold packages, and is never part of a consuming
binary. The runtime core only indexes into the data written here.

Usage:

	monogen -font DejaVuSansMono.ttf -bold DejaVuSansMono-Bold.ttf -out .

Font arguments may be file paths or font file names, which are then
located among the installed system fonts. The light weight is derived
from the regular outlines with a thinning intensity curve, because
DejaVu Sans Mono ships no light face.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'monobitmap.gen'.
func tracer() tracing.Trace {
	return tracing.Select("monobitmap.gen")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.monobitmap.gen": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	regularArg := flag.String("font", "DejaVuSansMono.ttf", "Regular-weight font, a file path or a font file name")
	boldArg := flag.String("bold", "DejaVuSansMono-Bold.ttf", "Bold-weight font, a file path or a font file name")
	sizesArg := flag.String("sizes", "14,16,24,32,64", "Raster heights to generate, in pixels")
	outArg := flag.String("out", ".", "Module root directory to write table packages into")
	flag.Parse()
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
	pterm.Info.Println("monobitmap table generator")
	//
	sizes, err := parseSizes(*sizesArg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	gen := &generator{outDir: *outArg, sizes: sizes}
	if err := gen.run(*regularArg, *boldArg); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("glyph tables written to " + *outArg)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type generator struct {
	outDir string
	sizes  []int
}

// run rasterizes the regular and bold faces for every configured raster
// height and emits the table packages. The light weight is derived from
// the regular rasters.
func (gen *generator) run(regularArg, boldArg string) error {
	regular, err := loadFont(regularArg)
	if err != nil {
		return err
	}
	bold, err := loadFont(boldArg)
	if err != nil {
		return err
	}
	for _, height := range gen.sizes {
		tracer().Infof("rasterizing regular weight at %dpx", height)
		st, err := rasterizeSize(regular, height)
		if err != nil {
			return err
		}
		if err = emitTables(gen.outDir, "regular", "Regular", st); err != nil {
			return err
		}
		if err = emitTables(gen.outDir, "light", "Light", st.thinned()); err != nil {
			return err
		}
		tracer().Infof("rasterizing bold weight at %dpx", height)
		if st, err = rasterizeSize(bold, height); err != nil {
			return err
		}
		if err = emitTables(gen.outDir, "bold", "Bold", st); err != nil {
			return err
		}
	}
	return nil
}

// loadFont reads a font either from a file path or, failing that, from the
// installed system fonts.
func loadFont(arg string) (*sourceFont, error) {
	path := arg
	if _, err := os.Stat(path); err != nil {
		path, err = findfont.Find(arg)
		if err != nil {
			return nil, fmt.Errorf("font %q not found: %w", arg, err)
		}
		tracer().Debugf("%s is a system font: %s", arg, path)
	}
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFont(ttf)
}

func parseSizes(arg string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(arg, ",") {
		s, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("invalid raster height %q", field)
		}
		sizes = append(sizes, s)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no raster heights given")
	}
	return sizes, nil
}
