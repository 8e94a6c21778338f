/*
Package face adapts the monobitmap glyph tables to the font.Face interface
of golang.org/x/image/font, so that the pre-rasterized font plugs into the
standard Go text drawing machinery (font.Drawer et al.).

The adapter never rasterizes anything: glyph masks are alpha images backed
directly by the embedded intensity bytes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package face

import (
	"fmt"
	"image"

	"github.com/npillmayer/monobitmap"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'monobitmap.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("monobitmap.fonts")
}

type bitmapFace struct {
	weight monobitmap.Weight
	size   monobitmap.Height
	width  int
	ascent int
}

// New creates a font.Face for a weight and raster height. It returns an
// error if no glyph tables for the combination are compiled into the
// binary.
//
// The returned face is stateless and may be used concurrently.
func New(weight monobitmap.Weight, size monobitmap.Height) (font.Face, error) {
	if !monobitmap.Compiled(weight, size) {
		return nil, fmt.Errorf("monobitmap: no tables compiled in for %v at %dpx",
			weight, size.Val())
	}
	f := &bitmapFace{
		weight: weight,
		size:   size,
		width:  monobitmap.RasterWidth(weight, size),
		ascent: monobitmap.Baseline(weight, size),
	}
	tracer().Debugf("created bitmap face %v/%dpx, advance %dpx", weight, size.Val(), f.width)
	return f, nil
}

func (f *bitmapFace) Close() error { return nil }

func (f *bitmapFace) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle,
	mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	raster, ok := monobitmap.Raster(r, f.weight, f.size)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x, y := dot.X.Round(), dot.Y.Round()
	dr = image.Rect(x, y-f.ascent, x+raster.Width(), y-f.ascent+raster.Height())
	mask = &image.Alpha{
		Pix:    raster.Bytes(), // read-only; the drawer only samples it
		Stride: raster.Width(),
		Rect:   image.Rect(0, 0, raster.Width(), raster.Height()),
	}
	return dr, mask, image.Point{}, fixed.I(f.width), true
}

func (f *bitmapFace) GlyphBounds(r rune) (bounds fixed.Rectangle26_6,
	advance fixed.Int26_6, ok bool) {
	//
	if _, ok = monobitmap.Raster(r, f.weight, f.size); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(0, -f.ascent, f.width, f.size.Val()-f.ascent)
	return bounds, fixed.I(f.width), true
}

func (f *bitmapFace) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok = monobitmap.Raster(r, f.weight, f.size); !ok {
		return 0, false
	}
	return fixed.I(f.width), true
}

// Kern always returns 0; a monospace bitmap font has no kerning pairs.
func (f *bitmapFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *bitmapFace) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(f.size.Val()),
		Ascent:     fixed.I(f.ascent),
		Descent:    fixed.I(f.size.Val() - f.ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
