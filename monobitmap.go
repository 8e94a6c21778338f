package monobitmap

import (
	"github.com/npillmayer/monobitmap/internal/glyphstore"

	// Register the generated glyph tables. Which tables these packages
	// contribute is controlled by build tags, see the package documentation.
	_ "github.com/npillmayer/monobitmap/bold"
	_ "github.com/npillmayer/monobitmap/light"
	_ "github.com/npillmayer/monobitmap/regular"
)

// Weight selects a font weight.
type Weight int

// Supported font weights. Whether tables for a weight are present in the
// binary depends on the build configuration.
const (
	Light Weight = iota
	Regular
	Bold
)

func (w Weight) String() string {
	switch w {
	case Light:
		return "light"
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	}
	return "unknown"
}

// Height selects a raster height. The height is the full vertical extent of
// a glyph box, including the vertical padding needed to align characters
// like 'Ä', 'y' and 'A' on a common baseline; the visual font size is a
// few percent smaller.
type Height int

// Supported raster heights. Whether tables for a height are present in the
// binary depends on the build configuration.
const (
	Size14 Height = 14
	Size16 Height = 16
	Size24 Height = 24
	Size32 Height = 32
	Size64 Height = 64
)

// Val returns the pixel height of the variant.
func (h Height) Val() int {
	return int(h)
}

// Raster returns the glyph raster for a codepoint at a given weight and
// raster height. It reports ok=false if c is not covered by any codepoint
// range compiled into the binary for that combination; callers decide how
// to fall back (skip, substitute, draw a placeholder).
//
// Raster is deterministic and allocation-free: the returned raster is a
// read-only view into embedded constant data, and repeated calls with
// identical arguments yield byte-identical blocks.
func Raster(c rune, weight Weight, height Height) (GlyphRaster, bool) {
	pix, width, ok := glyphstore.Lookup(int(weight), height.Val(), c)
	if !ok {
		return GlyphRaster{}, false
	}
	return GlyphRaster{pix: pix, height: height.Val(), width: width}, true
}

// RasterWidth returns the fixed pixel width which every glyph occupies at
// the given weight and raster height (this is a monospace font). It returns
// 0 if no tables for the combination are compiled into the binary.
func RasterWidth(weight Weight, height Height) int {
	width, _, _ := glyphstore.Metrics(int(weight), height.Val())
	return width
}

// Baseline returns the number of pixel rows from the top of a glyph raster
// down to the glyph baseline, for the given weight and raster height.
// It returns 0 if no tables for the combination are compiled in.
func Baseline(weight Weight, height Height) int {
	_, ascent, _ := glyphstore.Metrics(int(weight), height.Val())
	return ascent
}

// Compiled reports whether any glyph tables for the given weight and raster
// height were compiled into the binary. Programs built with restrictive
// build tags can use this to assert their configuration during startup.
func Compiled(weight Weight, height Height) bool {
	_, _, ok := glyphstore.Metrics(int(weight), height.Val())
	return ok
}
