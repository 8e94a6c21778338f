package monobitmap

// GlyphRaster is the rendered form of one glyph: a row-major grid of
// height×width intensity bytes, where 0 is fully background, 255 is fully
// foreground and intermediate values are anti-aliased coverage.
//
// A GlyphRaster is a transient, read-only view into the embedded font
// tables. The slices returned by Bytes and Row alias constant data and
// must not be modified.
type GlyphRaster struct {
	pix    []byte
	height int
	width  int
}

// Height returns the number of pixel rows of the raster.
func (g GlyphRaster) Height() int {
	return g.height
}

// Width returns the number of pixel columns of the raster. All glyphs of
// the same weight and raster height share this width.
func (g GlyphRaster) Width() int {
	return g.width
}

// Bytes returns the raster as a flat sequence of height×width intensity
// bytes in row-major order.
func (g GlyphRaster) Bytes() []byte {
	return g.pix
}

// Row returns one pixel row of the raster, width intensity bytes long.
// y must be in 0…Height()-1.
func (g GlyphRaster) Row(y int) []byte {
	off := y * g.width
	return g.pix[off : off+g.width : off+g.width]
}

// At returns the intensity of the pixel in column x of row y.
func (g GlyphRaster) At(x, y int) uint8 {
	return g.pix[y*g.width+x]
}
