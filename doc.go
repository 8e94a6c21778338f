/*
Package monobitmap provides a pre-rasterized bitmap font for the DejaVu
Sans Mono typeface.

Strictly speaking this is more than a classic bitmap font: every pixel is
encoded as an intensity byte (0…255) instead of a single on/off bit, which
preserves the anti-aliasing of the original outlines and looks much better
on screen. We keep the term bitmap font because that is the term people use
when talking about pre-rasterized fonts in early boot code or kernels,
which is the intended habitat of this package.

Glyphs come pre-rasterized for a fixed set of raster heights (14, 16, 24,
32 and 64 pixels) and font weights (light, regular, bold). Looking up a
glyph never rasterizes, parses or allocates anything: it is an interval
search over embedded constant tables, followed by slicing a fixed-size
block out of them. There are no floating point operations anywhere on the
lookup path, and all data is immutable, so lookups are safe under
unsynchronized concurrent access.

	width := monobitmap.RasterWidth(monobitmap.Regular, monobitmap.Size16)
	raster, ok := monobitmap.Raster('A', monobitmap.Regular, monobitmap.Size16)
	if !ok {
		// codepoint not covered; fall back to ' ' or a placeholder
	}
	for y := 0; y < raster.Height(); y++ {
		row := raster.Row(y) // width intensity bytes
		_ = row
	}

The font is a monospaced typeface: for a fixed weight and height every
glyph has the same pixel width, independent of the character.

# Covered codepoints

The shipped tables cover Basic Latin (U+0020…U+007E), the Latin-1
Supplement (U+00A0…U+00FF) and Latin Extended-A (U+0100…U+017F). Control
characters are not included; looking one up reports an uncovered
codepoint. Characters outside the covered intervals are likewise reported
as absent, never substituted.

# Build-time table selection

By default all weights, heights and codepoint ranges are compiled in. The
Go linker is good at discarding tables for weight/height combinations a
program never asks for, so for most programs the default is fine.
Builds that need tight control over the embedded data can opt into manual
selection with the build tag `monobitmap_custom`; then only combinations
named by additional tags are embedded:

	monobitmap_light, monobitmap_regular, monobitmap_bold
	monobitmap_size14, monobitmap_size16, monobitmap_size24,
	monobitmap_size32, monobitmap_size64
	monobitmap_basiclatin, monobitmap_latin1, monobitmap_latinexta

Lookups for combinations that were not compiled in simply report absence.
Compiled lets programs assert their build configuration during startup.

The tables are generated offline by cmd/monogen from the DejaVu fonts;
regenerating them is not something this package ever does at runtime.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monobitmap
