// Package light carries the pre-rasterized glyph tables for the light font
// weight. DejaVu Sans Mono has no light face; these tables are derived by
// cmd/monogen from the regular outlines with a thinning intensity curve.
//
// The table files and the raster assets next to them are generated by
// cmd/monogen and register themselves with the glyph store during package
// initialization. Which of them take part in a build is controlled by
// build tags, see the documentation of the monobitmap root package.
package light
