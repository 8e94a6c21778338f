// Package bold carries the pre-rasterized glyph tables for the bold font
// weight of DejaVu Sans Mono.
//
// The table files and the raster assets next to them are generated by
// cmd/monogen and register themselves with the glyph store during package
// initialization. Which of them take part in a build is controlled by
// build tags, see the documentation of the monobitmap root package.
package bold
