/*
Package glyphstore holds the embedded glyph raster tables and maps
codepoints to raster blocks.

Tables register themselves during package initialization (from the
generated files in the light, regular and bold packages) and are
immutable afterwards. Lookups are pure reads over static data and may
be called concurrently without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphstore

import (
	"fmt"
	"sort"
)

// Font weights, indexed positionally. The public enum in the root package
// maps onto these values.
const (
	Light = iota
	Regular
	Bold
	numWeights
)

// Raster heights supported by the generated tables.
var heights = [...]int{14, 16, 24, 32, 64}

const numHeights = 5

func heightIndex(h int) int {
	for i, hh := range heights {
		if hh == h {
			return i
		}
	}
	return -1
}

// --- Tables and spans ------------------------------------------------------

// A span covers a contiguous codepoint interval [low…high], with one raster
// block of height×width intensity bytes per codepoint, in codepoint order.
type span struct {
	low, high rune
	pix       []byte
}

// A Table collects the spans for one (weight, height) combination.
// Spans are disjoint and sorted by lower bound.
type Table struct {
	height, width int
	ascent        int // rows from raster top to the glyph baseline
	spans         []span
}

// Store is a fixed-size index of tables. The zero value is an empty store,
// ready for Install.
type Store struct {
	tables [numWeights][numHeights]*Table
}

var global = &Store{}

// Install registers the raster blocks for one codepoint interval with the
// store. It is meant to be called from init functions of generated table
// packages, before any lookup can happen.
//
// Malformed registrations (unknown weight or height, inconsistent metrics,
// overlapping intervals, or a pixel buffer whose length does not match the
// interval) are build-configuration errors and panic.
func (s *Store) Install(weight, height, width, ascent int, low, high rune, pix []byte) {
	if weight < 0 || weight >= numWeights {
		panic(fmt.Sprintf("monobitmap: table for unknown font weight %d", weight))
	}
	hx := heightIndex(height)
	if hx < 0 {
		panic(fmt.Sprintf("monobitmap: table for unsupported raster height %d", height))
	}
	if width <= 0 || ascent <= 0 || ascent > height {
		panic(fmt.Sprintf("monobitmap: invalid metrics %d×%d/%d", height, width, ascent))
	}
	if low > high {
		panic(fmt.Sprintf("monobitmap: empty codepoint interval %#U…%#U", low, high))
	}
	cell := height * width
	if len(pix) != cell*int(high-low+1) {
		panic(fmt.Sprintf("monobitmap: table for %#U…%#U has %d bytes, expected %d",
			low, high, len(pix), cell*int(high-low+1)))
	}
	t := s.tables[weight][hx]
	if t == nil {
		t = &Table{height: height, width: width, ascent: ascent}
		s.tables[weight][hx] = t
	} else if t.width != width || t.ascent != ascent {
		panic(fmt.Sprintf("monobitmap: tables for height %d disagree on metrics", height))
	}
	at := sort.Search(len(t.spans), func(i int) bool {
		return t.spans[i].low > low
	})
	if at > 0 && t.spans[at-1].high >= low {
		panic(fmt.Sprintf("monobitmap: overlapping codepoint intervals at %#U", low))
	}
	if at < len(t.spans) && t.spans[at].low <= high {
		panic(fmt.Sprintf("monobitmap: overlapping codepoint intervals at %#U", high))
	}
	t.spans = append(t.spans, span{})
	copy(t.spans[at+1:], t.spans[at:])
	t.spans[at] = span{low: low, high: high, pix: pix}
}

// Lookup finds the raster block for a codepoint. It returns the block
// together with the fixed glyph width for the table, or ok=false if either
// the (weight, height) combination has no tables compiled in or no span
// covers c.
func (s *Store) Lookup(weight, height int, c rune) (pix []byte, width int, ok bool) {
	t := s.table(weight, height)
	if t == nil {
		return nil, 0, false
	}
	at := sort.Search(len(t.spans), func(i int) bool {
		return c <= t.spans[i].high
	})
	if at == len(t.spans) || c < t.spans[at].low {
		return nil, 0, false
	}
	cell := t.height * t.width
	off := int(c-t.spans[at].low) * cell
	return t.spans[at].pix[off : off+cell : off+cell], t.width, true
}

// Metrics returns the fixed glyph width and the baseline position for a
// (weight, height) combination, or ok=false if it is not compiled in.
func (s *Store) Metrics(weight, height int) (width, ascent int, ok bool) {
	t := s.table(weight, height)
	if t == nil {
		return 0, 0, false
	}
	return t.width, t.ascent, true
}

func (s *Store) table(weight, height int) *Table {
	if weight < 0 || weight >= numWeights {
		return nil
	}
	hx := heightIndex(height)
	if hx < 0 {
		return nil
	}
	return s.tables[weight][hx]
}

// --- Default store ---------------------------------------------------------

// Install registers a table with the process-wide store.
// See Store.Install.
func Install(weight, height, width, ascent int, low, high rune, pix []byte) {
	global.Install(weight, height, width, ascent, low, high, pix)
}

// Lookup finds a raster block in the process-wide store. See Store.Lookup.
func Lookup(weight, height int, c rune) (pix []byte, width int, ok bool) {
	return global.Lookup(weight, height, c)
}

// Metrics reports table metrics from the process-wide store.
// See Store.Metrics.
func Metrics(weight, height int) (width, ascent int, ok bool) {
	return global.Metrics(weight, height)
}
