package glyphstore

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// block fills a pixel buffer for glyphs low…high with a per-glyph marker
// byte, so tests can verify that lookups slice out the right block.
func block(height, width int, low, high rune) []byte {
	cell := height * width
	pix := make([]byte, cell*int(high-low+1))
	for i := range pix {
		pix[i] = byte(low) + byte(i/cell)
	}
	return pix
}

func TestStoreLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	//
	s := &Store{}
	s.Install(Regular, 14, 7, 11, 0x40, 0x4F, block(14, 7, 0x40, 0x4F))
	s.Install(Regular, 14, 7, 11, 0x60, 0x6F, block(14, 7, 0x60, 0x6F))
	//
	pix, width, ok := s.Lookup(Regular, 14, 'A')
	require.True(t, ok)
	require.Equal(t, 7, width)
	require.Len(t, pix, 14*7)
	for _, v := range pix {
		require.EqualValues(t, 'A', v, "lookup sliced out the wrong glyph block")
	}
	pix, _, ok = s.Lookup(Regular, 14, 'o')
	require.True(t, ok)
	require.EqualValues(t, 'o', pix[0])
}

func TestStoreLookupMisses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	//
	s := &Store{}
	s.Install(Bold, 16, 8, 13, 0x40, 0x4F, block(16, 8, 0x40, 0x4F))
	//
	for _, c := range []rune{0x3F, 0x50, 0x1000} { // below, above, far out
		_, _, ok := s.Lookup(Bold, 16, c)
		require.False(t, ok, "expected %#U to miss", c)
	}
	_, _, ok := s.Lookup(Regular, 16, 'A') // weight without tables
	require.False(t, ok)
	_, _, ok = s.Lookup(Bold, 24, 'A') // height without tables
	require.False(t, ok)
	_, _, ok = s.Lookup(-1, 16, 'A')
	require.False(t, ok)
	_, _, ok = s.Lookup(Bold, 15, 'A') // unsupported raster height
	require.False(t, ok)
}

func TestStoreKeepsSpansSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	//
	s := &Store{}
	// install out of order
	s.Install(Light, 14, 7, 11, 0x100, 0x10F, block(14, 7, 0x100, 0x10F))
	s.Install(Light, 14, 7, 11, 0x20, 0x2F, block(14, 7, 0x20, 0x2F))
	s.Install(Light, 14, 7, 11, 0xA0, 0xAF, block(14, 7, 0xA0, 0xAF))
	//
	for _, c := range []rune{0x20, 0x2F, 0xA5, 0x100, 0x10F} {
		_, _, ok := s.Lookup(Light, 14, c)
		require.True(t, ok, "expected %#U to be found", c)
	}
	for _, c := range []rune{0x1F, 0x30, 0x9F, 0xB0, 0x110} {
		_, _, ok := s.Lookup(Light, 14, c)
		require.False(t, ok, "expected %#U to miss", c)
	}
}

func TestStoreMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	//
	s := &Store{}
	s.Install(Regular, 32, 17, 26, 0x20, 0x21, block(32, 17, 0x20, 0x21))
	width, ascent, ok := s.Metrics(Regular, 32)
	require.True(t, ok)
	require.Equal(t, 17, width)
	require.Equal(t, 26, ascent)
	_, _, ok = s.Metrics(Regular, 64)
	require.False(t, ok)
}

func TestStoreRejectsMisconfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	//
	s := &Store{}
	s.Install(Regular, 14, 7, 11, 0x40, 0x4F, block(14, 7, 0x40, 0x4F))
	require.Panics(t, func() { // overlap with existing span
		s.Install(Regular, 14, 7, 11, 0x4F, 0x5F, block(14, 7, 0x4F, 0x5F))
	})
	require.Panics(t, func() { // conflicting width for same table
		s.Install(Regular, 14, 8, 11, 0x60, 0x6F, block(14, 8, 0x60, 0x6F))
	})
	require.Panics(t, func() { // pixel buffer too short
		s.Install(Regular, 16, 8, 13, 0x40, 0x4F, make([]byte, 17))
	})
	require.Panics(t, func() { // unknown weight
		s.Install(17, 14, 7, 11, 0x40, 0x4F, block(14, 7, 0x40, 0x4F))
	})
	require.Panics(t, func() { // unsupported height
		s.Install(Regular, 15, 7, 11, 0x40, 0x4F, block(15, 7, 0x40, 0x4F))
	})
	require.Panics(t, func() { // inverted interval
		s.Install(Regular, 16, 8, 13, 0x4F, 0x40, nil)
	})
	require.Panics(t, func() { // baseline outside the raster
		s.Install(Bold, 14, 7, 15, 0x40, 0x4F, block(14, 7, 0x40, 0x4F))
	})
}
