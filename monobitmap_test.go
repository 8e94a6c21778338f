package monobitmap_test

import (
	"testing"

	"github.com/npillmayer/monobitmap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LookupTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestLookupFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.fonts")
	defer teardown()
	suite.Run(t, new(LookupTestEnviron))
}

var allWeights = []monobitmap.Weight{
	monobitmap.Light, monobitmap.Regular, monobitmap.Bold,
}

var allHeights = []monobitmap.Height{
	monobitmap.Size14, monobitmap.Size16, monobitmap.Size24,
	monobitmap.Size32, monobitmap.Size64,
}

// Codepoint intervals of the default build; keep in sync with the ranges
// cmd/monogen is configured with.
var compiledIntervals = [][2]rune{
	{0x0020, 0x007E}, // Basic Latin without controls
	{0x00A0, 0x00FF}, // Latin-1 Supplement without controls
	{0x0100, 0x017F}, // Latin Extended-A
}

// --- Tests -----------------------------------------------------------------

func (env *LookupTestEnviron) TestHeightVal() {
	env.Equal(14, monobitmap.Size14.Val())
	env.Equal(32, monobitmap.Size32.Val())
	env.Equal(64, monobitmap.Size64.Val())
}

func (env *LookupTestEnviron) TestDefaultBuildHasAllTables() {
	for _, w := range allWeights {
		for _, h := range allHeights {
			env.True(monobitmap.Compiled(w, h),
				"expected tables for %v at %dpx in a default build", w, h.Val())
		}
	}
}

func (env *LookupTestEnviron) TestDeterminism() {
	a, ok := monobitmap.Raster('A', monobitmap.Regular, monobitmap.Size16)
	env.Require().True(ok)
	b, ok := monobitmap.Raster('A', monobitmap.Regular, monobitmap.Size16)
	env.Require().True(ok)
	env.Equal(a.Bytes(), b.Bytes(), "repeated lookups must be byte-identical")
}

func (env *LookupTestEnviron) TestDimensionInvariant() {
	for _, w := range allWeights {
		for _, h := range allHeights {
			width := monobitmap.RasterWidth(w, h)
			env.Require().Greater(width, 0)
			g, ok := monobitmap.Raster('x', w, h)
			env.Require().True(ok)
			env.Equal(h.Val(), g.Height())
			env.Equal(width, g.Width())
			env.Equal(h.Val()*width, len(g.Bytes()),
				"raster of %v/%dpx has wrong byte count", w, h.Val())
			for y := 0; y < g.Height(); y++ {
				env.Require().Len(g.Row(y), width)
			}
		}
	}
}

func (env *LookupTestEnviron) TestMonospaceInvariant() {
	for _, w := range allWeights {
		for _, h := range allHeights {
			width := monobitmap.RasterWidth(w, h)
			for _, c := range "iW .§ÄĀſ" {
				g, ok := monobitmap.Raster(c, w, h)
				env.Require().True(ok, "expected %#U to be covered", c)
				env.Equal(width, g.Width(), "%#U deviates from monospace width", c)
			}
		}
	}
}

func (env *LookupTestEnviron) TestCoverageCompleteness() {
	for _, w := range allWeights {
		for _, h := range allHeights {
			for _, iv := range compiledIntervals {
				for c := iv[0]; c <= iv[1]; c++ {
					_, ok := monobitmap.Raster(c, w, h)
					env.Require().True(ok, "%#U missing for %v at %dpx", c, w, h.Val())
				}
			}
		}
	}
}

func (env *LookupTestEnviron) TestAbsenceOutsideRanges() {
	for _, c := range []rune{0x0000, 0x0019, 0x007F, 0x009F, 0x0180, '€', 0xE000} {
		_, ok := monobitmap.Raster(c, monobitmap.Regular, monobitmap.Size16)
		env.False(ok, "expected %#U to be reported as uncovered", c)
	}
}

func (env *LookupTestEnviron) TestRastersCarryInk() {
	g, ok := monobitmap.Raster('A', monobitmap.Regular, monobitmap.Size14)
	env.Require().True(ok)
	ink := 0
	for _, v := range g.Bytes() {
		if v > 0 {
			ink++
		}
	}
	env.Greater(ink, 0, "raster for 'A' is blank, table data looks corrupted")
	//
	g, ok = monobitmap.Raster(' ', monobitmap.Regular, monobitmap.Size14)
	env.Require().True(ok)
	for _, v := range g.Bytes() {
		env.Require().EqualValues(0, v, "space raster must be blank")
	}
}

func (env *LookupTestEnviron) TestBaseline() {
	for _, w := range allWeights {
		for _, h := range allHeights {
			baseline := monobitmap.Baseline(w, h)
			env.Greater(baseline, 0)
			env.Less(baseline, h.Val())
		}
	}
}

func (env *LookupTestEnviron) TestLookupScenario() {
	width := monobitmap.RasterWidth(monobitmap.Regular, monobitmap.Size14)
	g, ok := monobitmap.Raster('A', monobitmap.Regular, monobitmap.Size14)
	env.Require().True(ok)
	env.Equal(14, g.Height())
	for y := 0; y < g.Height(); y++ {
		env.Require().Len(g.Row(y), width)
	}
	env.T().Logf("regular 14px rasters are %d px wide", width)
}

func (env *LookupTestEnviron) TestUnknownVariants() {
	_, ok := monobitmap.Raster('A', monobitmap.Weight(17), monobitmap.Size14)
	env.False(ok)
	_, ok = monobitmap.Raster('A', monobitmap.Regular, monobitmap.Height(15))
	env.False(ok)
	env.Equal(0, monobitmap.RasterWidth(monobitmap.Regular, monobitmap.Height(15)))
	env.False(monobitmap.Compiled(monobitmap.Weight(-1), monobitmap.Size14))
}
