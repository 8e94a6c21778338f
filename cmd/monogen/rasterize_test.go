package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// withRanges lets a test run the generator over a reduced range set.
func withRanges(t *testing.T, rs []unicodeRange) {
	old := unicodeRanges
	unicodeRanges = rs
	t.Cleanup(func() { unicodeRanges = old })
}

func TestParseFontAcceptsMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.gen")
	defer teardown()
	//
	src, err := parseFont(gomono.TTF)
	require.NoError(t, err)
	require.NotNil(t, src.sfnt)
}

func TestCheckMonospaceRejectsProportional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.gen")
	defer teardown()
	//
	err := checkMonospace(goregular.TTF)
	require.Error(t, err, "a proportional font must be rejected")
	require.Contains(t, err.Error(), "not monospaced")
	require.NoError(t, checkMonospace(gomono.TTF),
		"a monospaced font must pass the same check")
}

func TestRasterizeSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.gen")
	defer teardown()
	withRanges(t, []unicodeRange{{"basiclatin", "BasicLatin", 0x0020, 0x007E}})
	//
	src, err := parseFont(gomono.TTF)
	require.NoError(t, err)
	st, err := rasterizeSize(src, 16)
	require.NoError(t, err)
	require.Equal(t, 16, st.height)
	require.Greater(t, st.width, 0)
	require.Less(t, st.width, 16)
	require.Greater(t, st.ascent, 0)
	require.LessOrEqual(t, st.ascent, 16)
	require.Equal(t, 95, st.blocks.Size())
	//
	blockA, ok := st.blocks.Get('A')
	require.True(t, ok)
	require.Len(t, blockA.([]byte), 16*st.width)
	ink := 0
	for _, v := range blockA.([]byte) {
		if v > 0 {
			ink++
		}
	}
	require.Greater(t, ink, 0, "rasterized 'A' should carry ink")
	//
	blockSpace, ok := st.blocks.Get(' ')
	require.True(t, ok)
	for _, v := range blockSpace.([]byte) {
		require.EqualValues(t, 0, v, "space must rasterize blank")
	}
}

func TestThinnedReducesIntensity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.gen")
	defer teardown()
	withRanges(t, []unicodeRange{{"basiclatin", "BasicLatin", 'A', 'Z'}})
	//
	src, err := parseFont(gomono.TTF)
	require.NoError(t, err)
	st, err := rasterizeSize(src, 24)
	require.NoError(t, err)
	light := st.thinned()
	require.Equal(t, st.blocks.Size(), light.blocks.Size())
	regular, _ := st.blocks.Get('H')
	thin, _ := light.blocks.Get('H')
	sum := func(pix []byte) (s int) {
		for _, v := range pix {
			s += int(v)
		}
		return
	}
	require.Less(t, sum(thin.([]byte)), sum(regular.([]byte)),
		"light rasters should carry less ink than regular ones")
	require.EqualValues(t, 255, lightCurve[255], "full coverage must stay full")
	require.EqualValues(t, 0, lightCurve[0])
}

func TestEmitTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "monobitmap.gen")
	defer teardown()
	withRanges(t, []unicodeRange{{"basiclatin", "BasicLatin", 0x0020, 0x007E}})
	//
	src, err := parseFont(gomono.TTF)
	require.NoError(t, err)
	st, err := rasterizeSize(src, 14)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, emitTables(dir, "regular", "Regular", st))
	//
	bin, err := os.ReadFile(filepath.Join(dir, "regular", "size14_basiclatin.bin"))
	require.NoError(t, err)
	require.Len(t, bin, 95*14*st.width)
	//
	code, err := os.ReadFile(filepath.Join(dir, "regular", "size14_basiclatin.go"))
	require.NoError(t, err)
	text := string(code)
	require.True(t, strings.HasPrefix(text, "// Code generated by monogen. DO NOT EDIT."))
	require.Contains(t, text,
		"//go:build !monobitmap_custom || (monobitmap_regular && monobitmap_size14 && monobitmap_basiclatin)")
	require.Contains(t, text, "//go:embed size14_basiclatin.bin")
	require.Contains(t, text, "glyphstore.Install(glyphstore.Regular, 14,")
	require.Contains(t, text, "U+0020 SPACE")
	require.Contains(t, text, "U+007E TILDE")
}
