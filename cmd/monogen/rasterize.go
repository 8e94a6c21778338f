package main

import (
	"bytes"
	"fmt"
	"image"
	"math"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sourceFont is a parsed input font, validated to be monospaced.
type sourceFont struct {
	ttf  []byte
	sfnt *sfnt.Font
}

func parseFont(ttf []byte) (*sourceFont, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	src := &sourceFont{ttf: ttf, sfnt: f}
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDFull)
	if err == nil {
		tracer().Infof("loaded font %q", name)
	}
	if err := checkMonospace(ttf); err != nil {
		return nil, err
	}
	return src, nil
}

// checkMonospace shapes a probe string with HarfBuzz and verifies that every
// glyph gets the same advance. Feeding a proportional font to the generator
// would silently break the monospace invariant of the tables, so this is a
// hard error.
func checkMonospace(ttf []byte) error {
	face, err := hbtt.Parse(bytes.NewReader(ttf), true)
	if err != nil {
		return fmt.Errorf("cannot parse font for shaping: %w", err)
	}
	hbFont := hb.NewFont(face)
	buf := hb.NewBuffer()
	// Shape will not guess segment properties for us; without a direction
	// every advance comes back as 0.
	buf.Props = hb.SegmentProperties{
		Direction: hb.LeftToRight,
		Script:    hblang.Latin,
		Language:  hblang.DefaultLanguage(),
	}
	probe := []rune("il.WM@")
	buf.AddRunes(probe, 0, len(probe))
	buf.Shape(hbFont, nil)
	if len(buf.Pos) == 0 {
		return fmt.Errorf("shaping the probe string produced no glyphs")
	}
	adv := buf.Pos[0].XAdvance
	for i, pos := range buf.Pos {
		if pos.XAdvance == adv {
			continue
		}
		c := probe[0]
		if cl := buf.Info[i].Cluster; cl >= 0 && cl < len(probe) {
			c = probe[cl]
		}
		return fmt.Errorf("font is not monospaced: advance of %q differs (%d vs %d)",
			c, pos.XAdvance, adv)
	}
	return nil
}

// --- Rasterization ---------------------------------------------------------

// sizedTables holds the rasterized glyph blocks for one weight at one
// raster height, keyed and ordered by codepoint.
type sizedTables struct {
	height, width int
	ascent        int
	blocks        *treemap.Map // rune → []byte, height×width intensity bytes
}

// rasterizeSize renders every codepoint of every configured range into a
// block of height×width intensity bytes. The em size is chosen so that
// ascender plus descender fill the raster height; the glyph width follows
// from the font's fixed advance.
func rasterizeSize(src *sourceFont, height int) (*sizedTables, error) {
	var buf sfnt.Buffer
	upem := float64(src.sfnt.UnitsPerEm())
	m, err := src.sfnt.Metrics(&buf, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		return nil, err
	}
	extent := float64(m.Ascent+m.Descent) / 64 // font units, descent is positive
	if extent <= 0 {
		return nil, fmt.Errorf("font has degenerate vertical metrics")
	}
	face, err := opentype.NewFace(src.sfnt, &opentype.FaceOptions{
		Size:    float64(height) * upem / extent,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	fm := face.Metrics()
	ascent := fm.Ascent.Round()
	if ascent <= 0 || ascent > height {
		return nil, fmt.Errorf("baseline %d outside %dpx raster", ascent, height)
	}
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no glyph for 'M'")
	}
	st := &sizedTables{
		height: height,
		width:  adv.Round(),
		ascent: ascent,
		blocks: treemap.NewWith(utils.RuneComparator),
	}
	tracer().Debugf("%dpx rasters are %d×%d, baseline at row %d",
		height, st.height, st.width, st.ascent)
	for _, rng := range unicodeRanges {
		for c := rng.low; c <= rng.high; c++ {
			if gid, err := src.sfnt.GlyphIndex(&buf, c); err != nil || gid == 0 {
				return nil, fmt.Errorf("font has no glyph for %#U", c)
			}
			st.blocks.Put(c, renderGlyph(face, c, st.width, height, ascent))
		}
	}
	return st, nil
}

// renderGlyph draws one glyph onto a black height×width canvas and returns
// the resulting intensity bytes. Whatever sticks out of the cell is clipped.
func renderGlyph(face font.Face, c rune, width, height, ascent int) []byte {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(string(c))
	return dst.Pix
}

// --- Light weight derivation -----------------------------------------------

// DejaVu Sans Mono has no light face. We derive one from the regular
// rasters by pushing anti-aliased coverage through a thinning curve,
// which narrows the apparent stem width.
var lightCurve = func() (lut [256]byte) {
	for i := range lut {
		v := float64(i) / 255
		lut[i] = byte(math.Floor(255*math.Pow(v, 1.5) + 0.5))
	}
	return
}()

// thinned returns a copy of the tables with the light intensity curve
// applied to every block.
func (st *sizedTables) thinned() *sizedTables {
	out := &sizedTables{
		height: st.height,
		width:  st.width,
		ascent: st.ascent,
		blocks: treemap.NewWith(utils.RuneComparator),
	}
	it := st.blocks.Iterator()
	for it.Next() {
		src := it.Value().([]byte)
		block := make([]byte, len(src))
		for i, v := range src {
			block[i] = lightCurve[v]
		}
		out.blocks.Put(it.Key(), block)
	}
	return out
}
