package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/text/unicode/runenames"
)

// Layout of a generated table file. One such file, together with its .bin
// raster asset, is written per (weight, raster height, codepoint range).
const tableFileTemplate = `// Code generated by monogen. DO NOT EDIT.
// Source: DejaVu Sans Mono, Bitstream Vera license (https://dejavu-fonts.github.io/).

//go:build !monobitmap_custom || (monobitmap_{{.Package}} && monobitmap_size{{.Height}} && monobitmap_{{.RangeTag}})

package {{.Package}}

import (
	_ "embed"

	"github.com/npillmayer/monobitmap/internal/glyphstore"
)

// {{.Count}} glyphs, {{.LowU}} {{.LowName}} … {{.HighU}} {{.HighName}},
// {{.Width}}×{{.Height}} px per glyph, baseline at row {{.Ascent}}.
//
//go:embed {{.Base}}.bin
var {{.Var}} []byte

func init() {
	glyphstore.Install(glyphstore.{{.WeightConst}}, {{.Height}}, {{.Width}}, {{.Ascent}}, {{.LowHex}}, {{.HighHex}}, {{.Var}})
}
`

var tableTmpl = template.Must(template.New("table").Parse(tableFileTemplate))

type tableFileData struct {
	Package         string // also the weight build tag suffix
	WeightConst     string
	RangeTag        string
	Base            string // file name without extension
	Var             string
	Height, Width   int
	Ascent, Count   int
	LowU, HighU     string // "U+0020"
	LowHex, HighHex string // "0x0020"
	LowName         string
	HighName        string
}

// emitTables writes the .bin asset and the registration file for every
// configured codepoint range of one (weight, raster height) table set.
func emitTables(outDir, pkg, weightConst string, st *sizedTables) error {
	dir := filepath.Join(outDir, pkg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, rng := range unicodeRanges {
		var bin bytes.Buffer
		for c := rng.low; c <= rng.high; c++ {
			block, ok := st.blocks.Get(c)
			if !ok {
				return fmt.Errorf("no raster block for %#U", c)
			}
			bin.Write(block.([]byte))
		}
		base := fmt.Sprintf("size%d_%s", st.height, rng.tag)
		if err := os.WriteFile(filepath.Join(dir, base+".bin"), bin.Bytes(), 0644); err != nil {
			return err
		}
		data := tableFileData{
			Package:     pkg,
			WeightConst: weightConst,
			RangeTag:    rng.tag,
			Base:        base,
			Var:         fmt.Sprintf("size%d%s", st.height, rng.name),
			Height:      st.height,
			Width:       st.width,
			Ascent:      st.ascent,
			Count:       int(rng.high - rng.low + 1),
			LowU:        fmt.Sprintf("U+%04X", rng.low),
			HighU:       fmt.Sprintf("U+%04X", rng.high),
			LowHex:      fmt.Sprintf("0x%04X", rng.low),
			HighHex:     fmt.Sprintf("0x%04X", rng.high),
			LowName:     runenames.Name(rng.low),
			HighName:    runenames.Name(rng.high),
		}
		file, err := os.Create(filepath.Join(dir, base+".go"))
		if err != nil {
			return err
		}
		err = tableTmpl.Execute(file, data)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		tracer().Debugf("wrote %s/%s (%d bytes of raster data)", pkg, base, bin.Len())
	}
	return nil
}
