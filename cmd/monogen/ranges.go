package main

// A unicodeRange is one contiguous codepoint interval that gets its own
// table file per weight and raster height. Intervals are disjoint and
// sorted by lower bound; control characters are left out on purpose.
type unicodeRange struct {
	tag       string // build tag suffix, also used in file names
	name      string // identifier part for the generated variable
	low, high rune
}

var unicodeRanges = []unicodeRange{
	{"basiclatin", "BasicLatin", 0x0020, 0x007E},
	{"latin1", "Latin1", 0x00A0, 0x00FF},
	{"latinexta", "LatinExtA", 0x0100, 0x017F},
}
