/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"io"
	"os"
)

// Font wraps font for outside access. A Font is immutable once parsed and
// retains no reference to the byte source it was read from.
type Font struct {
	*font
}

// Parse parses the truetype font from `r` and returns a new Font. The
// source is consumed in a single sequential pass; it does not need to
// support seeking.
func Parse(r io.Reader) (*Font, error) {
	fileCk := newChecksumReader(r)
	br := newByteReader(fileCk)

	fnt, err := parseFont(br, fileCk)
	if err != nil {
		return nil, err
	}

	return &Font{font: fnt}, nil
}

// ParseFile parses the truetype font from file given by path.
func ParseFile(filePath string) (*Font, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return Parse(f)
}

// NameRecord returns the value of the first name record with type `rt`.
func (f *Font) NameRecord(rt RecordType) (string, bool) {
	if f.name == nil {
		return "", false
	}
	return f.name.record(rt)
}

// ID returns the font's unique identifier name record.
func (f *Font) ID() (string, bool) {
	return f.NameRecord(RecordUniqueIdentifier)
}

// UnitsPerEm returns the number of font design units per em square. A font
// without a head table never leaves the parser, so its absence here is a
// caller contract violation and panics.
func (f *Font) UnitsPerEm() uint16 {
	if f.head == nil {
		panic("sfnt: font has no head table")
	}
	return f.head.unitsPerEm
}

// NumGlyphs returns the glyph count declared by maxp.
func (f *Font) NumGlyphs() int {
	if f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// Glyph returns the decoded outline of glyph `gid`.
func (f *Font) Glyph(gid GlyphIndex) (*Glyph, bool) {
	if f.glyf == nil || int(gid) >= len(f.glyf.glyphs) {
		return nil, false
	}
	return f.glyf.glyphs[gid], true
}

// GlyphName returns the PostScript name of glyph `gid` from the post table.
func (f *Font) GlyphName(gid GlyphIndex) (GlyphName, bool) {
	if f.post == nil {
		return "", false
	}
	return f.post.glyphName(gid)
}

// HMetric returns the horizontal advance width and left side bearing of
// glyph `gid`.
func (f *Font) HMetric(gid GlyphIndex) (advanceWidth uint16, lsb int16, ok bool) {
	if f.hmtx == nil || int(gid) >= len(f.hmtx.metrics) {
		return 0, 0, false
	}
	m := f.hmtx.metrics[gid]
	return m.advanceWidth, m.lsb, true
}

// Tables returns the parsed tables in the order they were resolved, which
// is ascending file-offset order.
func (f *Font) Tables() []Table {
	return f.tables
}
