/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyfFont(offsets ...uint32) *font {
	return &font{loca: &locaTable{offsets: offsets}}
}

func TestParseGlyphDeltaDecoding(t *testing.T) {
	// One contour, four points exercising every delta encoding:
	//   p0: short positive x and y            -> (10, 20)
	//   p1: short negative x, repeated y      -> (5, 20)
	//   p2: long x and y                      -> (-295, 420)
	//   p3: repeated x, short positive y      -> (-295, 427)
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(int16(1), int16(-295), int16(20), int16(10), int16(427))
	require.NoError(t, err)
	err = w.write(uint16(3), uint16(0)) // endPtsOfContours, instructionLength
	require.NoError(t, err)
	err = w.write(uint8(0x37), uint8(0x22), uint8(0x01), uint8(0x34))
	require.NoError(t, err)
	err = w.write(uint8(10), uint8(5), int16(-300)) // x deltas
	require.NoError(t, err)
	err = w.write(uint8(20), int16(400), uint8(7)) // y deltas
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, uint32(len(data)))
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Len(t, glyf.glyphs, 1)

	want := &Glyph{
		NumContours: 1,
		XMin:        -295,
		YMin:        20,
		XMax:        10,
		YMax:        427,
		EndPoints:   []uint16{3},
		Points: []Point{
			{X: 10, Y: 20, OnCurve: true},
			{X: 5, Y: 20, OnCurve: false},
			{X: -295, Y: 420, OnCurve: true},
			{X: -295, Y: 427, OnCurve: false},
		},
	}
	if diff := cmp.Diff(want, glyf.glyphs[0]); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGlyphSkipsInstructions(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(int16(1), int16(0), int16(0), int16(10), int16(10))
	require.NoError(t, err)
	err = w.write(uint16(0), uint16(3)) // one point, three instruction bytes
	require.NoError(t, err)
	err = w.write(uint8(0xB0), uint8(0x01), uint8(0x00)) // PUSHB[0] 1, SVTCA[0]
	require.NoError(t, err)
	err = w.write(uint8(0x37), uint8(10), uint8(10)) // flag, x, y
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, uint32(len(data)))
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)

	require.Len(t, glyf.glyphs[0].Points, 1)
	assert.Equal(t, Point{X: 10, Y: 10, OnCurve: true}, glyf.glyphs[0].Points[0])
}

func TestParseGlyphFlagRepeat(t *testing.T) {
	// A single flag byte with the repeat bit covers all four points.
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(int16(1), int16(0), int16(0), int16(4), int16(4))
	require.NoError(t, err)
	err = w.write(uint16(3), uint16(0))
	require.NoError(t, err)
	err = w.write(uint8(0x3F), uint8(3)) // repeat three more times
	require.NoError(t, err)
	err = w.write(uint8(1), uint8(1), uint8(1), uint8(1)) // x deltas
	require.NoError(t, err)
	err = w.write(uint8(1), uint8(1), uint8(1), uint8(1)) // y deltas
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, uint32(len(data)))
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)

	g := glyf.glyphs[0]
	require.Len(t, g.Points, 4)
	assert.Equal(t, Point{X: 4, Y: 4, OnCurve: true}, g.Points[3])
}

func TestParseGlyphFlagOverExpansion(t *testing.T) {
	// Two points declared, but the repeat count expands to five flags.
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(int16(1), int16(0), int16(0), int16(2), int16(2))
	require.NoError(t, err)
	err = w.write(uint16(1), uint16(0))
	require.NoError(t, err)
	err = w.write(uint8(0x3F), uint8(4))
	require.NoError(t, err)
	err = w.write(uint8(1), uint8(1), uint8(1), uint8(1)) // padding past the flags
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, uint32(len(data)))
	_, err = f.parseGlyf(newByteReader(bytes.NewReader(data)))
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "glyf::flags", perr.Variable)
}

func TestParseGlyphEmpty(t *testing.T) {
	// A zero-length loca range yields an empty glyph without touching the
	// reader: the source here has no bytes at all.
	f := glyfFont(0, 0, 0)
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(nil)))
	require.NoError(t, err)

	require.Len(t, glyf.glyphs, 2)
	for _, g := range glyf.glyphs {
		assert.Equal(t, int16(0), g.NumContours)
		assert.Empty(t, g.Points)
		assert.False(t, g.Composite)
	}
}

func TestParseGlyphCompositeSubstitution(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)

	// Glyph 0: a two-point simple glyph.
	err := w.write(int16(1), int16(0), int16(0), int16(8), int16(8))
	require.NoError(t, err)
	err = w.write(uint16(1), uint16(0))
	require.NoError(t, err)
	err = w.write(uint8(0x37), uint8(0x37))
	require.NoError(t, err)
	err = w.write(uint8(3), uint8(5), uint8(4), uint8(4))
	require.NoError(t, err)
	simpleLen := uint32(10 + 4 + 2 + 4)

	// Glyph 1: composite, one component record (flags, glyphIndex, args).
	err = w.write(int16(-1), int16(0), int16(0), int16(8), int16(8))
	require.NoError(t, err)
	err = w.write(uint16(0x0002), uint16(0), int16(0), int16(0))
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, simpleLen, uint32(len(data)))
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Len(t, glyf.glyphs, 2)

	// The composite's component data is skipped and glyph 0's outline is
	// substituted, with the substitution marked.
	comp := glyf.glyphs[1]
	assert.True(t, comp.Composite)
	assert.Equal(t, int16(-1), comp.NumContours)
	assert.Equal(t, glyf.glyphs[0].EndPoints, comp.EndPoints)
	assert.Equal(t, glyf.glyphs[0].Points, comp.Points)
	assert.False(t, glyf.glyphs[0].Composite)

	// The clone is deep: mutating the substitute leaves glyph 0 intact.
	comp.Points[0].X = 99
	assert.NotEqual(t, glyf.glyphs[0].Points[0].X, comp.Points[0].X)
}

func TestParseGlyfSkipsPaddingBetweenGlyphs(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(int16(1), int16(0), int16(0), int16(8), int16(8))
	require.NoError(t, err)
	err = w.write(uint16(0), uint16(0), uint8(0x37), uint8(8), uint8(8))
	require.NoError(t, err)
	firstLen := uint32(10 + 2 + 2 + 1 + 1 + 1)

	// Glyph 0's loca range covers four alignment padding bytes its outline
	// never consumes; the parser must skip to glyph 1's declared offset.
	err = w.write(uint8(0), uint8(0), uint8(0), uint8(0))
	require.NoError(t, err)

	err = w.write(int16(0), int16(0), int16(0), int16(0), int16(0))
	require.NoError(t, err)
	require.NoError(t, w.flush())
	data := buf.Bytes()

	f := glyfFont(0, firstLen+4, firstLen+4+10)
	glyf, err := f.parseGlyf(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)

	require.Len(t, glyf.glyphs, 2)
	assert.Len(t, glyf.glyphs[0].Points, 1)
	assert.Equal(t, int16(0), glyf.glyphs[1].NumContours)
	assert.Empty(t, glyf.glyphs[1].Points)
}

func TestParseGlyfMissingLoca(t *testing.T) {
	f := &font{}
	_, err := f.parseGlyf(newByteReader(bytes.NewReader(nil)))
	var merr *MissingTableError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "loca", merr.Missing.String())
	assert.Equal(t, "glyf", merr.Parsing.String())
}

func TestSimpleGlyphFlagString(t *testing.T) {
	assert.Equal(t, "onCurvePoint|repeatFlag", (onCurvePoint | repeatFlag).String())
	assert.Equal(t, "", simpleGlyphFlag(0).String())
}
