/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"slices"
	"strings"
)

// Point is one outline point in font design units. Coordinates are
// absolute, accumulated from the deltas stored on disk.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// Glyph is the decoded outline of one glyph. EndPoints holds the index of
// the last point of each contour, in increasing order; Points is the flat
// point list across all contours.
//
// Composite marks a glyph whose component references were not decoded:
// component resolution is not implemented, so the outline is a copy of
// glyph 0 instead. Callers needing exact fidelity must check this flag.
type Glyph struct {
	NumContours int16
	XMin, YMin  int16
	XMax, YMax  int16
	EndPoints   []uint16
	Points      []Point
	Composite   bool
}

// glyfTable represents the Glyph Data table (glyf), one decoded outline per
// glyph index. The table has no header of its own: the loca table locates
// each glyph's data block, which is why loca must be resolved first.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
type glyfTable struct {
	glyphs []*Glyph
}

func (t *glyfTable) Tag() string { return "glyf" }

// simpleGlyphFlag represents a flag data representation of a point in a simple glyph.
type simpleGlyphFlag uint8

const (
	onCurvePoint simpleGlyphFlag = (1 << iota)
	xShortVector
	yShortVector
	repeatFlag
	xIsSameOrPositiveVector
	yIsSameOrPositiveVector
	overlapSimple
	reserved
)

func (f simpleGlyphFlag) String() string {
	var flags []string
	if f&onCurvePoint != 0 {
		flags = append(flags, "onCurvePoint")
	}
	if f&xShortVector != 0 {
		flags = append(flags, "xShortVector")
	}
	if f&yShortVector != 0 {
		flags = append(flags, "yShortVector")
	}
	if f&repeatFlag != 0 {
		flags = append(flags, "repeatFlag")
	}
	if f&xIsSameOrPositiveVector != 0 {
		flags = append(flags, "xIsSameOrPositiveVector")
	}
	if f&yIsSameOrPositiveVector != 0 {
		flags = append(flags, "yIsSameOrPositiveVector")
	}
	if f&overlapSimple != 0 {
		flags = append(flags, "overlapSimple")
	}
	if f&reserved != 0 {
		flags = append(flags, "reserved")
	}
	return strings.Join(flags, "|")
}

func (f *font) parseGlyf(r *byteReader) (*glyfTable, error) {
	if f.loca == nil {
		return nil, &MissingTableError{Missing: makeTag("loca"), Parsing: makeTag("glyf")}
	}

	numGlyphs := f.loca.numGlyphs()
	tracer().Debugf("parsing %d glyph outlines", numGlyphs)

	// Glyph data offsets are relative to the start of the glyf table; the
	// tracking reader gives the position within it.
	tk := newTrackingReader(r)
	gr := newByteReader(tk)

	t := &glyfTable{
		glyphs: make([]*Glyph, 0, numGlyphs),
	}

	for i := 0; i < numGlyphs; i++ {
		offset, length := f.loca.index(GlyphIndex(i))

		// A zero-length range is an empty glyph; nothing is read for it.
		if length == 0 {
			t.glyphs = append(t.glyphs, &Glyph{})
			continue
		}

		if pos := tk.TotalRead(); pos < offset {
			if err := gr.Skip(offset - pos); err != nil {
				return nil, err
			}
		}

		g, err := t.parseGlyph(gr, length)
		if err != nil {
			return nil, err
		}
		t.glyphs = append(t.glyphs, g)
	}

	return t, nil
}

// parseGlyph decodes one glyph data block of `length` bytes.
func (t *glyfTable) parseGlyph(r *byteReader, length int64) (*Glyph, error) {
	g := &Glyph{}
	err := r.read(&g.NumContours, &g.XMin, &g.YMin, &g.XMax, &g.YMax)
	if err != nil {
		return nil, err
	}

	if g.NumContours < 0 {
		// Composite glyph. Component decoding is not implemented: skip the
		// component data and substitute the outline of glyph 0, marked so
		// the substitution stays detectable.
		tracer().Infof("substituting glyph 0 outline for composite glyph (%d contours)",
			g.NumContours)
		if err := r.Skip(length - 10); err != nil {
			return nil, err
		}
		g.Composite = true
		if len(t.glyphs) > 0 {
			g.EndPoints = slices.Clone(t.glyphs[0].EndPoints)
			g.Points = slices.Clone(t.glyphs[0].Points)
		}
		return g, nil
	}

	if g.NumContours == 0 {
		return g, nil
	}

	err = r.readSlice(&g.EndPoints, int(g.NumContours))
	if err != nil {
		return nil, err
	}

	// Instruction bytecode is carried but never interpreted.
	var instructionLength uint16
	err = r.read(&instructionLength)
	if err != nil {
		return nil, err
	}
	err = r.Skip(int64(instructionLength))
	if err != nil {
		return nil, err
	}

	// total number of points (all contours).
	numPoints := int(g.EndPoints[g.NumContours-1]) + 1

	flags, err := readGlyphFlags(r, numPoints)
	if err != nil {
		return nil, err
	}

	g.Points = make([]Point, numPoints)
	for i, flag := range flags {
		g.Points[i].OnCurve = flag&onCurvePoint != 0
	}

	// x then y deltas, each accumulated into absolute coordinates.
	var x int16
	for i, flag := range flags {
		delta, err := readCoordinateDelta(r, flag&xShortVector != 0, flag&xIsSameOrPositiveVector != 0)
		if err != nil {
			return nil, err
		}
		x += delta
		g.Points[i].X = x
	}

	var y int16
	for i, flag := range flags {
		delta, err := readCoordinateDelta(r, flag&yShortVector != 0, flag&yIsSameOrPositiveVector != 0)
		if err != nil {
			return nil, err
		}
		y += delta
		g.Points[i].Y = y
	}

	return g, nil
}

// readGlyphFlags reads and expands the run-length encoded flag stream: a
// flag with the repeat bit set is followed by one byte giving how many
// extra times the flag applies.
func readGlyphFlags(r *byteReader, numPoints int) ([]simpleGlyphFlag, error) {
	flags := make([]simpleGlyphFlag, 0, numPoints)
	for len(flags) < numPoints {
		var b uint8
		err := r.read(&b)
		if err != nil {
			return nil, err
		}
		flag := simpleGlyphFlag(b)
		flags = append(flags, flag)

		if flag&repeatFlag != 0 {
			var repeats uint8
			err := r.read(&repeats)
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(repeats); i++ {
				flags = append(flags, flag)
			}
		}
	}
	if len(flags) != numPoints {
		return nil, newParsingError("glyf::flags", numPoints, len(flags))
	}
	return flags, nil
}

// readCoordinateDelta reads one coordinate delta. Short deltas are a single
// unsigned byte whose sign comes from the same/positive bit; long deltas
// are a signed 16-bit value, except that same/positive set means the
// coordinate repeats the previous point exactly (delta 0).
func readCoordinateDelta(r *byteReader, short, samePositive bool) (int16, error) {
	if short {
		var v uint8
		err := r.read(&v)
		if err != nil {
			return 0, err
		}
		if samePositive {
			return int16(v), nil
		}
		return -int16(v), nil
	}
	if samePositive {
		return 0, nil
	}
	var v int16
	err := r.read(&v)
	if err != nil {
		return 0, err
	}
	return v, nil
}
