/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "fmt"

// postTable represents a PostScript (post) table.
// This table contains additional information needed for use on PostScript
// printers. Includes FontInfo dictionary entries and the PostScript names
// of all glyphs.
//
//   - version 1.0 is used when the font file contains exactly the 258 glyphs
//     of the standard Macintosh TrueType font file, in standard order.
//   - version 2.0 is used for fonts that contain some glyphs not in the
//     standard set or have different ordering.
//   - version 2.5 can handle nonstandard ordering of the standard mac glyphs
//     via offsets.
//   - other versions do not contain post glyph name data.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
type postTable struct {
	// header (all versions).
	version            fixed
	italicAngle        fixed // in degrees.
	underlinePosition  fword
	underlineThickness fword
	isFixedPitch       uint32
	minMemType42       uint32
	maxMemType42       uint32
	minMemType1        uint32
	maxMemType1        uint32

	// version 2.0 and 2.5 (partly).
	numGlyphs      uint16   // should equal maxp.numGlyphs
	glyphNameIndex []uint16 // len = numGlyphs

	// version 2.5.
	offsets []int8 // len = numGlyphs

	// Processed data:
	glyphNames []GlyphName // glyphNames[GlyphIndex] -> GlyphName.
}

func (t *postTable) Tag() string { return "post" }

func (f *font) parsePost(r *byteReader) (*postTable, error) {
	if f.maxp == nil {
		return nil, &MissingTableError{Missing: makeTag("maxp"), Parsing: makeTag("post")}
	}

	t := &postTable{}
	err := r.read(&t.version, &t.italicAngle, &t.underlinePosition, &t.underlineThickness, &t.isFixedPitch)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.minMemType42, &t.maxMemType42, &t.minMemType1, &t.maxMemType1)
	if err != nil {
		return nil, err
	}

	switch uint32(t.version) {
	case 0x00010000: // 1.0
		// The standard 258 glyphs in standard order; no name data follows.
	case 0x00020000: // 2.0
		err = r.read(&t.numGlyphs)
		if err != nil {
			return nil, err
		}
		if t.numGlyphs != f.maxp.numGlyphs {
			return nil, newParsingError("post::numGlyphs", f.maxp.numGlyphs, t.numGlyphs)
		}
		err = r.readSlice(&t.glyphNameIndex, int(t.numGlyphs))
		if err != nil {
			return nil, err
		}

		newGlyphs := 0
		for _, ni := range t.glyphNameIndex {
			if ni >= 258 && ni <= 32767 {
				newGlyphs++
			}
		}

		// The font's own names follow as length-prefixed strings.
		names := make([]string, 0, newGlyphs)
		for i := 0; i < newGlyphs; i++ {
			var numChars uint8
			err = r.read(&numChars)
			if err != nil {
				return nil, err
			}
			var name []byte
			err = r.readBytes(&name, int(numChars))
			if err != nil {
				return nil, err
			}
			names = append(names, string(name))
		}

		t.glyphNames = make([]GlyphName, int(t.numGlyphs))
		for i := 0; i < int(t.numGlyphs); i++ {
			ni := t.glyphNameIndex[i]
			if ni < 258 {
				t.glyphNames[i] = macGlyphNames[ni]
			} else if ni <= 32767 {
				ni -= 258
				if int(ni) >= len(names) {
					return nil, newParsingError("post::glyphNameIndex",
						fmt.Sprintf("< %d", len(names)+258), t.glyphNameIndex[i])
				}
				t.glyphNames[i] = GlyphName(names[ni])
			}
		}

	case 0x00025000: // 2.5
		err = r.read(&t.numGlyphs)
		if err != nil {
			return nil, err
		}
		if t.numGlyphs != f.maxp.numGlyphs {
			return nil, newParsingError("post::numGlyphs", f.maxp.numGlyphs, t.numGlyphs)
		}
		err = r.readSlice(&t.offsets, int(t.numGlyphs))
		if err != nil {
			return nil, err
		}
		t.glyphNames = make([]GlyphName, int(t.numGlyphs))
		for i := 0; i < int(t.numGlyphs); i++ {
			nameIndex := i + 1 + int(t.offsets[i])
			if nameIndex < 0 || nameIndex > 257 {
				return nil, newParsingError("post::offsets", "[0,257]", nameIndex)
			}
			t.glyphNames[i] = macGlyphNames[nameIndex]
		}

	case 0x00030000: // 3.0
		tracer().Debugf("post version 3.0 - no postscript name data")
	default:
		tracer().Debugf("unsupported post version 0x%08X - no post data loaded", uint32(t.version))
	}

	return t, nil
}

// glyphName returns the PostScript name of glyph `gid`, when the post table
// carries name data for it.
func (t *postTable) glyphName(gid GlyphIndex) (GlyphName, bool) {
	if int(gid) >= len(t.glyphNames) {
		return "", false
	}
	name := t.glyphNames[gid]
	if name == "" {
		return "", false
	}
	return name, true
}
