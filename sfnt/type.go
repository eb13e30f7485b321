/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"encoding/binary"
	"strings"
)

// GlyphName is a PostScript glyph name, e.g. from the standard Macintosh set.
type GlyphName string

// GlyphIndex or Glyph ID (GID) identifies one glyph within a font.
type GlyphIndex uint16

// Value types of the SFNT format, per
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff.
// All are stored big-endian on disk. Fixed is a 16.16 signed fixed-point
// number, FWORD/UFWORD are design-unit quantities, F2DOT14 is 2.14
// fixed-point, LONGDATETIME counts seconds since 1904-01-01 00:00, and a
// Tag is four ASCII bytes naming a table.

type fixed int32
type fword int16
type ufword uint16
type f2dot14 int16
type longdatetime int64
type tag [4]uint8
type offset16 uint16
type offset32 uint32

// String returns the tag characters with trailing padding removed.
func (t tag) String() string {
	return strings.TrimSpace(string(t[:]))
}

// Parts returns the integral and fractional portions of `f`.
func (f fixed) Parts() (uint16, uint16) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(f))
	return binary.BigEndian.Uint16(b[0:2]), binary.BigEndian.Uint16(b[2:4])
}

// Float64 returns `f` as a float64.
func (f fixed) Float64() float64 {
	integral, fraction := f.Parts()
	return float64(int16(integral)) + float64(fraction)/65536.0
}

// makeTag builds a tag from up to four characters of `s`, padding short
// names with spaces the way the format stores them ("cvt " and friends).
func makeTag(s string) tag {
	bb := []byte(s)
	if len(bb) > 4 {
		bb = bb[:4]
	}
	for len(bb) < 4 {
		bb = append(bb, ' ')
	}

	var t tag
	copy(t[:], bb)
	return t
}
