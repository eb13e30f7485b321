/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "fmt"

// locaTable represents the Index to Location (loca) table: numGlyphs+1
// non-decreasing byte offsets into the glyf table. Adjacent offsets delimit
// one glyph's data block; the extra entry at the end sizes the last glyph.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
type locaTable struct {
	offsets []uint32
}

func (t *locaTable) Tag() string { return "loca" }

// numGlyphs returns the glyph count the offsets were sized from.
func (t *locaTable) numGlyphs() int {
	return len(t.offsets) - 1
}

// index returns the byte range of glyph `gid` relative to the beginning of
// the glyf table.
func (t *locaTable) index(gid GlyphIndex) (offset, length int64) {
	o1 := int64(t.offsets[gid])
	o2 := int64(t.offsets[gid+1])
	return o1, o2 - o1
}

func (f *font) parseLoca(r *byteReader) (*locaTable, error) {
	if f.head == nil {
		return nil, &MissingTableError{Missing: makeTag("head"), Parsing: makeTag("loca")}
	}
	if f.maxp == nil {
		return nil, &MissingTableError{Missing: makeTag("maxp"), Parsing: makeTag("loca")}
	}

	n := int(f.maxp.numGlyphs) + 1
	isShort := f.head.indexToLocFormat == 0

	t := &locaTable{
		offsets: make([]uint32, 0, n),
	}

	var prev uint32
	for i := 0; i < n; i++ {
		var offset uint32
		if isShort {
			// Short format stores offset/2.
			val, err := r.readOffset16()
			if err != nil {
				return nil, err
			}
			offset = 2 * uint32(val)
		} else {
			val, err := r.readOffset32()
			if err != nil {
				return nil, err
			}
			offset = uint32(val)
		}

		if offset < prev {
			return nil, newParsingError("loca",
				fmt.Sprintf("offset >= %d", prev), offset)
		}
		t.offsets = append(t.offsets, offset)
		prev = offset
	}

	return t, nil
}

func (f *font) writeLoca(w *byteWriter) error {
	if f.loca == nil || f.head == nil {
		return errNilReceiver
	}

	isShort := f.head.indexToLocFormat == 0
	for _, offset := range f.loca.offsets {
		var err error
		if isShort {
			err = w.write(offset16(offset / 2))
		} else {
			err = w.write(offset32(offset))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
