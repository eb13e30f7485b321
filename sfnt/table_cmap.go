/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// Only the header and the encoding records are decoded; subtable bodies are
// skipped by the dispatcher. Character codes with no glyph map to glyph 0
// (.notdef) by convention.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	encodingRecords []encodingRecord // len == numTables
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

func (t *cmapTable) Tag() string { return "cmap" }

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	t := &cmapTable{}
	var numTables uint16
	err := r.read(&t.version, &numTables)
	if err != nil {
		return nil, err
	}

	t.encodingRecords = make([]encodingRecord, 0, numTables)
	for i := 0; i < int(numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, err
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}

	return t, nil
}
