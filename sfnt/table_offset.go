/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "math/bits"

// offsetTable is the 12-byte file header: container version plus the
// directory size and its binary-search acceleration fields. The
// acceleration fields are fully determined by numTables, which makes them a
// cheap consistency check on the header.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// offsetTableGeometry derives searchRange, entrySelector and rangeShift
// from the table count: entrySelector = floor(log2(numTables)),
// searchRange = 2^entrySelector * 16, rangeShift = numTables*16 -
// searchRange. A zero table count yields all zeroes, so a zero-table file
// passes the geometry check and parses into an empty font.
func offsetTableGeometry(numTables uint16) (searchRange, entrySelector, rangeShift int) {
	if numTables == 0 {
		return 0, 0, 0
	}
	entrySelector = bits.Len16(numTables) - 1
	searchRange = (1 << entrySelector) * 16
	rangeShift = int(numTables)*16 - searchRange
	return searchRange, entrySelector, rangeShift
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, eop("OffsetTable", 12, err)
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, eop("OffsetTable", 4, err)
	}

	if ot.sfntVersion != sfntVersionTrueType {
		return nil, &InvalidSfntVersionError{Version: ot.sfntVersion}
	}

	searchRange, entrySelector, rangeShift := offsetTableGeometry(ot.numTables)
	if int(ot.searchRange) != searchRange {
		return nil, newParsingError("searchRange", searchRange, ot.searchRange)
	}
	if int(ot.entrySelector) != entrySelector {
		return nil, newParsingError("entrySelector", entrySelector, ot.entrySelector)
	}
	if int(ot.rangeShift) != rangeShift {
		return nil, newParsingError("rangeShift", rangeShift, ot.rangeShift)
	}

	return ot, nil
}

func (f *font) writeOffsetTable(w *byteWriter) error {
	if f.ot == nil {
		return errNilReceiver
	}
	return w.write(f.ot.sfntVersion, f.ot.numTables, f.ot.searchRange, f.ot.entrySelector, f.ot.rangeShift)
}
