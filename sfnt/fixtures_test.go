/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"encoding/binary"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test fixtures are synthesized in memory through byteWriter; the test
// suite carries no binary font files.

type fixtureTable struct {
	tag  string
	data []byte
}

// tableChecksum sums the big-endian 4-byte words of data, the last word
// zero-padded.
func tableChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// buildFont assembles a complete font file: header, directory, table bodies
// padded to 4-byte boundaries, per-table checksums (head's computed with a
// zeroed adjustment) and a balanced head.checksumAdjustment. The returned
// map gives each table's body offset for tests that tamper afterwards.
func buildFont(t *testing.T, tables ...fixtureTable) ([]byte, map[string]int) {
	t.Helper()

	numTables := uint16(len(tables))
	searchRange, entrySelector, rangeShift := offsetTableGeometry(numTables)

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(uint32(sfntVersionTrueType), numTables,
		uint16(searchRange), uint16(entrySelector), uint16(rangeShift))
	require.NoError(t, err)

	offsets := make(map[string]int, len(tables))
	offset := 12 + 16*len(tables)
	var bodies []byte
	for _, tbl := range tables {
		checksummed := slices.Clone(tbl.data)
		if tbl.tag == "head" {
			require.GreaterOrEqual(t, len(checksummed), 12)
			copy(checksummed[8:12], []byte{0, 0, 0, 0})
		}

		err = w.write(makeTag(tbl.tag), tableChecksum(checksummed),
			offset32(offset), uint32(len(tbl.data)))
		require.NoError(t, err)

		offsets[tbl.tag] = offset
		padded := slices.Clone(tbl.data)
		for len(padded)%4 != 0 {
			padded = append(padded, 0)
		}
		bodies = append(bodies, padded...)
		offset += len(padded)
	}
	require.NoError(t, w.flush())

	file := append(buf.Bytes(), bodies...)
	if headOff, ok := offsets["head"]; ok {
		rebalanceAdjustment(file, headOff)
	}
	return file, offsets
}

// rebalanceAdjustment recomputes head.checksumAdjustment at headOff so the
// whole-file checksum equation holds again after tampering.
func rebalanceAdjustment(file []byte, headOff int) {
	copy(file[headOff+8:headOff+12], []byte{0, 0, 0, 0})
	sum := tableChecksum(file)
	binary.BigEndian.PutUint32(file[headOff+8:headOff+12], checksumAdjustmentMagic-sum)
}

// headFixture builds a valid 54-byte head table body.
func headFixture(t *testing.T, unitsPerEm uint16, indexToLocFormat int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(uint16(1), uint16(0), fixed(0x00010000), uint32(0), uint32(headMagic))
	require.NoError(t, err)
	err = w.write(uint16(0), unitsPerEm, longdatetime(0), longdatetime(0))
	require.NoError(t, err)
	err = w.write(int16(0), int16(0), int16(0), int16(0))
	require.NoError(t, err)
	err = w.write(uint16(0), uint16(8), int16(2), indexToLocFormat, int16(0))
	require.NoError(t, err)
	require.NoError(t, w.flush())
	return buf.Bytes()
}

// maxpFixture builds a version 0.5 maxp table body.
func maxpFixture(t *testing.T, numGlyphs uint16) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	require.NoError(t, w.write(fixed(maxpVersion05), numGlyphs))
	require.NoError(t, w.flush())
	return buf.Bytes()
}

// hheaFixture builds a version 1.0 hhea table body with a horizontal caret.
func hheaFixture(t *testing.T, numberOfHMetrics uint16) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	err := w.write(uint16(1), uint16(0), fword(750), fword(-250), fword(0))
	require.NoError(t, err)
	err = w.write(ufword(1200), fword(0), fword(0), fword(1200))
	require.NoError(t, err)
	err = w.write(int16(0), int16(1), int16(0)) // caret rise/run, offset
	require.NoError(t, err)
	err = w.write(int16(0), int16(0), int16(0), int16(0)) // reserved
	require.NoError(t, err)
	err = w.write(int16(0), numberOfHMetrics)
	require.NoError(t, err)
	require.NoError(t, w.flush())
	return buf.Bytes()
}

// locaFixture builds a short-format loca table body from byte offsets.
func locaFixture(t *testing.T, offsets ...uint32) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	for _, off := range offsets {
		require.NoError(t, w.write(offset16(off/2)))
	}
	require.NoError(t, w.flush())
	return buf.Bytes()
}

// nameFixture builds a format 0 name table with UTF-16BE storage.
func nameFixture(t *testing.T, records map[uint16]string) []byte {
	t.Helper()

	ids := make([]uint16, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var storage []byte
	type entry struct {
		id     uint16
		offset int
		length int
	}
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		encoded := utf16beEncode(t, records[id])
		entries = append(entries, entry{id: id, offset: len(storage), length: len(encoded)})
		storage = append(storage, encoded...)
	}

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	stringOffset := 6 + 12*len(entries)
	err := w.write(uint16(0), uint16(len(entries)), offset16(stringOffset))
	require.NoError(t, err)
	for _, e := range entries {
		// platform 3 (windows), encoding 1, language en-US.
		err = w.write(uint16(3), uint16(1), uint16(0x0409), e.id,
			uint16(e.length), offset16(e.offset))
		require.NoError(t, err)
	}
	require.NoError(t, w.flush())
	return append(buf.Bytes(), storage...)
}

func utf16beEncode(t *testing.T, s string) []byte {
	t.Helper()

	encoded, err := utf16be.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return encoded
}
