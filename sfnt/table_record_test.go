/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableRecordBytes(t *testing.T, recs ...tableRecord) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	for _, rec := range recs {
		require.NoError(t, rec.write(w))
	}
	require.NoError(t, w.flush())
	return buf.Bytes()
}

func TestParseTableRecords(t *testing.T) {
	data := tableRecordBytes(t,
		tableRecord{tableTag: makeTag("glyf"), checksum: 0x11111111, offset: 200, length: 64},
		tableRecord{tableTag: makeTag("head"), checksum: 0x22222222, offset: 44, length: 54},
	)

	f := &font{ot: &offsetTable{numTables: 2}}
	trs, err := f.parseTableRecords(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Len(t, trs.list, 2)

	// File order is retained in the list, lookup works by tag name.
	assert.Equal(t, "glyf", trs.list[0].tableTag.String())
	assert.True(t, trs.HasTable("head"))
	assert.True(t, trs.HasTable("head ")) // trailing space is tolerated
	assert.False(t, trs.HasTable("cmap"))

	rec := trs.trMap["head"]
	assert.Equal(t, uint32(0x22222222), rec.checksum)
	assert.Equal(t, offset32(44), rec.offset)
	assert.Equal(t, uint32(54), rec.length)
}

func TestTableRecordsSortedByOffset(t *testing.T) {
	data := tableRecordBytes(t,
		tableRecord{tableTag: makeTag("glyf"), offset: 200},
		tableRecord{tableTag: makeTag("head"), offset: 44},
		tableRecord{tableTag: makeTag("maxp"), offset: 100},
	)

	f := &font{ot: &offsetTable{numTables: 3}}
	trs, err := f.parseTableRecords(newByteReader(bytes.NewReader(data)))
	require.NoError(t, err)

	ordered := trs.sortedByOffset()
	require.Len(t, ordered, 3)
	assert.Equal(t, "head", ordered[0].tableTag.String())
	assert.Equal(t, "maxp", ordered[1].tableTag.String())
	assert.Equal(t, "glyf", ordered[2].tableTag.String())

	// The original directory order is untouched.
	assert.Equal(t, "glyf", trs.list[0].tableTag.String())
}

func TestParseTableRecordsTruncated(t *testing.T) {
	data := tableRecordBytes(t,
		tableRecord{tableTag: makeTag("head"), offset: 44, length: 54},
	)

	f := &font{ot: &offsetTable{numTables: 2}}
	_, err := f.parseTableRecords(newByteReader(bytes.NewReader(data)))
	var eerr *UnexpectedEopError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "TableRecord", eerr.Location)
	assert.Equal(t, 16, eerr.Needed)
}
