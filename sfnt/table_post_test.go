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

// postHeader writes the 32-byte post header shared by all versions.
func postHeader(t *testing.T, w *byteWriter, version uint32) {
	t.Helper()

	err := w.write(fixed(version), fixed(0), fword(-100), fword(50), uint32(0))
	require.NoError(t, err)
	err = w.write(uint32(0), uint32(0), uint32(0), uint32(0))
	require.NoError(t, err)
}

func TestParsePostVersion10(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00010000)
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 258}}
	post, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	assert.Equal(t, fword(-100), post.underlinePosition)
	assert.Equal(t, fword(50), post.underlineThickness)
	assert.Equal(t, "post", post.Tag())

	// Version 1.0 carries no name data of its own.
	_, ok := post.glyphName(0)
	assert.False(t, ok)
}

func TestParsePostVersion20(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00020000)
	// Four glyphs: .notdef, space, then two font-specific names.
	err := w.write(uint16(4), uint16(0), uint16(3), uint16(258), uint16(259))
	require.NoError(t, err)
	for _, name := range []string{"uniE000", "florin.alt"} {
		err = w.write(uint8(len(name)))
		require.NoError(t, err)
		for _, c := range []byte(name) {
			require.NoError(t, w.write(c))
		}
	}
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 4}}
	post, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	expected := []GlyphName{".notdef", "space", "uniE000", "florin.alt"}
	for gid, want := range expected {
		name, ok := post.glyphName(GlyphIndex(gid))
		require.True(t, ok, "gid %d", gid)
		assert.Equal(t, want, name)
	}

	_, ok := post.glyphName(4)
	assert.False(t, ok)
}

func TestParsePostVersion20GlyphCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00020000)
	require.NoError(t, w.write(uint16(3), uint16(0), uint16(0), uint16(0)))
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 4}}
	_, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "post::numGlyphs", perr.Variable)
}

func TestParsePostVersion20BadNameIndex(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00020000)
	// Index 300 points past the single custom name that follows.
	err := w.write(uint16(2), uint16(258), uint16(300))
	require.NoError(t, err)
	err = w.write(uint8(1), uint8('x'))
	require.NoError(t, err)
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 2}}
	_, err = f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "post::glyphNameIndex", perr.Variable)
}

func TestParsePostVersion25(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00025000)
	// Offsets reorder the standard set: glyph i maps to mac name i+1+offset.
	require.NoError(t, w.write(uint16(3), int8(-1), int8(1), int8(-2)))
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 3}}
	post, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	for gid, want := range []GlyphName{macGlyphNames[0], macGlyphNames[3], macGlyphNames[1]} {
		name, ok := post.glyphName(GlyphIndex(gid))
		require.True(t, ok)
		assert.Equal(t, want, name)
	}
}

func TestParsePostVersion25BadOffset(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00025000)
	require.NoError(t, w.write(uint16(1), int8(-5)))
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 1}}
	_, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	var perr *ParsingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "post::offsets", perr.Variable)
}

func TestParsePostVersion30(t *testing.T) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	postHeader(t, w, 0x00030000)
	require.NoError(t, w.flush())

	f := &font{maxp: &maxpTable{numGlyphs: 12}}
	post, err := f.parsePost(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	_, ok := post.glyphName(0)
	assert.False(t, ok)
}

func TestParsePostMissingMaxp(t *testing.T) {
	f := &font{}
	_, err := f.parsePost(newByteReader(bytes.NewReader(nil)))
	var merr *MissingTableError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "maxp", merr.Missing.String())
	assert.Equal(t, "post", merr.Parsing.String())
}
