/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"encoding/binary"
	"io"
)

// checksumReader decorates a reader, counting consumed bytes and folding
// every complete big-endian 4-byte word into a rolling 32-bit sum. Tables
// occupy a multiple of four bytes on disk even when their logical length is
// not 4-aligned, so Finish zero-pads any trailing bytes into one last word
// without touching the stream.
type checksumReader struct {
	r    io.Reader
	n    int64
	sum  uint32
	word [4]byte
	fill int
}

func newChecksumReader(r io.Reader) *checksumReader {
	return &checksumReader{r: r}
}

// Read passes through, folding completed words into the sum.
func (c *checksumReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	for _, b := range p[:n] {
		c.word[c.fill] = b
		c.fill++
		if c.fill == 4 {
			c.sum += binary.BigEndian.Uint32(c.word[:])
			c.fill = 0
		}
	}
	c.n += int64(n)
	return n, err
}

// TotalRead returns the number of bytes consumed through this reader.
func (c *checksumReader) TotalRead() int64 {
	return c.n
}

// Finish folds trailing bytes, zero-padded to a full word, and returns the
// final sum. Calling it again without further reads returns the same value.
func (c *checksumReader) Finish() uint32 {
	if c.fill > 0 {
		for i := c.fill; i < 4; i++ {
			c.word[i] = 0
		}
		c.sum += binary.BigEndian.Uint32(c.word[:])
		c.fill = 0
	}
	return c.sum
}
