/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "io"

// trackingReader decorates a reader and counts the bytes pulled through it.
// Decoders use the count to resolve offsets declared relative to the start
// of the region they are consuming, since the source cannot seek.
type trackingReader struct {
	r io.Reader
	n int64
}

func newTrackingReader(r io.Reader) *trackingReader {
	return &trackingReader{r: r}
}

// Read passes through and counts.
func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.n += int64(n)
	return n, err
}

// TotalRead returns the number of bytes consumed through this reader.
func (t *trackingReader) TotalRead() int64 {
	return t.n
}
