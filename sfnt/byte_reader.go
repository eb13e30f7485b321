/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"encoding/binary"
	"io"
)

// byteReader provides typed big-endian reads over a sequential byte source.
// It never seeks: skipped bytes are pulled through the underlying reader, so
// any tracking or checksum decorator below observes them. byteReader itself
// implements io.Reader and can therefore sit under another decorator.
type byteReader struct {
	r io.Reader
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r}
}

// Read passes through to the underlying reader.
func (r *byteReader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Skip discards `n` bytes, reading them from the source.
func (r *byteReader) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	copied, err := io.CopyN(io.Discard, r.r, n)
	if err == io.EOF && copied < n {
		return io.ErrUnexpectedEOF
	}
	return err
}

// readBytes reads exactly `length` bytes into `bp`.
func (r *byteReader) readBytes(bp *[]byte, length int) error {
	*bp = make([]byte, length)
	_, err := io.ReadFull(r.r, *bp)
	return err
}

// readSlice reads `length` consecutive values into `slice` (big endian).
// The slice capacity is sized up front from the declared count.
func (r *byteReader) readSlice(slice interface{}, length int) error {
	switch t := slice.(type) {
	case *[]uint8:
		*t = make([]uint8, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readUint8()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]int8:
		*t = make([]int8, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readInt8()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]uint16:
		*t = make([]uint16, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]fword:
		*t = make([]fword, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readFword()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]offset16:
		*t = make([]offset16, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readOffset16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]offset32:
		*t = make([]offset32, 0, length)
		for i := 0; i < length; i++ {
			val, err := r.readOffset32()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}

	default:
		tracer().Errorf("unsupported type %T (readSlice)", t)
		return errTypeCheck
	}
	return nil
}

// read reads a series of fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case *f2dot14:
			val, err := r.readF2dot14()
			if err != nil {
				return err
			}
			*t = val
		case *fixed:
			val, err := r.readFixed()
			if err != nil {
				return err
			}
			*t = val
		case *fword:
			val, err := r.readFword()
			if err != nil {
				return err
			}
			*t = val
		case *int8:
			val, err := r.readInt8()
			if err != nil {
				return err
			}
			*t = val
		case *int16:
			val, err := r.readInt16()
			if err != nil {
				return err
			}
			*t = val
		case *longdatetime:
			val, err := r.readLongdatetime()
			if err != nil {
				return err
			}
			*t = val
		case *offset16:
			val, err := r.readOffset16()
			if err != nil {
				return err
			}
			*t = val
		case *offset32:
			val, err := r.readOffset32()
			if err != nil {
				return err
			}
			*t = val
		case *ufword:
			val, err := r.readUfword()
			if err != nil {
				return err
			}
			*t = val
		case *uint8:
			val, err := r.readUint8()
			if err != nil {
				return err
			}
			*t = val
		case *uint16:
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = val
		case *tag:
			val, err := r.readTag()
			if err != nil {
				return err
			}
			*t = val
		case *uint32:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = val

		default:
			tracer().Errorf("unsupported type %T (read)", t)
			return errTypeCheck
		}
	}
	return nil
}

func (r *byteReader) readF2dot14() (f2dot14, error) {
	var val f2dot14
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readFixed() (fixed, error) {
	var val fixed
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readFword() (fword, error) {
	var val fword
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readUint8() (uint8, error) {
	var val uint8
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readUint16() (uint16, error) {
	var val uint16
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readInt8() (int8, error) {
	var val int8
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readInt16() (int16, error) {
	var val int16
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readUint32() (uint32, error) {
	var val uint32
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readTag() (tag, error) {
	var val tag
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readUfword() (ufword, error) {
	var val ufword
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readLongdatetime() (longdatetime, error) {
	var val longdatetime
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readOffset16() (offset16, error) {
	var val offset16
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}

func (r *byteReader) readOffset32() (offset32, error) {
	var val offset32
	err := binary.Read(r.r, binary.BigEndian, &val)
	return val, err
}
