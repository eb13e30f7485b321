/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"encoding/binary"
	"io"
)

// byteWriter provides typed big-endian writes as fit for sfnt data. Writes
// are buffered until flushed, and the checksum of the buffered bytes can be
// computed at any point, which is how table checksums and the head
// checksumAdjustment are derived when assembling a file.
type byteWriter struct {
	w   io.Writer
	len int64

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{w: w}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the checksum of the current buffer: the sum of its
// big-endian 4-byte words, the last word zero-padded if the buffer length
// is not a multiple of four.
func (w *byteWriter) checksum() uint32 {
	var sum uint32

	data := w.buffer.Bytes()
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}

	return sum
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		for _, val := range t {
			if err := w.writeUint8(val); err != nil {
				return err
			}
		}
	case []uint16:
		for _, val := range t {
			if err := w.writeUint16(val); err != nil {
				return err
			}
		}
	case []int16:
		for _, val := range t {
			if err := w.writeInt16(val); err != nil {
				return err
			}
		}
	case []fword:
		for _, val := range t {
			if err := w.writeInt16(int16(val)); err != nil {
				return err
			}
		}
	case []offset16:
		for _, val := range t {
			if err := w.writeOffset16(val); err != nil {
				return err
			}
		}
	case []offset32:
		for _, val := range t {
			if err := w.writeOffset32(val); err != nil {
				return err
			}
		}
	default:
		tracer().Errorf("unsupported type %T (writeSlice)", t)
		return errTypeCheck
	}
	return nil
}

// write writes a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case uint8:
			err = w.writeUint8(t)
		case int8:
			err = w.writeInt8(t)
		case uint16:
			err = w.writeUint16(t)
		case int16:
			err = w.writeInt16(t)
		case uint32:
			err = w.writeUint32(t)
		case fixed:
			err = w.writeUint32(uint32(t))
		case fword:
			err = w.writeInt16(int16(t))
		case ufword:
			err = w.writeUint16(uint16(t))
		case f2dot14:
			err = w.writeInt16(int16(t))
		case longdatetime:
			err = w.writeLongdatetime(t)
		case tag:
			err = w.writeTag(t)
		case offset16:
			err = w.writeOffset16(t)
		case offset32:
			err = w.writeOffset32(t)
		default:
			tracer().Errorf("unsupported type %T (write)", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *byteWriter) writeUint8(val uint8) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len++
	return nil
}

func (w *byteWriter) writeInt8(val int8) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len++
	return nil
}

func (w *byteWriter) writeUint16(val uint16) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 2
	return nil
}

func (w *byteWriter) writeInt16(val int16) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 2
	return nil
}

func (w *byteWriter) writeUint32(val uint32) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 4
	return nil
}

func (w *byteWriter) writeLongdatetime(val longdatetime) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, int64(val)); err != nil {
		return err
	}
	w.len += 8
	return nil
}

func (w *byteWriter) writeTag(val tag) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 4
	return nil
}

func (w *byteWriter) writeOffset16(val offset16) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 2
	return nil
}

func (w *byteWriter) writeOffset32(val offset32) error {
	if err := binary.Write(&w.buffer, binary.BigEndian, val); err != nil {
		return err
	}
	w.len += 4
	return nil
}
