/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "fmt"

// Font header.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
	created            longdatetime
	modified           longdatetime
	xMin               int16
	yMin               int16
	xMax               int16
	yMax               int16
	macStyle           uint16
	lowestRecPPEM      uint16
	fontDirectionHint  int16
	indexToLocFormat   int16
	glyphDataFormat    int16
}

func (t *headTable) Tag() string { return "head" }

// parse the font's *head* table from `r` in the context of `f`.
func (f *font) parseHead(r *byteReader) (*headTable, error) {
	t := &headTable{}
	err := r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision)
	if err != nil {
		return nil, err
	}
	if t.majorVersion != 1 || t.minorVersion != 0 {
		return nil, newParsingError("head::version", "1.0",
			fmt.Sprintf("%d.%d", t.majorVersion, t.minorVersion))
	}

	err = r.read(&t.checksumAdjustment, &t.magicNumber)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != headMagic {
		return nil, newParsingError("head::magic",
			fmt.Sprintf("0x%08X", uint32(headMagic)),
			fmt.Sprintf("0x%08X", t.magicNumber))
	}

	err = r.read(&t.flags, &t.unitsPerEm, &t.created, &t.modified)
	if err != nil {
		return nil, err
	}
	if t.unitsPerEm < unitsPerEmMin || t.unitsPerEm > unitsPerEmMax {
		return nil, newParsingError("head::unitsPerEm",
			fmt.Sprintf("[%d,%d]", unitsPerEmMin, unitsPerEmMax), t.unitsPerEm)
	}

	err = r.read(&t.xMin, &t.yMin, &t.xMax, &t.yMax)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.macStyle, &t.lowestRecPPEM, &t.fontDirectionHint, &t.indexToLocFormat, &t.glyphDataFormat)
	if err != nil {
		return nil, err
	}
	if t.indexToLocFormat != 0 && t.indexToLocFormat != 1 {
		return nil, newParsingError("head::indexToLocFormat", "0 or 1", t.indexToLocFormat)
	}
	if t.glyphDataFormat != 0 {
		return nil, newParsingError("head::glyphDataFormat", 0, t.glyphDataFormat)
	}

	return t, nil
}

func (f *font) writeHead(w *byteWriter) error {
	if f.head == nil {
		return errNilReceiver
	}
	t := f.head
	err := w.write(t.majorVersion, t.minorVersion, t.fontRevision, t.checksumAdjustment, t.magicNumber)
	if err != nil {
		return err
	}

	err = w.write(t.flags, t.unitsPerEm, t.created, t.modified, t.xMin, t.yMin, t.xMax, t.yMax)
	if err != nil {
		return err
	}

	return w.write(t.macStyle, t.lowestRecPPEM, t.fontDirectionHint, t.indexToLocFormat, t.glyphDataFormat)
}
