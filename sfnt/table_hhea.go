/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "fmt"

// caretSlope categorizes the caret slope declared by hhea. The common
// (rise, run) pairs (1,0) and (0,1) collapse to vertical and horizontal;
// anything else keeps the raw pair.
type caretSlope struct {
	kind caretSlopeKind
	rise int16
	run  int16
}

type caretSlopeKind int

const (
	caretSlopeVertical caretSlopeKind = iota
	caretSlopeHorizontal
	caretSlopeExplicit
)

func (s caretSlope) String() string {
	switch s.kind {
	case caretSlopeVertical:
		return "vertical"
	case caretSlopeHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("rise %d / run %d", s.rise, s.run)
	}
}

// Horizontal header table (hhea): information for horizontal layout.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type hheaTable struct {
	majorVersion        uint16
	minorVersion        uint16
	ascender            fword
	descender           fword
	lineGap             fword
	advanceWidthMax     ufword
	minLeftSideBearing  fword
	minRightSideBearing fword
	xMaxExtent          fword
	caretSlope          caretSlope
	caretOffset         int16
	metricDataFormat    int16
	numberOfHMetrics    uint16 // Number of hMetric entries in 'hmtx' table.
}

func (t *hheaTable) Tag() string { return "hhea" }

func (f *font) parseHhea(r *byteReader) (*hheaTable, error) {
	t := &hheaTable{}
	err := r.read(&t.majorVersion, &t.minorVersion)
	if err != nil {
		return nil, err
	}
	if t.majorVersion != 1 || t.minorVersion != 0 {
		return nil, newParsingError("hhea::version", "1.0",
			fmt.Sprintf("%d.%d", t.majorVersion, t.minorVersion))
	}

	err = r.read(&t.ascender, &t.descender, &t.lineGap)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.advanceWidthMax, &t.minLeftSideBearing, &t.minRightSideBearing, &t.xMaxExtent)
	if err != nil {
		return nil, err
	}

	var rise, run int16
	err = r.read(&rise, &run, &t.caretOffset)
	if err != nil {
		return nil, err
	}
	switch {
	case rise == 1 && run == 0:
		t.caretSlope = caretSlope{kind: caretSlopeVertical}
	case rise == 0 && run == 1:
		t.caretSlope = caretSlope{kind: caretSlopeHorizontal}
	default:
		t.caretSlope = caretSlope{kind: caretSlopeExplicit, rise: rise, run: run}
	}

	// Skip over reserved bytes.
	err = r.Skip(4 * 2)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.metricDataFormat, &t.numberOfHMetrics)
	if err != nil {
		return nil, err
	}
	if t.metricDataFormat != 0 {
		return nil, newParsingError("hhea::metricDataFormat", 0, t.metricDataFormat)
	}

	return t, nil
}

func (f *font) writeHhea(w *byteWriter) error {
	if f.hhea == nil {
		return errNilReceiver
	}

	t := f.hhea
	err := w.write(t.majorVersion, t.minorVersion)
	if err != nil {
		return err
	}

	err = w.write(t.ascender, t.descender, t.lineGap)
	if err != nil {
		return err
	}

	err = w.write(t.advanceWidthMax, t.minLeftSideBearing, t.minRightSideBearing, t.xMaxExtent)
	if err != nil {
		return err
	}

	rise, run := t.caretSlope.rise, t.caretSlope.run
	switch t.caretSlope.kind {
	case caretSlopeVertical:
		rise, run = 1, 0
	case caretSlopeHorizontal:
		rise, run = 0, 1
	}
	err = w.write(rise, run, t.caretOffset)
	if err != nil {
		return err
	}

	reserved := int16(0)
	err = w.write(reserved, reserved, reserved, reserved)
	if err != nil {
		return err
	}

	return w.write(t.metricDataFormat, t.numberOfHMetrics)
}
