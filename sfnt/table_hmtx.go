/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "fmt"

// hmtxTable represents the Horizontal Metrics (hmtx) table, one metric per
// glyph. The file stores numberOfHMetrics explicit (advanceWidth, lsb)
// pairs; the remaining glyphs carry only a left-side bearing and repeat the
// last explicit advance width. The synthesized tail is materialized here so
// metrics[gid] is uniform for every glyph.
type hmtxTable struct {
	metrics []longHorMetric // len = maxp.numGlyphs.
}

type longHorMetric struct {
	advanceWidth uint16
	lsb          int16
}

func (t *hmtxTable) Tag() string { return "hmtx" }

func (f *font) parseHmtx(r *byteReader) (*hmtxTable, error) {
	if f.maxp == nil {
		return nil, &MissingTableError{Missing: makeTag("maxp"), Parsing: makeTag("hmtx")}
	}
	if f.hhea == nil {
		return nil, &MissingTableError{Missing: makeTag("hhea"), Parsing: makeTag("hmtx")}
	}

	numGlyphs := int(f.maxp.numGlyphs)
	numberOfHMetrics := int(f.hhea.numberOfHMetrics)
	if numberOfHMetrics > numGlyphs {
		return nil, newParsingError("hmtx::numberOfHMetrics",
			fmt.Sprintf("<= %d", numGlyphs), numberOfHMetrics)
	}

	t := &hmtxTable{
		metrics: make([]longHorMetric, 0, numGlyphs),
	}

	for i := 0; i < numberOfHMetrics; i++ {
		var lhm longHorMetric
		err := r.read(&lhm.advanceWidth, &lhm.lsb)
		if err != nil {
			return nil, err
		}
		t.metrics = append(t.metrics, lhm)
	}

	var lastAdvance uint16
	if numberOfHMetrics > 0 {
		lastAdvance = t.metrics[numberOfHMetrics-1].advanceWidth
	}
	for i := numberOfHMetrics; i < numGlyphs; i++ {
		var lsb int16
		err := r.read(&lsb)
		if err != nil {
			return nil, err
		}
		t.metrics = append(t.metrics, longHorMetric{advanceWidth: lastAdvance, lsb: lsb})
	}

	return t, nil
}

func (f *font) writeHmtx(w *byteWriter) error {
	if f.hmtx == nil || f.hhea == nil {
		return errNilReceiver
	}

	numberOfHMetrics := int(f.hhea.numberOfHMetrics)
	for i, lhm := range f.hmtx.metrics {
		var err error
		if i < numberOfHMetrics {
			err = w.write(lhm.advanceWidth, lhm.lsb)
		} else {
			err = w.write(lhm.lsb)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
