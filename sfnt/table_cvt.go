/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

// cvtTable represents the Control Value Table (cvt).
// This table contains a list of values that can be referenced by
// instructions. The table is a bare array of FWORDs; its count comes from
// the declared table length.
type cvtTable struct {
	values []fword
}

func (t *cvtTable) Tag() string { return "cvt" }

func (f *font) parseCvt(r *byteReader, length int) (*cvtTable, error) {
	t := &cvtTable{}
	return t, r.readSlice(&t.values, length/2)
}

func (f *font) writeCvt(w *byteWriter) error {
	if f.cvt == nil {
		return errNilReceiver
	}
	return w.writeSlice(f.cvt.values)
}
