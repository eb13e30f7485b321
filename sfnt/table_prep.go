/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

// prepTable represents a Control Value Program table (prep).
// Consists of a set of TrueType instructions that will be executed whenever
// the font or point size or transformation matrix change and before each
// glyph is interpreted. The bytecode is carried, never executed.
type prepTable struct {
	instructions []uint8
}

func (t *prepTable) Tag() string { return "prep" }

func (f *font) parsePrep(r *byteReader, length int) (*prepTable, error) {
	t := &prepTable{}
	return t, r.readSlice(&t.instructions, length)
}

func (f *font) writePrep(w *byteWriter) error {
	if f.prep == nil {
		return errNilReceiver
	}
	return w.writeSlice(f.prep.instructions)
}
