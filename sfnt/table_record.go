/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// tableRecord is one entry of the table directory: the table's tag, its
// declared checksum, and the byte range it occupies in the file. Records
// are consumed during dispatch and not retained on the parsed font beyond
// the directory itself.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

func (tr tableRecord) write(w *byteWriter) error {
	return w.write(tr.tableTag, tr.checksum, tr.offset, tr.length)
}

// tableRecords is the decoded table directory, in file order, with a map by
// tag name for quick lookup.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	trs := &tableRecords{
		trMap: map[string]tableRecord{},
	}

	numTables := f.numTables()
	for i := 0; i < numTables; i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, eop("TableRecord", 16, err)
		}
		trs.list = append(trs.list, rec)
		trs.trMap[rec.tableTag.String()] = rec
	}

	return trs, nil
}

// sortedByOffset returns the records ordered by file offset. The parser
// consumes the stream sequentially, so tables must be visited in the order
// their bodies appear, not the order the directory lists them.
func (trs *tableRecords) sortedByOffset() []tableRecord {
	ordered := slices.Clone(trs.list)
	slices.SortStableFunc(ordered, func(a, b tableRecord) int {
		return cmp.Compare(a.offset, b.offset)
	})
	return ordered
}

func (f *font) writeTableRecords(w *byteWriter) error {
	if f.trec == nil {
		return errNilReceiver
	}

	for _, tr := range f.trec.list {
		err := tr.write(w)
		if err != nil {
			return err
		}
	}
	return nil
}

// HasTable returns true if the directory has a record for `tableName`.
func (trs *tableRecords) HasTable(tableName string) bool {
	_, has := trs.trMap[strings.TrimSpace(tableName)]
	return has
}

func (trs *tableRecords) String() string {
	var buf bytes.Buffer
	for i, tr := range trs.list {
		buf.WriteString(fmt.Sprintf("record %d: %q offset %d length %d checksum 0x%08X\n",
			i, tr.tableTag.String(), tr.offset, tr.length, tr.checksum))
	}
	return buf.String()
}
