/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"fmt"
	"io"
)

// Table is one fully decoded SFNT table. The concrete type is determined by
// the directory tag the table was dispatched under.
type Table interface {
	Tag() string
}

// checksumFault records a tolerated per-table checksum mismatch, kept so
// strict validation can surface it later without re-reading the file.
type checksumFault struct {
	tableTag tag
	declared uint32
	computed uint32
}

// font is the data model for a parsed font with basic access methods.
// Typed fields serve cross-table dependency lookups during the parse;
// tables holds the same tables in resolution order.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).

	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	loca *locaTable
	glyf *glyfTable
	name *nameTable
	os2  *os2Table
	post *postTable
	cvt  *cvtTable
	prep *prepTable
	cmap *cmapTable
	dsig *dsigTable

	tables []Table

	faults []checksumFault
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

// tableDecoders maps a directory tag to its decoder. The table set is fixed
// at build time; a tag not listed here has no decoder and the table is
// dropped during dispatch.
var tableDecoders = []struct {
	tag    string
	decode func(f *font, r *byteReader, rec tableRecord) (Table, error)
}{
	{"head", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseHead(r)
		if err != nil {
			return nil, err
		}
		f.head = t
		return t, nil
	}},
	{"hhea", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseHhea(r)
		if err != nil {
			return nil, err
		}
		f.hhea = t
		return t, nil
	}},
	{"maxp", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseMaxp(r)
		if err != nil {
			return nil, err
		}
		f.maxp = t
		return t, nil
	}},
	{"hmtx", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseHmtx(r)
		if err != nil {
			return nil, err
		}
		f.hmtx = t
		return t, nil
	}},
	{"loca", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseLoca(r)
		if err != nil {
			return nil, err
		}
		f.loca = t
		return t, nil
	}},
	{"glyf", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseGlyf(r)
		if err != nil {
			return nil, err
		}
		f.glyf = t
		return t, nil
	}},
	{"name", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseNameTable(r)
		if err != nil {
			return nil, err
		}
		f.name = t
		return t, nil
	}},
	{"OS/2", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseOS2Table(r)
		if err != nil {
			return nil, err
		}
		f.os2 = t
		return t, nil
	}},
	{"post", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parsePost(r)
		if err != nil {
			return nil, err
		}
		f.post = t
		return t, nil
	}},
	{"cvt", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseCvt(r, int(rec.length))
		if err != nil {
			return nil, err
		}
		f.cvt = t
		return t, nil
	}},
	{"prep", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parsePrep(r, int(rec.length))
		if err != nil {
			return nil, err
		}
		f.prep = t
		return t, nil
	}},
	{"cmap", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseCmap(r)
		if err != nil {
			return nil, err
		}
		f.cmap = t
		return t, nil
	}},
	{"DSIG", func(f *font, r *byteReader, rec tableRecord) (Table, error) {
		t, err := f.parseDsig(r)
		if err != nil {
			return nil, err
		}
		f.dsig = t
		return t, nil
	}},
}

func decoderFor(t tag) (func(*font, *byteReader, tableRecord) (Table, error), error) {
	name := t.String()
	for _, d := range tableDecoders {
		if d.tag == name {
			return d.decode, nil
		}
	}
	return nil, &InvalidTagError{Tag: t}
}

// parseFont reads a complete font from `br` in one sequential pass. `fileCk`
// is the outermost decorator on the same stream: its byte count locates the
// current file position and its sum feeds the whole-file checksum equation.
func parseFont(br *byteReader, fileCk *checksumReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(br)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(br)
	if err != nil {
		return nil, err
	}

	var adjustment uint32

	// Table bodies must be consumed in file order: the source cannot seek.
	for _, rec := range f.trec.sortedByOffset() {
		tableName := rec.tableTag.String()

		pos := fileCk.TotalRead()
		if pos < int64(rec.offset) {
			gap := int64(rec.offset) - pos
			tracer().Infof("%d padding bytes before table %q", gap, tableName)
			if err := br.Skip(gap); err != nil {
				return nil, eop(tableName, int(gap), err)
			}
		} else if pos > int64(rec.offset) {
			tracer().Errorf("table %q declares offset %d but stream is at %d",
				tableName, rec.offset, pos)
		}

		decode, err := decoderFor(rec.tableTag)
		if err != nil {
			// Unrecognized tables are dropped; their bytes still count
			// toward the whole-file checksum.
			tracer().Infof("dropping table: %v", err)
			if err := br.Skip(int64(rec.length)); err != nil {
				return nil, eop(tableName, int(rec.length), err)
			}
			continue
		}

		tracer().Debugf("parsing table %q (%d bytes at offset %d)",
			tableName, rec.length, rec.offset)

		tck := newChecksumReader(io.LimitReader(br, int64(rec.length)))
		tr := newByteReader(tck)

		tbl, err := decode(f, tr, rec)
		if err != nil {
			return nil, eop(tableName, int(int64(rec.length)-tck.TotalRead()), err)
		}
		if rem := int64(rec.length) - tck.TotalRead(); rem > 0 {
			tracer().Debugf("table %q decoder left %d bytes unconsumed", tableName, rem)
			if err := tr.Skip(rem); err != nil {
				return nil, eop(tableName, int(rem), err)
			}
		}

		sum := tck.Finish()
		if tableName == "head" {
			// checksumAdjustment exists to balance the whole-file sum and is
			// masked to zero for the per-table comparison.
			sum -= f.head.checksumAdjustment
			adjustment = f.head.checksumAdjustment
		}
		if sum != rec.checksum {
			tracer().Errorf("table %q checksum mismatch: declared 0x%08X, computed 0x%08X",
				tableName, rec.checksum, sum)
			f.faults = append(f.faults, checksumFault{
				tableTag: rec.tableTag,
				declared: rec.checksum,
				computed: sum,
			})
		}

		f.tables = append(f.tables, tbl)
	}

	// Trailing bytes past the last table belong to the whole-file sum.
	if _, err := io.Copy(io.Discard, br); err != nil {
		return nil, fmt.Errorf("draining font file: %w", err)
	}

	// The adjustment stays zero when no head table was decoded; the
	// equation must hold either way.
	fileSum := fileCk.Finish()
	derived := checksumAdjustmentMagic - (fileSum - adjustment)
	if derived != adjustment {
		return nil, newParsingError("ChecksumAdjustment",
			fmt.Sprintf("0x%08X", adjustment),
			fmt.Sprintf("0x%08X", derived))
	}

	return f, nil
}
