/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"cmp"
	"slices"

	"github.com/gunnsth/pkcs7"
)

// dsigTable represents the Digital Signature (DSIG) table: a list of
// signature blocks, each carrying a PKCS#7 packet over the font data
// (format 1 is the only defined block format). The DER packets are stored
// as read; parsing them is deferred to the accessors so that a malformed
// signature does not fail the font parse.
// https://docs.microsoft.com/en-us/typography/opentype/spec/dsig
type dsigTable struct {
	version uint32
	flags   uint16
	blocks  []signatureBlock
}

type signatureBlock struct {
	format uint32
	der    []byte // PKCS#7 packet (format 1).
}

type signatureRecord struct {
	format uint32
	length uint32
	offset offset32 // from the beginning of the DSIG table.
}

func (t *dsigTable) Tag() string { return "DSIG" }

func (f *font) parseDsig(r *byteReader) (*dsigTable, error) {
	tk := newTrackingReader(r)
	dr := newByteReader(tk)

	t := &dsigTable{}
	var numSignatures uint16
	err := dr.read(&t.version, &numSignatures, &t.flags)
	if err != nil {
		return nil, err
	}
	if t.version != 1 {
		return nil, &InvalidVersionError{Location: "DSIG", Version: t.version}
	}

	records := make([]signatureRecord, 0, numSignatures)
	for i := 0; i < int(numSignatures); i++ {
		var rec signatureRecord
		err = dr.read(&rec.format, &rec.length, &rec.offset)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	// Blocks are visited in file order; offsets are relative to the table
	// start.
	slices.SortStableFunc(records, func(a, b signatureRecord) int {
		return cmp.Compare(a.offset, b.offset)
	})

	t.blocks = make([]signatureBlock, 0, numSignatures)
	for _, rec := range records {
		if pos := tk.TotalRead(); pos < int64(rec.offset) {
			if err := dr.Skip(int64(rec.offset) - pos); err != nil {
				return nil, err
			}
		}

		if rec.format != 1 {
			tracer().Infof("skipping DSIG block with unknown format %d", rec.format)
			if err := dr.Skip(int64(rec.length)); err != nil {
				return nil, err
			}
			continue
		}

		var reserved1, reserved2 uint16
		var signatureLength uint32
		err = dr.read(&reserved1, &reserved2, &signatureLength)
		if err != nil {
			return nil, err
		}

		block := signatureBlock{format: rec.format}
		err = dr.readBytes(&block.der, int(signatureLength))
		if err != nil {
			return nil, err
		}
		t.blocks = append(t.blocks, block)
	}

	return t, nil
}

// Signatures parses the PKCS#7 packet of every format-1 signature block.
func (t *dsigTable) Signatures() ([]*pkcs7.PKCS7, error) {
	sigs := make([]*pkcs7.PKCS7, 0, len(t.blocks))
	for _, block := range t.blocks {
		p7, err := pkcs7.Parse(block.der)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, p7)
	}
	return sigs, nil
}

// VerifySignatures checks every signature block against `content`, the byte
// range the signer covered.
func (t *dsigTable) VerifySignatures(content []byte) error {
	sigs, err := t.Signatures()
	if err != nil {
		return err
	}
	for _, p7 := range sigs {
		p7.Content = content
		if err := p7.Verify(); err != nil {
			return err
		}
	}
	return nil
}
