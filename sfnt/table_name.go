/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"fmt"

	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// RecordType identifies the semantic meaning of a name record. Values 0-14
// and 16-25 have fixed meanings; 15 and 26-255 are reserved; 256-32767 are
// font specific. Values above 32767 never occur in a parsed font.
type RecordType uint16

const (
	RecordCopyright RecordType = iota
	RecordFamily
	RecordSubfamily
	RecordUniqueIdentifier
	RecordFull
	RecordVersion
	RecordPostScript
	RecordTrademark
	RecordManufacturer
	RecordDesigner
	RecordDescription
	RecordVendorURL
	RecordDesignerURL
	RecordLicense
	RecordLicenseURL
)

const (
	RecordTypographicFamily RecordType = iota + 16
	RecordTypographicSubfamily
	RecordCompatFull
	RecordSample
	RecordPostScriptCID
	RecordWWSFamily
	RecordWWSSubfamily
	RecordLightPalette
	RecordDarkPalette
	RecordPostScriptVariations
)

// recordTypeFromNameID maps a raw nameID to its RecordType.
func recordTypeFromNameID(nameID uint16) (RecordType, error) {
	if nameID > 32767 {
		return 0, newParsingError("name::nameId", "<= 32767", nameID)
	}
	return RecordType(nameID), nil
}

// IsReserved reports whether the record type has no defined meaning.
func (rt RecordType) IsReserved() bool {
	return rt == 15 || (rt >= 26 && rt <= 255)
}

// IsFontSpecific reports whether the record type is in the font-specific
// range (256-32767).
func (rt RecordType) IsFontSpecific() bool {
	return rt >= 256
}

// NameID returns the record type as a golang.org/x/image/font/sfnt name
// identifier; the two enumerations share the same numbering.
func (rt RecordType) NameID() xsfnt.NameID {
	return xsfnt.NameID(rt)
}

func (rt RecordType) String() string {
	switch {
	case rt.IsReserved():
		return fmt.Sprintf("Reserved(%d)", uint16(rt))
	case rt.IsFontSpecific():
		return fmt.Sprintf("FontSpecific(%d)", uint16(rt))
	}
	switch rt {
	case RecordCopyright:
		return "Copyright"
	case RecordFamily:
		return "Family"
	case RecordSubfamily:
		return "Subfamily"
	case RecordUniqueIdentifier:
		return "UniqueIdentifier"
	case RecordFull:
		return "Full"
	case RecordVersion:
		return "Version"
	case RecordPostScript:
		return "PostScript"
	case RecordTrademark:
		return "Trademark"
	case RecordManufacturer:
		return "Manufacturer"
	case RecordDesigner:
		return "Designer"
	case RecordDescription:
		return "Description"
	case RecordVendorURL:
		return "VendorURL"
	case RecordDesignerURL:
		return "DesignerURL"
	case RecordLicense:
		return "License"
	case RecordLicenseURL:
		return "LicenseURL"
	case RecordTypographicFamily:
		return "TypographicFamily"
	case RecordTypographicSubfamily:
		return "TypographicSubfamily"
	case RecordCompatFull:
		return "CompatFull"
	case RecordSample:
		return "Sample"
	case RecordPostScriptCID:
		return "PostScriptCID"
	case RecordWWSFamily:
		return "WWSFamily"
	case RecordWWSSubfamily:
		return "WWSSubfamily"
	case RecordLightPalette:
		return "LightPalette"
	case RecordDarkPalette:
		return "DarkPalette"
	case RecordPostScriptVariations:
		return "PostScriptVariations"
	}
	return fmt.Sprintf("RecordType(%d)", uint16(rt))
}

// nameTable represents the Naming table (name): multilingual strings
// associated with the font, such as copyright notices, family and style
// names. Records keep the order the directory lists them in.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
type nameTable struct {
	format  uint16
	records []nameRecord
}

func (t *nameTable) Tag() string { return "name" }

type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	recordType RecordType
	value      string
}

// record returns the first entry with record type `rt`.
func (t *nameTable) record(rt RecordType) (string, bool) {
	for _, nr := range t.records {
		if nr.recordType == rt {
			return nr.value, true
		}
	}
	return "", false
}

// rawNameRecord is one directory entry before its string is sliced out of
// the storage area.
type rawNameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	// Record offsets are relative to the start of the storage area, which
	// is itself located relative to the table start.
	tk := newTrackingReader(r)
	nr := newByteReader(tk)

	t := &nameTable{}
	var count uint16
	var stringOffset offset16
	err := nr.read(&t.format, &count, &stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		return nil, &InvalidVersionError{Location: "name", Version: uint32(t.format)}
	}

	raws := make([]rawNameRecord, 0, count)
	storageLen := 0
	for i := 0; i < int(count); i++ {
		var raw rawNameRecord
		err = nr.read(&raw.platformID, &raw.encodingID, &raw.languageID, &raw.nameID, &raw.length, &raw.offset)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
		if end := int(raw.offset) + int(raw.length); end > storageLen {
			storageLen = end
		}
	}

	// Format 1 interposes language-tag records between the directory and
	// the storage area; their strings count toward the storage length.
	if t.format == 1 {
		var langTagCount uint16
		err = nr.read(&langTagCount)
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(langTagCount); i++ {
			var length uint16
			var offset offset16
			err = nr.read(&length, &offset)
			if err != nil {
				return nil, err
			}
			if end := int(offset) + int(length); end > storageLen {
				storageLen = end
			}
		}
	}

	if pos := tk.TotalRead(); pos < int64(stringOffset) {
		tracer().Infof("%d padding bytes before name storage area", int64(stringOffset)-pos)
		if err := nr.Skip(int64(stringOffset) - pos); err != nil {
			return nil, err
		}
	} else if pos > int64(stringOffset) {
		tracer().Errorf("name storage area declares offset %d but stream is at %d",
			stringOffset, pos)
	}

	var storage []byte
	err = nr.readBytes(&storage, storageLen)
	if err != nil {
		return nil, err
	}

	t.records = make([]nameRecord, 0, count)
	for _, raw := range raws {
		if int(raw.offset)+int(raw.length) > len(storage) {
			return nil, newParsingError("name::offset",
				fmt.Sprintf("<= %d", len(storage)), int(raw.offset)+int(raw.length))
		}
		data := storage[raw.offset : int(raw.offset)+int(raw.length)]

		value, err := decodeNameString(raw.platformID, raw.encodingID, data)
		if err != nil {
			return nil, err
		}
		rt, err := recordTypeFromNameID(raw.nameID)
		if err != nil {
			return nil, err
		}

		t.records = append(t.records, nameRecord{
			platformID: raw.platformID,
			encodingID: raw.encodingID,
			languageID: raw.languageID,
			recordType: rt,
			value:      value,
		})
	}

	return t, nil
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeNameString decodes one storage slice into UTF-8. Only the Unicode
// platform (0) with UTF-16 encodings and the Windows platform (3) with
// UCS-2/UCS-4 encodings are supported; anything else fails rather than
// mis-decode. Unpaired surrogates decode to U+FFFD.
func decodeNameString(platformID, encodingID uint16, data []byte) (string, error) {
	switch {
	case platformID == 0 && (encodingID == 3 || encodingID == 4),
		platformID == 3 && (encodingID == 1 || encodingID == 10):
		decoded, err := utf16be.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
	return "", &UnsupportedEncodingError{Platform: platformID, Encoding: encodingID}
}
