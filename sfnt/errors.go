/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"errors"
	"fmt"
	"io"
)

// InvalidSfntVersionError reports a container version tag other than
// 00 01 00 00.
type InvalidSfntVersionError struct {
	Version uint32
}

func (e *InvalidSfntVersionError) Error() string {
	return fmt.Sprintf("invalid sfnt version 0x%08X", e.Version)
}

// InvalidTagError reports a directory tag with no matching decoder. The
// parser absorbs it and drops the table; it is fatal only if a caller
// surfaces it directly.
type InvalidTagError struct {
	Tag tag
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("unrecognized table tag %q", e.Tag.String())
}

// InvalidVersionError reports an unsupported version field inside a table.
type InvalidVersionError struct {
	Location string
	Version  uint32
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported %s version 0x%08X", e.Location, e.Version)
}

// ParsingError reports a violated structural invariant: header geometry,
// magic numbers, loca monotonicity, the whole-file checksum equation.
type ParsingError struct {
	Variable string
	Expected string
	Parsed   string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parsing %s: expected %s, parsed %s", e.Variable, e.Expected, e.Parsed)
}

func newParsingError(variable string, expected, parsed interface{}) *ParsingError {
	return &ParsingError{
		Variable: variable,
		Expected: fmt.Sprintf("%v", expected),
		Parsed:   fmt.Sprintf("%v", parsed),
	}
}

// UnexpectedEopError reports that the byte source ended in the middle of a
// structure that declared more data.
type UnexpectedEopError struct {
	Location string
	Needed   int
}

func (e *UnexpectedEopError) Error() string {
	return fmt.Sprintf("unexpected end of data in %s, %d more bytes needed", e.Location, e.Needed)
}

// eop converts the io short-read sentinels into an UnexpectedEopError
// carrying the parse location; any other error passes through unchanged.
func eop(location string, needed int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &UnexpectedEopError{Location: location, Needed: needed}
	}
	return err
}

// MissingTableError reports a decoder dependency absent from the tables
// parsed so far.
type MissingTableError struct {
	Missing tag
	Parsing tag
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("missing table %q while parsing %q", e.Missing.String(), e.Parsing.String())
}

// AllocationError reports that a requested capacity could not be satisfied,
// e.g. the collection's 16-bit key index space is exhausted.
type AllocationError struct {
	Location  string
	Expected  int
	Allocated int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocating for %s: requested %d, allocated %d", e.Location, e.Expected, e.Allocated)
}

// UnsupportedEncodingError reports a name record whose platform/encoding
// pair has no defined decoding here. Failing beats mis-decoding.
type UnsupportedEncodingError struct {
	Platform uint16
	Encoding uint16
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported name record platform/encoding %d/%d", e.Platform, e.Encoding)
}
