/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"errors"
	"fmt"
	"os"
)

// Validate surfaces the per-table checksum mismatches the parser tolerated.
// Parsing never fails on a stale per-table checksum; callers needing strict
// conformance check here afterwards.
func (f *Font) Validate() error {
	var errs []error
	for _, fault := range f.faults {
		errs = append(errs, newParsingError(
			fault.tableTag.String()+"::checksum",
			fmt.Sprintf("0x%08X", fault.declared),
			fmt.Sprintf("0x%08X", fault.computed)))
	}
	return errors.Join(errs...)
}

// ValidateFile parses the truetype font given by `filePath` and checks it
// strictly: any per-table checksum mismatch is an error here.
func ValidateFile(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	fnt, err := Parse(f)
	if err != nil {
		return err
	}
	return fnt.Validate()
}
