/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import "errors"

// Format constants.
const (
	// sfntVersionTrueType is the only accepted container version
	// (00 01 00 00). CFF-flavored 'OTTO' files are not parsed.
	sfntVersionTrueType = 0x00010000

	// headMagic is the fixed magicNumber field of the head table.
	headMagic = 0x5F0F3CF5

	// checksumAdjustmentMagic is the constant the whole-file checksum is
	// balanced against via head.checksumAdjustment.
	checksumAdjustmentMagic = 0xB1B0AFBA

	// unitsPerEmMin and unitsPerEmMax bound head.unitsPerEm.
	unitsPerEmMin = 16
	unitsPerEmMax = 16384
)

var (
	errTypeCheck   = errors.New("type check error")
	errRangeCheck  = errors.New("range check error")
	errNilReceiver = errors.New("receiver pointer not initialized")
)
