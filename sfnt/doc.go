/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sfnt parses binary TrueType font files into an in-memory,
// validated table set.
//
// The SFNT container is a table directory followed by checksummed table
// bodies. The parser reads the source in one sequential pass, visiting
// tables in ascending file-offset order, and hands each table's byte range
// to the decoder matching its tag. Decoders may consult tables resolved
// earlier in the same pass: loca needs head and maxp, hmtx needs maxp and
// hhea, glyf needs loca. Per-table checksums are verified but a mismatch is
// tolerated (logged only), since real-world fonts are known to carry stale
// table checksums; the whole-file checksum balanced through
// head.checksumAdjustment is enforced.
//
// Composite glyph component decoding and TrueType instruction execution are
// not implemented. A composite glyph's outline is substituted with a copy
// of glyph 0 and marked, so callers can detect the degraded fidelity.
package sfnt

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'glfont.sfnt'
func tracer() tracing.Trace {
	return tracing.Select("glfont.sfnt")
}
