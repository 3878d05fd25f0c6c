// Package avghash computes average hashes for image files.
//
// The pipeline decodes an image, resamples it to a fixed grid with one
// configured filter, converts it to luma, and emits one bit per cell: set when
// the cell is at least as bright as the integer mean of the grid. Bits are
// appended in raster order into a fingerprint.Builder.
//
// A Hasher holds only immutable options and is safe for concurrent use; all
// scheduling belongs to the caller (see internal/batch).
package avghash
