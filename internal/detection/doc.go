// Package detection finds bright points in raster images with a single streaming
// pass over a row-major RGBA buffer.
//
// # Pipeline
//
// Every pixel goes through the same four steps, strictly in scan order:
//
//  1. Greyscale: the truncated mean of the R, G and B bytes (alpha is ignored)
//  2. Background: the lower median of a sliding horizontal window of greyscale
//     values, maintained incrementally with a 256-bin counting histogram
//  3. Subtraction: greyscale minus background, floored at zero
//  4. Tracking: a four-state machine that opens, grows, merges and closes blobs
//
// The median window is rebuilt from the first 2*MedianRadius+1 pixels of each
// row. It only slides for columns more than MedianRadius away from either edge.
// Margin columns reuse the window as it stands.
//
// # Tracking
//
// The tracker is always in one of four states:
//
//   - searching: no blob open. A recorded point in a recent row lying less
//     than ExclusionRadius columns away switches to the existing point. Otherwise
//     a pixel above Threshold opens a new blob.
//   - within a new point: follows the running maximum of an unrecorded blob.
//     The blob is recorded when the signal drops to Threshold or below.
//   - within an existing point: raises a recorded point's maximum in place.
//   - guard: a cooldown of ExclusionRadius pixels after a blob closes, during
//     which nothing new opens.
//
// Recorded points stay eligible for merging while they are within
// ExclusionRadius rows of the scan row. Nothing is flushed at the end of a
// scan: a blob still open at the last visited pixel is dropped.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left. X increases
// rightward and Y increases downward.
//
// # Errors
//
// Buffer and parameter problems are reported before any pixel is read, as
// errors wrapping ErrInvalidBuffer, ErrImageTooNarrow or ErrInvalidParams.
// Once a scan starts it cannot fail.
//
// # Thread Safety
//
// A scan owns all of its working state. Detector values are immutable and may
// be shared between goroutines.
package detection
