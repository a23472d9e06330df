// Package costfield builds the cost grids consumed by dt.DistanceTransform
// from the usual source descriptions.
//
// What:
//
//   - FromMask turns a rectangular [][]int mask into a 2D grid: cells with
//     value ≥ Threshold become sources (cost Source), every other cell gets
//     Background.
//   - FromPoints marks explicit source coordinates in an N-dimensional grid.
//   - Regions labels the connected groups of source cells of a mask (4- or
//     8-connectivity).
//   - Partition assigns every cell the label of the region that owns its
//     nearest source, using the location map of the transform.
//
// With the defaults (Source 0, Background dt.Infinity) the transform of the
// field is the squared Euclidean distance to the nearest source cell.
//
// Complexity:
//
//   - FromMask, Regions:  O(H×W×d), Memory: O(H×W)   (d = 4 or 8).
//   - FromPoints:         O(N + P×D).
//   - Partition:          O(N×D²).
//
// Errors:
//
//   - ErrEmptyGrid: mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrPointOutOfRange: a source point lies outside the grid.
//   - ErrLabelShape: labels and location map disagree on shape.
package costfield
