// Package intersect computes a pixel-wise logical AND of two or more flag
// images.
//
// Flags are never resized. They are aligned at the top-left corner on a
// canvas sized to the union of all input dimensions. Where every flag agrees
// on a pixel's colour within a Euclidean RGB tolerance, the first flag's
// colour is kept; everywhere else the pixel becomes transparent (or white).
// The package works entirely in memory; loading and saving images are
// separate phases handled by the codec helpers in this package.
package intersect
