// Package result collects the artifacts of a comparison batch.
//
// A Container holds everything produced for one comparison row: the alignment
// images for each page, optional content images, and the original/corrected
// text pairs per document side. An Aggregator owns one Container per row.
//
// Paths are stored relative to the output root with forward slashes, together
// with a quoted literal that can be embedded directly in a script.
package result
