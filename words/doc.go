// Package words extracts word-level bounding boxes.
//
// Each word token supplied by the page source becomes one [model.WordBox]
// with both absolute and page-relative geometry. Tokens whose trimmed text
// is empty or whose rectangle is degenerate are filtered out; ordinal
// triples pass through unchanged.
package words
