// Package markdown renders the per-page structural views into markdown.
//
// Each page section starts with a page heading, followed by the detected
// tables (in detection order) as pipe-delimited markdown tables, followed
// by the reconciled prose lines. Page sections concatenated in page-index
// order form the full document markdown.
package markdown
