// Package extract assembles the per-page structural views into a complete
// document result.
//
// The assembler drives one pass over a page source: per page it detects
// tables, reconciles them against the prose blocks, renders the page
// markdown, extracts word boxes, and classifies vector graphics, then
// combines everything with document-level metadata. Which facets are
// populated is selected by the extraction [Mode].
//
// Resource guards reject documents exceeding the configured byte-size or
// page-count ceiling before any extraction work runs. A table-detection
// failure on a single page degrades that page to zero tables rather than
// failing the document; pages with non-positive dimensions are skipped and
// logged.
package extract
