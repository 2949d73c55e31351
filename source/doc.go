// Package source defines the page-source capability: the interface through
// which the extraction pipeline consumes a parsed document.
//
// The underlying byte-stream parser/renderer is deliberately outside this
// module. Anything that can supply per-page geometry, text spans grouped
// into blocks and lines, word tokens with ordinal triples, and vector
// drawing instructions can implement [Source]; package fitzsource provides
// a MuPDF-backed implementation, and [Memory] backs tests and in-process
// callers that already hold structured page data.
package source
