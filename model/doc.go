// Package model provides the intermediate representation (IR) for extracted
// document structure.
//
// This package defines the user-facing data structures that represent the
// structural views of a processed document. All extraction stages ultimately
// produce these types, making them the primary API for consuming results.
//
// # Document Structure
//
// The [Document] type represents a complete document with metadata and pages:
//
//	doc := model.NewDocument()
//	doc.Info.Title = "My Document"
//	doc.AddPage(page)
//
// Each [Page] carries its dimensions and the structural views extracted from
// it: reconciled prose text, detected [TableRegion] values, word-level
// [WordBox] positions, and classified [Graphic] primitives.
//
// # Geometry
//
// Geometric primitives support position and overlap calculations:
//
//   - [Rect] - corner-form bounding box (x0,y0)-(x1,y1) with intersection
//     and normalization
//   - [Point] - 2D point
//
// Absolute coordinates are in page units; normalized coordinates are
// page-relative, clamped to [0,1]. Types that carry both use [DualPoint]
// and [DualRect].
//
// # Tables
//
// The [TableRegion] type holds a row-major grid of cell strings with an
// export method ToMarkdown() that renders a pipe-delimited table treating
// the first row as header.
package model
