// Package fitzsource adapts a MuPDF-backed document into the source
// capability interface. MuPDF exposes page content as positioned HTML and
// vector graphics as SVG; this package parses both into structured page
// data.
package fitzsource

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/foliohq/folio/source"
)

// Document is a MuPDF-backed source.
type Document struct {
	doc *fitz.Document
}

// Open parses raw document bytes.
func Open(data []byte) (source.Source, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.doc.NumPage() }

// Metadata maps the MuPDF metadata dictionary onto the source header
// fields. Absent keys stay empty.
func (d *Document) Metadata() source.Metadata {
	meta := d.doc.Metadata()
	return source.Metadata{
		Title:   meta["title"],
		Author:  meta["author"],
		Subject: meta["subject"],
		Creator: meta["creator"],
	}
}

// Page extracts one page: dimensions from the page bound, text blocks and
// words from the positioned-HTML rendering, drawings from the SVG
// rendering.
func (d *Document) Page(index int) (*source.PageData, error) {
	if index < 0 || index >= d.doc.NumPage() {
		return nil, source.ErrPageOutOfRange
	}

	bound, err := d.doc.Bound(index)
	if err != nil {
		return nil, fmt.Errorf("page %d bound: %w", index, err)
	}
	width := float64(bound.Dx())
	height := float64(bound.Dy())

	page := &source.PageData{Width: width, Height: height}

	rendered, err := d.doc.HTML(index, false)
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", index, err)
	}
	page.Blocks, page.Words, err = parsePageHTML(rendered)
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", index, err)
	}

	svg, err := d.doc.SVG(index)
	if err != nil {
		return nil, fmt.Errorf("page %d graphics: %w", index, err)
	}
	page.Drawings, err = parseSVG(svg)
	if err != nil {
		return nil, fmt.Errorf("page %d graphics: %w", index, err)
	}

	return page, nil
}

// Close releases the underlying MuPDF document.
func (d *Document) Close() error {
	return d.doc.Close()
}
