package source

import "github.com/foliohq/folio/model"

// Metadata holds the document header fields a source exposes. Fields the
// source cannot supply stay empty.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// TextLine is one line of text within a block.
type TextLine struct {
	BBox model.Rect
	Text string
}

// TextBlock is an ordered group of text lines with a shared bounding
// rectangle.
type TextBlock struct {
	BBox  model.Rect
	Lines []TextLine
}

// Word is one word token with its rectangle and the block/line/word ordinal
// triple assigned by the source.
type Word struct {
	Text    string
	BBox    model.Rect
	BlockNo int
	LineNo  int
	WordNo  int
}

// Drawing operator tags. Tags outside this set may appear in a source's
// instruction stream; classification skips them.
const (
	OpLine  = "line"
	OpCurve = "curve"
	OpRect  = "rect"
	OpQuad  = "quad"
)

// DrawOp is a single drawing operation, dispatched by its operator tag.
// Line ops carry 2 points, curve ops 4 control points, quad ops 4 corners
// in upper-left, upper-right, lower-left, lower-right order. Rect ops carry
// their geometry in Rect.
type DrawOp struct {
	Op     string
	Points []model.Point
	Rect   model.Rect
}

// DrawGroup is an ordered run of drawing operations sharing stroke and fill
// attributes. A nil color means the attribute was absent.
type DrawGroup struct {
	Width  float64
	Stroke *model.Color
	Fill   *model.Color
	Ops    []DrawOp
}

// PageData is everything a source supplies for one page.
type PageData struct {
	Width    float64
	Height   float64
	Blocks   []TextBlock
	Words    []Word
	Drawings []DrawGroup
}

// Source is the capability interface over a parsed document. Page indexes
// are 0-based; extracted page numbers are 1-based.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Metadata returns the document header fields.
	Metadata() Metadata

	// Page returns the structured content of one page.
	Page(index int) (*PageData, error)

	// Close releases resources held by the source.
	Close() error
}

// Memory is an in-memory Source built from literal page data.
type Memory struct {
	Meta      Metadata
	PageItems []*PageData
}

// PageCount returns the number of pages.
func (m *Memory) PageCount() int { return len(m.PageItems) }

// Metadata returns the configured header fields.
func (m *Memory) Metadata() Metadata { return m.Meta }

// Page returns the page at the given 0-based index.
func (m *Memory) Page(index int) (*PageData, error) {
	if index < 0 || index >= len(m.PageItems) {
		return nil, ErrPageOutOfRange
	}
	return m.PageItems[index], nil
}

// Close is a no-op for in-memory sources.
func (m *Memory) Close() error { return nil }
