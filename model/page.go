package model

// Page holds the structural views extracted from a single page.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in page units
	Height float64 // Page height in page units

	// Reconciled prose: text lines from blocks that do not overlap any
	// detected table on this page.
	Text string

	Tables   []TableRegion
	Words    []WordBox
	Graphics []Graphic
}

// NewPage creates a page with the given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{Width: width, Height: height}
}

// WordCount returns the number of extracted words on the page.
func (p *Page) WordCount() int {
	return len(p.Words)
}
