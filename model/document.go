package model

// Info contains document-level metadata. Missing header fields default to
// empty strings, never null.
type Info struct {
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Subject   string `json:"subject"`
	Creator   string `json:"creator"`
}

// Document represents a fully assembled document: metadata plus the ordered
// sequence of per-page structural views. A Document is created once per
// extraction request and is immutable after assembly.
type Document struct {
	Info  Info
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Pages: make([]*Page, 0)}
}

// AddPage appends a page to the document. The page keeps the number the
// source assigned it; skipped pages leave gaps in the numbering, not in the
// sequence.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// WordCount returns the total number of extracted words across all pages.
func (d *Document) WordCount() int {
	n := 0
	for _, page := range d.Pages {
		n += page.WordCount()
	}
	return n
}

// AllWords returns every word box in page order.
func (d *Document) AllWords() []WordBox {
	var words []WordBox
	for _, page := range d.Pages {
		words = append(words, page.Words...)
	}
	return words
}
