package extract

import "github.com/foliohq/folio/model"

// PageRecord is the wire shape of one page in structured_data. The
// toc_items and images fields are emitted for schema compatibility and are
// always empty in this implementation.
type PageRecord struct {
	Metadata map[string]any      `json:"metadata"`
	TOCItems []any               `json:"toc_items"`
	Tables   []model.TableRegion `json:"tables"`
	Images   []any               `json:"images"`
	Graphics []model.Graphic     `json:"graphics"`
	Text     string              `json:"text"`
	Words    []model.WordBox     `json:"words"`
}

// Result is the synchronous response body of one extraction. On failure
// only Success, Error, and ErrorType are populated.
type Result struct {
	Success           bool            `json:"success"`
	DocumentInfo      model.Info      `json:"document_info"`
	MarkdownText      string          `json:"markdown_text"`
	WordBoundingBoxes []model.WordBox `json:"word_bounding_boxes"`
	WordCount         int             `json:"word_count"`
	StructuredData    []PageRecord    `json:"structured_data"`
	Error             string          `json:"error,omitempty"`
	ErrorType         string          `json:"error_type,omitempty"`
}

// NewResult builds the success response body from an assembled output.
func NewResult(out *Output) *Result {
	allWords := out.Document.AllWords()
	if allWords == nil {
		allWords = []model.WordBox{}
	}

	records := make([]PageRecord, 0, len(out.Document.Pages))
	for _, page := range out.Document.Pages {
		records = append(records, PageRecord{
			Metadata: map[string]any{
				"page_number": page.Number,
				"width":       page.Width,
				"height":      page.Height,
			},
			TOCItems: []any{},
			Tables:   emptyIfNil(page.Tables),
			Images:   []any{},
			Graphics: emptyIfNil(page.Graphics),
			Text:     page.Text,
			Words:    emptyIfNil(page.Words),
		})
	}

	return &Result{
		Success:           true,
		DocumentInfo:      out.Document.Info,
		MarkdownText:      out.Markdown,
		WordBoundingBoxes: allWords,
		WordCount:         len(allWords),
		StructuredData:    records,
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
