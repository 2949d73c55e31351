package words

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// Extract converts a page's word tokens into word boxes. The page number is
// 1-based; width and height must be positive, validated by the caller.
//
// Tokens are skipped when their text trims to empty or their rectangle is
// degenerate (x0 >= x1 or y0 >= y1). Normalized coordinates are clamped to
// [0,1] even when the source rectangle slightly exceeds the page bounds.
func Extract(pageNumber int, width, height float64, tokens []source.Word) []model.WordBox {
	boxes := make([]model.WordBox, 0, len(tokens))
	dims := model.Dimensions{Width: width, Height: height}

	for _, tok := range tokens {
		text := norm.NFC.String(tok.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		if tok.BBox.IsDegenerate() {
			continue
		}

		boxes = append(boxes, model.WordBox{
			Page:           pageNumber,
			Text:           text,
			BBox:           tok.BBox.Normalized(width, height),
			AbsoluteBBox:   tok.BBox,
			PageDimensions: dims,
			BlockNo:        tok.BlockNo,
			LineNo:         tok.LineNo,
			WordNo:         tok.WordNo,
		})
	}

	return boxes
}
