package extract

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/foliohq/folio/faults"
	"github.com/foliohq/folio/graphics"
	"github.com/foliohq/folio/markdown"
	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
	"github.com/foliohq/folio/tables"
	"github.com/foliohq/folio/words"
)

// Limits are the resource ceilings checked before extraction runs. A zero
// value disables the corresponding check.
type Limits struct {
	MaxFileSize int64
	MaxPages    int
}

// Options configure one extraction pass.
type Options struct {
	Mode   Mode
	Limits Limits

	// Tables overrides the table-detection parameters. Zero value selects
	// the defaults.
	Tables tables.Config
}

// Output is the assembled document together with its rendered markdown.
type Output struct {
	Document *model.Document
	Markdown string
}

// Assemble runs one full extraction pass over a page source. fileSize is
// the byte size of the source document, known to the caller from the fetch.
//
// Limit violations are reported before any page work starts. A page-source
// failure on any page fails the whole document; table-detection failures
// degrade the affected page to zero tables.
func Assemble(src source.Source, fileSize int64, opts Options, logger zerolog.Logger) (*Output, error) {
	if opts.Mode == "" {
		opts.Mode = ModeFull
	}

	if opts.Limits.MaxFileSize > 0 && fileSize > opts.Limits.MaxFileSize {
		return nil, faults.Limitf("document size %d exceeds limit %d", fileSize, opts.Limits.MaxFileSize)
	}

	pageCount := src.PageCount()
	if opts.Limits.MaxPages > 0 && pageCount > opts.Limits.MaxPages {
		return nil, faults.Limitf("document has %d pages, limit is %d", pageCount, opts.Limits.MaxPages)
	}

	detector := tables.NewDetector()
	if opts.Tables != (tables.Config{}) {
		detector.Configure(opts.Tables)
	}

	doc := model.NewDocument()
	meta := src.Metadata()
	doc.Info = model.Info{
		PageCount: pageCount,
		FileSize:  fileSize,
		Title:     meta.Title,
		Author:    meta.Author,
		Subject:   meta.Subject,
		Creator:   meta.Creator,
	}

	var md strings.Builder

	for i := 0; i < pageCount; i++ {
		data, err := src.Page(i)
		if err != nil {
			return nil, faults.Extraction("read page", err)
		}

		number := i + 1
		if data.Width <= 0 || data.Height <= 0 {
			logger.Warn().
				Int("page", number).
				Float64("width", data.Width).
				Float64("height", data.Height).
				Msg("skipping page with non-positive dimensions")
			continue
		}

		page := assemblePage(number, data, opts.Mode, detector, logger)
		doc.AddPage(page)

		if opts.Mode != ModeGraphicsOnly {
			prose := tables.Reconcile(data.Blocks, page.Tables)
			md.WriteString(markdown.Page(number, page.Tables, prose))
		}
	}

	return &Output{Document: doc, Markdown: md.String()}, nil
}

// assemblePage builds the structural views of one page according to the
// extraction mode.
func assemblePage(number int, data *source.PageData, mode Mode, detector *tables.Detector, logger zerolog.Logger) *model.Page {
	page := model.NewPage(data.Width, data.Height)
	page.Number = number

	if mode != ModeGraphicsOnly {
		regions, err := detector.Detect(data.Words)
		if err != nil {
			// Recoverable: the page degrades to zero tables.
			logger.Warn().Int("page", number).Err(err).Msg("table detection failed, treating page as table-free")
			regions = nil
		}
		page.Tables = regions
		page.Text = markdown.ProseText(tables.Reconcile(data.Blocks, regions))
		page.Words = words.Extract(number, data.Width, data.Height, data.Words)
	}

	if mode != ModeNone {
		page.Graphics = graphics.Classify(data.Width, data.Height, data.Drawings)
	}

	return page
}
