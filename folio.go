// Package folio provides a fluent API for extracting document structure
// from PDF files: markdown with detected tables, word bounding boxes, and
// classified vector graphics.
//
// Basic usage:
//
//	md, err := folio.Open("document.pdf").Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, err := folio.Open("report.pdf").
//	    Mode(extract.ModeGraphicsOnly).
//	    MaxPages(50).
//	    Document()
//
// For service deployments, the job and gateway packages expose the same
// pipeline behind an event-driven orchestrator.
package folio

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/foliohq/folio/extract"
	"github.com/foliohq/folio/fitzsource"
	"github.com/foliohq/folio/model"
)

// Extractor holds a document reference and extraction configuration for
// fluent chaining. Terminal operations (Result, Document, Markdown) run the
// pipeline.
type Extractor struct {
	filename string
	data     []byte
	opts     extract.Options
	logger   zerolog.Logger
}

// Open prepares an extractor for a PDF file on disk. The file is read when
// a terminal operation runs.
//
// Example:
//
//	md, err := folio.Open("document.pdf").Markdown()
func Open(filename string) *Extractor {
	return &Extractor{filename: filename, logger: zerolog.Nop()}
}

// FromBytes prepares an extractor for an in-memory document.
func FromBytes(data []byte) *Extractor {
	return &Extractor{data: data, logger: zerolog.Nop()}
}

// Mode selects the extraction mode.
func (e *Extractor) Mode(mode extract.Mode) *Extractor {
	e.opts.Mode = mode
	return e
}

// MaxPages caps the page count accepted for extraction. Zero means no cap.
func (e *Extractor) MaxPages(n int) *Extractor {
	e.opts.Limits.MaxPages = n
	return e
}

// MaxFileSize caps the document size in bytes. Zero means no cap.
func (e *Extractor) MaxFileSize(n int64) *Extractor {
	e.opts.Limits.MaxFileSize = n
	return e
}

// Logger attaches a logger to the pipeline run. The default discards.
func (e *Extractor) Logger(logger zerolog.Logger) *Extractor {
	e.logger = logger
	return e
}

// Result runs the pipeline and returns the full extraction result.
func (e *Extractor) Result() (*extract.Result, error) {
	out, err := e.run()
	if err != nil {
		return nil, err
	}
	return extract.NewResult(out), nil
}

// Document runs the pipeline and returns the structured document.
func (e *Extractor) Document() (*model.Document, error) {
	out, err := e.run()
	if err != nil {
		return nil, err
	}
	return out.Document, nil
}

// Markdown runs the pipeline and returns the markdown rendering.
func (e *Extractor) Markdown() (string, error) {
	out, err := e.run()
	if err != nil {
		return "", err
	}
	return out.Markdown, nil
}

func (e *Extractor) run() (*extract.Output, error) {
	data := e.data
	if data == nil {
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return nil, err
		}
	}

	src, err := fitzsource.Open(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return extract.Assemble(src, int64(len(data)), e.opts, e.logger)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
