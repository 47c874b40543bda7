package pdftext

import (
	"context"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Fallback extracts whole-document text when the Go PDF library cannot read
// a file or a page. Implemented by PdfToText; injected so tests can stub it.
type Fallback interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// Reader turns PDF files into page-aware Documents.
type Reader struct {
	fallback Fallback
}

// NewReader creates a Reader. fallback may be nil, in which case unreadable
// pages contribute empty text.
func NewReader(fallback Fallback) *Reader {
	return &Reader{fallback: fallback}
}

// Read extracts the text of every page of the PDF at path. Pages the
// library cannot decode are retried once via the fallback backend; if that
// also fails the page contributes empty text rather than aborting the
// document.
func (r *Reader) Read(ctx context.Context, path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		// Whole file unreadable by the library: one fallback attempt.
		if doc, ferr := r.readViaFallback(ctx, path); ferr == nil {
			return doc, nil
		}
		return nil, eris.Wrapf(err, "pdftext: open %s", path)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	var failed []int
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			failed = append(failed, i)
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			failed = append(failed, i)
			continue
		}
		pages = append(pages, text)
	}

	if len(failed) > 0 {
		pages = r.patchFailedPages(ctx, path, pages, failed)
	}

	return NewDocument(path, pages), nil
}

// patchFailedPages re-extracts the whole file with the fallback backend and
// splices the recovered pages over the empty slots.
func (r *Reader) patchFailedPages(ctx context.Context, path string, pages []string, failed []int) []string {
	if r.fallback == nil {
		zap.L().Warn("pdftext: unreadable pages, no fallback configured",
			zap.String("path", path),
			zap.Ints("pages", failed),
		)
		return pages
	}

	text, err := r.fallback.ExtractText(ctx, path)
	if err != nil {
		zap.L().Warn("pdftext: fallback extraction failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return pages
	}

	// pdftotext separates pages with form feeds.
	fbPages := strings.Split(text, "\f")
	for _, n := range failed {
		if n-1 < len(fbPages) {
			pages[n-1] = fbPages[n-1]
		}
	}
	zap.L().Debug("pdftext: recovered pages via fallback",
		zap.String("path", path),
		zap.Ints("pages", failed),
	)
	return pages
}

func (r *Reader) readViaFallback(ctx context.Context, path string) (*Document, error) {
	if r.fallback == nil {
		return nil, eris.New("pdftext: no fallback configured")
	}
	text, err := r.fallback.ExtractText(ctx, path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdftext: fallback for %s", path)
	}
	return NewDocument(path, strings.Split(text, "\f")), nil
}
