// Package pdftext decodes PDF documents into plain text. Extraction is
// text-layer only; scanned plans with no text layer come back empty rather
// than failing.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/plotplan/takeoff-tracker/internal/common"
)

// Result holds the decoded text of a document.
type Result struct {
	Text     string
	Pages    int
	Duration time.Duration
}

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractFile decodes the PDF at path into plain text.
func (e *Extractor) ExtractFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, common.WrapError(err, "open document")
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("failed to close document", "path", path, "error", err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return Result{}, common.WrapError(err, "stat document")
	}

	res, err := e.extract(f, info.Size())
	if err != nil {
		e.logger.Error("pdf decode failed", "path", path, "error", err)
		return Result{}, err
	}

	e.logger.Debug("pdf decoded", "path", path, "pages", res.Pages, "bytes", len(res.Text))
	return res, nil
}

// ExtractBytes decodes an in-memory PDF into plain text.
func (e *Extractor) ExtractBytes(data []byte) (Result, error) {
	res, err := e.extract(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Error("pdf decode failed", "bytes", len(data), "error", err)
		return Result{}, err
	}
	return res, nil
}

func (e *Extractor) extract(r io.ReaderAt, size int64) (res Result, err error) {
	start := time.Now()

	// The pdf package panics on some malformed inputs; fold those into the
	// same document-read error as a parse failure.
	defer func() {
		if rec := recover(); rec != nil {
			err = common.NewAppError("DOCUMENT_READ", fmt.Sprintf("malformed pdf: %v", rec), common.ErrDocumentRead)
			res = Result{}
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return Result{}, common.NewAppError("DOCUMENT_READ", fmt.Sprintf("parse pdf: %v", err), common.ErrDocumentRead)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return Result{}, common.NewAppError("DOCUMENT_READ", fmt.Sprintf("extract text: %v", err), common.ErrDocumentRead)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return Result{}, common.NewAppError("DOCUMENT_READ", fmt.Sprintf("read text: %v", err), common.ErrDocumentRead)
	}

	return Result{
		Text:     string(text),
		Pages:    reader.NumPage(),
		Duration: time.Since(start),
	}, nil
}
