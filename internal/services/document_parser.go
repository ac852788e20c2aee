package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "alfredoptarigan/interview-assistant/internal/errors"
)

const (
	FormatPDF  = ".pdf"
	FormatDOCX = ".docx"
)

var fileSignatures = map[string][]byte{
	FormatPDF:  []byte("%PDF-"),
	FormatDOCX: []byte("PK\x03\x04"),
}

type DocumentParserService interface {
	ExtractTextWithMetaData(filename string, data []byte) (*DocumentContent, error)
}

type DocumentContent struct {
	Text   string
	Format string
	// Sections is the page count for PDFs and the paragraph count for DOCX.
	Sections int
}

type documentParserService struct {
	verifySignature bool
}

func NewDocumentParserService(verifySignature bool) DocumentParserService {
	return &documentParserService{verifySignature: verifySignature}
}

// SupportedFormat returns the lowercased extension of filename when it is one
// of the formats the parser understands.
func SupportedFormat(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case FormatPDF, FormatDOCX:
		return ext, true
	default:
		return "", false
	}
}

func (p *documentParserService) ExtractTextWithMetaData(filename string, data []byte) (*DocumentContent, error) {
	format, ok := SupportedFormat(filename)
	if !ok {
		return nil, apperrors.NewUnsupportedFormatError(apperrors.ErrCodeUnsupportedFormat, apperrors.MsgUnsupportedFormat)
	}

	if p.verifySignature && !hasSignature(format, data) {
		return nil, apperrors.NewUnsupportedFormatError(apperrors.ErrCodeUnsupportedFormat, apperrors.MsgUnsupportedFormat)
	}

	var (
		raw      string
		sections int
		err      error
	)
	switch format {
	case FormatPDF:
		raw, sections, err = extractPDFText(data)
	case FormatDOCX:
		raw, sections, err = extractDocxText(data)
	}
	if err != nil {
		return nil, apperrors.NewParseError(apperrors.ErrCodeParseFailed, apperrors.MsgParseFailed, err)
	}

	return &DocumentContent{
		Text:     NormalizeText(raw),
		Format:   format,
		Sections: sections,
	}, nil
}

func hasSignature(format string, data []byte) bool {
	sig := fileSignatures[format]
	if format == FormatPDF {
		// Readers tolerate junk before the header within the first KiB.
		head := data
		if len(head) > 1024 {
			head = head[:1024]
		}
		return bytes.Contains(head, sig)
	}
	return bytes.HasPrefix(data, sig)
}

func extractPDFText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pageTexts := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}

		pageTexts = append(pageTexts, pageText)
	}

	return joinPageTexts(pageTexts), totalPage, nil
}

// joinPageTexts trims each page and joins them with a newline, dropping
// pages left without text.
func joinPageTexts(pageTexts []string) string {
	kept := make([]string, 0, len(pageTexts))
	for _, t := range pageTexts {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, "\n")
}

func extractDocxText(data []byte) (string, int, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", 0, err
	}

	return strings.Join(paragraphs, "\n"), len(paragraphs), nil
}
