package resume

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extraction is the best-effort text of an uploaded resume.
// Err is set when the file could not be read; Text is then empty.
type Extraction struct {
	Text string
	Err  error
}

// Empty reports whether there is no usable text, whatever the reason.
func (e Extraction) Empty() bool { return strings.TrimSpace(e.Text) == "" }

// Extractor turns stored resume bytes into text.
type Extractor interface {
	Extract(filename string, data []byte) Extraction
}

// Parser is the default Extractor. Failures are logged and swallowed.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Extract dispatches on the file extension. Anything that is not .docx or .txt
// is read as PDF.
func (p *Parser) Extract(filename string, data []byte) Extraction {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		text = string(data)
	case ".docx":
		text, err = extractTextFromDocx(data)
	default:
		text, err = extractTextFromPDF(data)
	}
	if err != nil {
		p.logger.Warn("resume text extraction failed", slog.String("filename", filename), slog.Any("error", err))
		return Extraction{Err: err}
	}
	return Extraction{Text: text}
}

// extractTextFromPDF concatenates the plain text of every page. A failure on any
// page fails the whole document.
func extractTextFromPDF(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines  = regexp.MustCompile(`\n+`)
)

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	if xml == "" {
		return "", errors.New("empty docx document")
	}
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, "")
	txt = reSpaces.ReplaceAllString(txt, " ")
	txt = reLines.ReplaceAllString(txt, "\n")
	return strings.TrimSpace(txt), nil
}
