// Package docx provides DOCX (Office Open XML) document parsing.
//
// A DOCX file is a ZIP archive of WordprocessingML parts. This package
// extracts the style, body, and note parts, resolves the style inheritance
// graph, and produces a model.Document.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/minidocx/format"
	"github.com/tsawler/minidocx/model"
)

// Reader-related errors.
var (
	ErrInvalidArchive = errors.New("docx: invalid or corrupted archive")
	ErrNotDOCX        = errors.New("docx: not a WordprocessingML document")
)

// The parts a document load reads. Absent parts parse as empty.
const (
	partDocument  = "word/document.xml"
	partStyles    = "word/styles.xml"
	partFootnotes = "word/footnotes.xml"
	partEndnotes  = "word/endnotes.xml"
)

// Reader provides access to DOCX document content. All parts are read and
// parsed eagerly; the Reader holds no open resources once constructed.
type Reader struct {
	doc *model.Document
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info: %w", err)
	}

	return OpenReader(f, st.Size())
}

// OpenReader opens a DOCX document from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	kind, err := format.DetectFromReader(ra, size)
	if err != nil || kind != format.DOCX {
		return nil, ErrNotDOCX
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, ErrInvalidArchive
	}

	parts := extractParts(zr, partDocument, partStyles, partFootnotes, partEndnotes)

	r := &Reader{}
	r.doc = assemble(parts)
	return r, nil
}

// extractParts reads the named archive entries into a name-to-bytes mapping.
// Entries that are absent or unreadable map to empty buffers.
func extractParts(zr *zip.Reader, names ...string) map[string][]byte {
	parts := make(map[string][]byte, len(names))
	for _, name := range names {
		parts[name] = nil
	}

	for _, f := range zr.File {
		if _, wanted := parts[f.Name]; !wanted || parts[f.Name] != nil {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		parts[f.Name] = data
	}

	return parts
}

// assemble wires the parsed parts into a Document. The style resolver and
// its cache live only for the duration of this call, so concurrent loads on
// independent inputs never share state.
func assemble(parts map[string][]byte) *model.Document {
	doc := model.NewDocument()

	doc.Styles = parseStyles(parts[partStyles])
	sr := NewStyleResolver(doc.Styles)

	doc.Footnotes = parseFootnotes(parts[partFootnotes], sr)
	doc.Endnotes = parseEndnotes(parts[partEndnotes], sr)
	doc.Paragraphs = parseBody(parts[partDocument], sr)

	return doc
}

// parseBody parses word/document.xml into the ordered paragraph list.
func parseBody(data []byte, sr *StyleResolver) []model.Paragraph {
	if len(data) == 0 {
		return nil
	}

	var parsed documentXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	if parsed.Body == nil {
		return nil
	}

	paragraphs := make([]model.Paragraph, 0, len(parsed.Body.Paragraphs))
	for _, p := range parsed.Body.Paragraphs {
		paragraphs = append(paragraphs, readParagraph(p, sr))
	}
	return paragraphs
}

// Document returns the parsed document model.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Text extracts and returns all text content from the document, one line
// per paragraph.
func (r *Reader) Text() string {
	var sb strings.Builder
	for i, para := range r.doc.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(para.Text())
	}
	return sb.String()
}
