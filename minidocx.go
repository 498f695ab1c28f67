// Package minidocx reads DOCX (Office Open XML) documents into a structured
// in-memory model: paragraphs and runs with fully resolved styles, plus
// footnotes and endnotes.
//
// Basic usage:
//
//	doc := minidocx.ReadDocument("report.docx")
//	for _, para := range doc.Paragraphs {
//	    fmt.Println(para.Text())
//	}
//
// Both entry points are total: any failure to open or parse the container
// yields an empty document rather than an error. Callers that need the
// cause of a failure can use the lower-level docx package directly:
//
//	r, err := docx.Open("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	doc := r.Document()
package minidocx

import (
	"bytes"

	"github.com/tsawler/minidocx/docx"
	"github.com/tsawler/minidocx/model"
)

// ReadDocument reads a DOCX container at a filesystem path. On any failure
// it returns an empty document.
func ReadDocument(path string) *model.Document {
	r, err := docx.Open(path)
	if err != nil {
		return model.NewDocument()
	}
	return r.Document()
}

// ReadDocumentFromMemory reads a DOCX container from an in-memory byte
// slice. On any failure it returns an empty document.
func ReadDocumentFromMemory(data []byte) *model.Document {
	r, err := docx.OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return model.NewDocument()
	}
	return r.Document()
}
