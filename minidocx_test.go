package minidocx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// buildDOCX assembles a minimal single-paragraph DOCX archive in memory.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating document.xml: %v", err)
	}
	w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body + `</w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

func TestReadDocumentFromMemory(t *testing.T) {
	data := buildDOCX(t, `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>hello</w:t></w:r></w:p>`)

	doc := ReadDocumentFromMemory(data)
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("Paragraphs = %d, want 1", len(doc.Paragraphs))
	}
	run := doc.Paragraphs[0].Runs[0]
	if run.Text != "hello" || !run.Bold {
		t.Errorf("run = %+v, want bold \"hello\"", run)
	}
}

func TestReadDocumentFromMemory_Garbage(t *testing.T) {
	doc := ReadDocumentFromMemory([]byte("definitely not a zip archive"))

	if doc == nil {
		t.Fatal("expected an empty document, got nil")
	}
	if len(doc.Paragraphs) != 0 || len(doc.Styles) != 0 {
		t.Errorf("garbage input should yield an empty document, got %+v", doc)
	}
}

func TestReadDocumentFromMemory_Empty(t *testing.T) {
	doc := ReadDocumentFromMemory(nil)
	if doc == nil || len(doc.Paragraphs) != 0 {
		t.Error("nil input should yield an empty document")
	}
}

func TestReadDocument(t *testing.T) {
	data := buildDOCX(t, `<w:p><w:r><w:t>from disk</w:t></w:r></w:p>`)
	path := filepath.Join(t.TempDir(), "sample.docx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc := ReadDocument(path)
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("Paragraphs = %d, want 1", len(doc.Paragraphs))
	}
	if got := doc.Paragraphs[0].Text(); got != "from disk" {
		t.Errorf("Text() = %q, want %q", got, "from disk")
	}
}

func TestReadDocument_Missing(t *testing.T) {
	doc := ReadDocument("/nonexistent/path.docx")
	if doc == nil {
		t.Fatal("expected an empty document, got nil")
	}
	if len(doc.Paragraphs) != 0 {
		t.Error("missing file should yield an empty document")
	}
}

func TestReadDocument_ParallelLoads(t *testing.T) {
	boldDoc := buildDOCX(t, `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r></w:p>`)
	plainDoc := buildDOCX(t, `<w:p><w:r><w:t>plain</w:t></w:r></w:p>`)

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			bold := i%2 == 0
			t.Run("load", func(t *testing.T) {
				t.Parallel()
				data := plainDoc
				if bold {
					data = boldDoc
				}
				doc := ReadDocumentFromMemory(data)
				if len(doc.Paragraphs) != 1 {
					t.Fatalf("Paragraphs = %d, want 1", len(doc.Paragraphs))
				}
				if doc.Paragraphs[0].Runs[0].Bold != bold {
					t.Errorf("Bold = %v, want %v", doc.Paragraphs[0].Runs[0].Bold, bold)
				}
			})
		}
	})
}
