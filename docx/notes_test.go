package docx

import (
	"testing"

	"github.com/tsawler/minidocx/model"
)

func TestParseFootnotes_Empty(t *testing.T) {
	sr := emptyResolver()

	if got := parseFootnotes(nil, sr); len(got) != 0 {
		t.Errorf("parseFootnotes(nil) = %v, want empty map", got)
	}
	if got := parseFootnotes([]byte("<<< not xml"), sr); len(got) != 0 {
		t.Errorf("parseFootnotes(malformed) = %v, want empty map", got)
	}
}

func TestParseFootnotes_SkipsSeparators(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:id="-1" w:type="separator"><w:p><w:r><w:t></w:t></w:r></w:p></w:footnote>
  <w:footnote w:id="0" w:type="continuationSeparator"><w:p><w:r><w:t></w:t></w:r></w:p></w:footnote>
  <w:footnote w:id="1"><w:p><w:r><w:t>note</w:t></w:r></w:p></w:footnote>
</w:footnotes>`)

	notes := parseFootnotes(data, emptyResolver())

	if len(notes) != 1 {
		t.Fatalf("notes = %d entries, want 1", len(notes))
	}
	note, ok := notes[1]
	if !ok {
		t.Fatal("note with id 1 missing")
	}
	if note.ID != 1 {
		t.Errorf("ID = %d, want 1", note.ID)
	}
	if len(note.Paragraphs) != 1 || note.Paragraphs[0].Text() != "note" {
		t.Errorf("paragraphs = %+v, want one paragraph with text \"note\"", note.Paragraphs)
	}
}

func TestParseFootnotes_MultipleParagraphs(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:id="2">
    <w:p><w:r><w:t>first</w:t></w:r></w:p>
    <w:p><w:r><w:t>second</w:t></w:r></w:p>
  </w:footnote>
</w:footnotes>`)

	notes := parseFootnotes(data, emptyResolver())
	if len(notes[2].Paragraphs) != 2 {
		t.Fatalf("paragraphs = %d, want 2", len(notes[2].Paragraphs))
	}
	if notes[2].Paragraphs[1].Text() != "second" {
		t.Errorf("second paragraph = %q", notes[2].Paragraphs[1].Text())
	}
}

func TestParseFootnotes_SkipsUnparseableID(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote><w:p><w:r><w:t>orphan</w:t></w:r></w:p></w:footnote>
  <w:footnote w:id="abc"><w:p><w:r><w:t>bad</w:t></w:r></w:p></w:footnote>
  <w:footnote w:id="3"><w:p><w:r><w:t>good</w:t></w:r></w:p></w:footnote>
</w:footnotes>`)

	notes := parseFootnotes(data, emptyResolver())
	if len(notes) != 1 {
		t.Fatalf("notes = %d entries, want 1", len(notes))
	}
	if _, ok := notes[3]; !ok {
		t.Error("note with numeric id should be kept")
	}
}

func TestParseEndnotes(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:endnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:endnote w:id="-1" w:type="separator"><w:p/></w:endnote>
  <w:endnote w:id="1"><w:p><w:r><w:t>closing remark</w:t></w:r></w:p></w:endnote>
</w:endnotes>`)

	notes := parseEndnotes(data, emptyResolver())
	if len(notes) != 1 {
		t.Fatalf("notes = %d entries, want 1", len(notes))
	}
	if notes[1].Paragraphs[0].Text() != "closing remark" {
		t.Errorf("text = %q", notes[1].Paragraphs[0].Text())
	}
}

func TestParseFootnotes_StyledContent(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:id="1">
    <w:p><w:r><w:rPr><w:rStyle w:val="Emph"/></w:rPr><w:t>styled</w:t></w:r></w:p>
  </w:footnote>
</w:footnotes>`)

	emph := model.NewStyleDef()
	emph.Kind = model.RunKind
	emph.Italic = true

	notes := parseFootnotes(data, NewStyleResolver(map[string]model.StyleDef{"Emph": emph}))
	run := notes[1].Paragraphs[0].Runs[0]
	if !run.Italic {
		t.Error("note paragraphs should resolve styles with the shared resolver")
	}
}
