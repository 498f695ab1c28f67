// Package model provides the in-memory representation of a parsed DOCX
// document.
//
// This package defines the user-facing data structures that the docx package
// produces. All parsing operations ultimately build these types, making them
// the primary API for consuming document content.
//
// # Document Structure
//
// The [Document] type represents a complete document:
//
//	doc := model.NewDocument()
//	for _, para := range doc.Paragraphs {
//	    // ...
//	}
//
// Each [Paragraph] carries its resolved paragraph-level formatting and an
// ordered sequence of [Run] values. A Run is a contiguous span of text that
// shares character-level formatting.
//
// # Styles
//
// [StyleDef] is a named bundle of formatting properties, optionally
// inheriting from another style via its BasedOn field. The Document's style
// map holds the raw (un-merged) definitions; inheritance is flattened by the
// docx package's resolver.
//
// # Notes
//
// Footnotes and endnotes are exposed as [Note] values keyed by their numeric
// id. A Run whose NoteID is non-zero is a reference to such a note rather
// than ordinary text.
package model
