package docx

import (
	"encoding/xml"
	"strconv"

	"github.com/tsawler/minidocx/model"
)

// parseFootnotes parses footnotes.xml into notes keyed by id. Separator and
// continuation-separator entries are skipped; so are entries without a
// parseable id. Missing or malformed input yields the empty map.
func parseFootnotes(data []byte, sr *StyleResolver) map[int]model.Note {
	var parsed footnotesXML
	if len(data) == 0 || xml.Unmarshal(data, &parsed) != nil {
		return make(map[int]model.Note)
	}
	return collectNotes(parsed.Notes, sr)
}

// parseEndnotes parses endnotes.xml, symmetric to parseFootnotes.
func parseEndnotes(data []byte, sr *StyleResolver) map[int]model.Note {
	var parsed endnotesXML
	if len(data) == 0 || xml.Unmarshal(data, &parsed) != nil {
		return make(map[int]model.Note)
	}
	return collectNotes(parsed.Notes, sr)
}

func collectNotes(entries []noteXML, sr *StyleResolver) map[int]model.Note {
	notes := make(map[int]model.Note)

	for _, entry := range entries {
		if entry.Type == "separator" || entry.Type == "continuationSeparator" {
			continue
		}
		id, err := strconv.Atoi(entry.ID)
		if err != nil {
			continue
		}

		paragraphs := make([]model.Paragraph, 0, len(entry.Paragraphs))
		for _, p := range entry.Paragraphs {
			paragraphs = append(paragraphs, readParagraph(p, sr))
		}

		notes[id] = model.Note{ID: id, Paragraphs: paragraphs}
	}

	return notes
}
