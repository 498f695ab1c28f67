// Package htmldoc renders parsed documents to HTML.
package htmldoc

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/minidocx/model"
	"github.com/tsawler/minidocx/text"
)

// Render writes an HTML rendition of the document to w.
func Render(w io.Writer, doc *model.Document) error {
	r := &renderer{doc: doc}
	return html.Render(w, r.documentNode())
}

// HTML returns the document rendered as an HTML string.
func HTML(doc *model.Document) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// renderer builds an html.Node tree for one document.
type renderer struct {
	doc *model.Document
}

func (r *renderer) documentNode() *html.Node {
	root := elem("html")

	head := elem("head")
	meta := elem("meta")
	meta.Attr = append(meta.Attr, html.Attribute{Key: "charset", Val: "utf-8"})
	head.AppendChild(meta)
	root.AppendChild(head)

	body := elem("body")
	for _, para := range r.doc.Paragraphs {
		body.AppendChild(r.paragraphNode(para))
	}
	r.appendNotes(body, "footnotes", r.doc.Footnotes)
	r.appendNotes(body, "endnotes", r.doc.Endnotes)
	root.AppendChild(body)

	return root
}

// paragraphNode renders one paragraph as a <p> element.
func (r *renderer) paragraphNode(para model.Paragraph) *html.Node {
	p := elem("p")

	if css := paragraphCSS(para); css != "" {
		p.Attr = append(p.Attr, html.Attribute{Key: "style", Val: css})
	}
	if rightToLeft(para) {
		p.Attr = append(p.Attr, html.Attribute{Key: "dir", Val: "rtl"})
	}

	for _, run := range para.Runs {
		p.AppendChild(r.runNode(run))
	}
	return p
}

// rightToLeft decides the rendering direction of a paragraph: the explicit
// bidi flag wins, otherwise the dominant direction of the text.
func rightToLeft(para model.Paragraph) bool {
	if para.RightDirection {
		return true
	}
	return text.DetectDirection(para.Text()) == text.RTL
}

// paragraphCSS maps paragraph formatting to inline CSS.
func paragraphCSS(para model.Paragraph) string {
	var sb strings.Builder
	if para.Justification != model.Left {
		fmt.Fprintf(&sb, "text-align:%s;", para.Justification)
	}
	if para.SpaceBefore > 0 {
		fmt.Fprintf(&sb, "margin-top:%.4gpt;", para.SpaceBefore)
	}
	if para.SpaceAfter > 0 {
		fmt.Fprintf(&sb, "margin-bottom:%.4gpt;", para.SpaceAfter)
	}
	if para.LineSpacing > 0 {
		fmt.Fprintf(&sb, "line-height:%.4g;", para.LineSpacing)
	}
	if para.IndentLeft > 0 {
		fmt.Fprintf(&sb, "padding-left:%.4gpt;", para.IndentLeft)
	}
	if para.IndentRight > 0 {
		fmt.Fprintf(&sb, "padding-right:%.4gpt;", para.IndentRight)
	}
	if para.IndentFirstLine > 0 {
		fmt.Fprintf(&sb, "text-indent:%.4gpt;", para.IndentFirstLine)
	}
	return sb.String()
}

// runNode renders one run. Note references become superscript anchors
// pointing at the rendered note; ordinary runs nest formatting elements
// around the text.
func (r *renderer) runNode(run model.Run) *html.Node {
	if run.NoteID != 0 {
		return r.noteRefNode(run)
	}

	node := textNode(run.Text)

	if run.Subscript {
		node = wrap("sub", node)
	}
	if run.Superscript {
		node = wrap("sup", node)
	}
	if run.Strike {
		node = wrap("s", node)
	}
	if run.Underline {
		node = wrap("u", node)
	}
	if run.Italic {
		node = wrap("em", node)
	}
	if run.Bold {
		node = wrap("strong", node)
	}

	if css := runCSS(run); css != "" {
		span := elem("span")
		span.Attr = append(span.Attr, html.Attribute{Key: "style", Val: css})
		span.AppendChild(node)
		node = span
	}
	return node
}

// runCSS maps run formatting that has no dedicated HTML element to CSS.
func runCSS(run model.Run) string {
	var sb strings.Builder
	if run.FontFamily != "" {
		fmt.Fprintf(&sb, "font-family:'%s';", sanitizeFontFamily(run.FontFamily))
	}
	if run.FontSize > 0 {
		fmt.Fprintf(&sb, "font-size:%.4gpt;", run.FontSize)
	}
	if !run.Color.Empty() {
		fmt.Fprintf(&sb, "color:#%s;", run.Color.Hex())
	}
	if !run.BackColor.Empty() {
		fmt.Fprintf(&sb, "background-color:#%s;", run.BackColor.Hex())
	}
	return sb.String()
}

// sanitizeFontFamily strips characters that could break out of the CSS
// string context.
func sanitizeFontFamily(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == ',' || r == '-' || r == '_':
			return r
		}
		return -1
	}, s)
}

// noteRefNode renders a note-reference run as a superscript anchor.
func (r *renderer) noteRefNode(run model.Run) *html.Node {
	marker := run.Text
	if marker == "" {
		marker = fmt.Sprintf("%d", run.NoteID)
	}

	a := elem("a")
	a.Attr = append(a.Attr, html.Attribute{Key: "href", Val: "#" + r.noteAnchor(run.NoteID)})
	a.AppendChild(textNode(marker))

	return wrap("sup", a)
}

// noteAnchor returns the element id a note reference links to. Footnotes
// take precedence when the same id exists in both collections.
func (r *renderer) noteAnchor(id int) string {
	if _, ok := r.doc.Footnotes[id]; ok {
		return fmt.Sprintf("footnote-%d", id)
	}
	if _, ok := r.doc.Endnotes[id]; ok {
		return fmt.Sprintf("endnote-%d", id)
	}
	return fmt.Sprintf("footnote-%d", id)
}

// appendNotes renders a note collection, sorted by id, as a trailing
// section. Empty collections produce no output.
func (r *renderer) appendNotes(body *html.Node, class string, notes map[int]model.Note) {
	if len(notes) == 0 {
		return
	}

	ids := make([]int, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	body.AppendChild(elem("hr"))
	section := elem("section")
	section.Attr = append(section.Attr, html.Attribute{Key: "class", Val: class})

	// "footnotes" -> "footnote-3"
	prefix := strings.TrimSuffix(class, "s")
	for _, id := range ids {
		div := elem("div")
		div.Attr = append(div.Attr, html.Attribute{Key: "id", Val: fmt.Sprintf("%s-%d", prefix, id)})
		for _, para := range notes[id].Paragraphs {
			div.AppendChild(r.paragraphNode(para))
		}
		section.AppendChild(div)
	}
	body.AppendChild(section)
}

// elem creates an element node with the given tag.
func elem(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

// textNode creates a text node; html.Render escapes its content.
func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// wrap nests node inside a new element with the given tag.
func wrap(tag string, node *html.Node) *html.Node {
	outer := elem(tag)
	outer.AppendChild(node)
	return outer
}
