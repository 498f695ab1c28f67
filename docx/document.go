package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name           `xml:"p"`
	Properties *paragraphPropsXML `xml:"pPr"`
	Runs       []runXML           `xml:"r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML        `xml:"pStyle"`
	NumPr         *numberingPropsXML `xml:"numPr"`
	Justification *justificationXML  `xml:"jc"`
	Spacing       spacingXML         `xml:"spacing"`
	Indent        indentXML          `xml:"ind"`
	OutlineLvl    outlineLvlXML      `xml:"outlineLvl"`
	Tabs          *tabsXML           `xml:"tabs"`
	Bidi          *presenceXML       `xml:"bidi"`
}

// styleRefXML represents a style reference (<w:pStyle>, <w:rStyle>).
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numberingPropsXML represents numbering properties for lists (<w:numPr>).
type numberingPropsXML struct {
	ILvl     valXML  `xml:"ilvl"`
	NumID    *valXML `xml:"numId"`
	NumStyle valXML  `xml:"numStyle"`
}

// valXML represents an element whose payload is a single w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification (<w:jc>).
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing (<w:spacing>).
// All values are twentieths of a point except Line, which is 240ths
// of a line.
type spacingXML struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"` // auto, atLeast, exact
}

// indentXML represents paragraph indentation (<w:ind>).
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
}

// outlineLvlXML represents outline level (<w:outlineLvl>).
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// tabsXML represents a tab stop list (<w:tabs>).
type tabsXML struct {
	Tabs []tabStopXML `xml:"tab"`
}

// tabStopXML represents a single tab stop (<w:tab> inside <w:tabs>).
type tabStopXML struct {
	Pos    string `xml:"pos,attr"`
	Val    string `xml:"val,attr"`
	Leader string `xml:"leader,attr"`
}

// presenceXML captures an element whose mere presence carries the meaning
// (<w:b/>, <w:bidi/>, ...). Present iff XMLName.Local is non-empty.
type presenceXML struct {
	XMLName xml.Name
}

// present reports whether the element occurred in the source.
func (p presenceXML) present() bool {
	return p.XMLName.Local != ""
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName     xml.Name     `xml:"r"`
	Properties  *runPropsXML `xml:"rPr"`
	Text        []textXML    `xml:"t"`
	FootnoteRef *noteRefXML  `xml:"footnoteReference"`
	EndnoteRef  *noteRefXML  `xml:"endnoteReference"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Style       styleRefXML `xml:"rStyle"`
	Bold        presenceXML `xml:"b"`
	Italic      presenceXML `xml:"i"`
	Underline   presenceXML `xml:"u"`
	Strike      presenceXML `xml:"strike"`
	Subscript   presenceXML `xml:"subscript"`
	Superscript presenceXML `xml:"superscript"`
	Color       valXML      `xml:"color"`
	Shading     shadingXML  `xml:"shd"`
	Font        fontXML     `xml:"rFonts"`
	FontSize    valXML      `xml:"sz"`
	Lang        valXML      `xml:"lang"`
}

// shadingXML represents run shading (<w:shd>).
type shadingXML struct {
	Fill string `xml:"fill,attr"`
}

// fontXML represents font settings (<w:rFonts>).
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // "preserve" keeps surrounding spaces
	Value   string   `xml:",chardata"`
}

// noteRefXML represents a footnote or endnote reference inside a run.
type noteRefXML struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// footnotesXML represents the structure of word/footnotes.xml
type footnotesXML struct {
	XMLName xml.Name  `xml:"footnotes"`
	Notes   []noteXML `xml:"footnote"`
}

// endnotesXML represents the structure of word/endnotes.xml
type endnotesXML struct {
	XMLName xml.Name  `xml:"endnotes"`
	Notes   []noteXML `xml:"endnote"`
}

// noteXML represents a single footnote or endnote entry.
type noteXML struct {
	ID         string         `xml:"id,attr"`
	Type       string         `xml:"type,attr"` // separator, continuationSeparator, or empty
	Paragraphs []paragraphXML `xml:"p"`
}
