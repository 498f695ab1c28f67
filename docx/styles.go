package docx

import (
	"encoding/xml"

	"github.com/tsawler/minidocx/model"
)

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition (<w:style>).
type styleDefXML struct {
	XMLName xml.Name           `xml:"style"`
	Type    string             `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string             `xml:"styleId,attr"`
	BasedOn valXML             `xml:"basedOn"`
	PPr     *paragraphPropsXML `xml:"pPr"`
	RPr     *runPropsXML       `xml:"rPr"`
}

// parseStyles parses styles.xml into a map of styleId to raw (un-merged)
// style definitions. Missing or malformed input yields the empty map.
func parseStyles(data []byte) map[string]model.StyleDef {
	styles := make(map[string]model.StyleDef)
	if len(data) == 0 {
		return styles
	}

	var parsed stylesXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return styles
	}

	for _, s := range parsed.Styles {
		if s.StyleID == "" {
			continue
		}

		def := model.NewStyleDef()
		if s.Type == "paragraph" {
			def.Kind = model.ParagraphKind
		} else {
			def.Kind = model.RunKind
		}
		def.BasedOn = s.BasedOn.Val

		if s.RPr != nil {
			applyRunProps(&def, s.RPr)
		}
		if s.PPr != nil {
			applyParagraphProps(&def, s.PPr)
		}

		styles[s.StyleID] = def
	}

	return styles
}

// applyRunProps fills the character-level fields of a style definition from
// a <w:rPr> block. Flag elements are presence-based; w:val is ignored.
func applyRunProps(def *model.StyleDef, rpr *runPropsXML) {
	if rpr.Bold.present() {
		def.Bold = true
	}
	if rpr.Italic.present() {
		def.Italic = true
	}
	if rpr.Underline.present() {
		def.Underline = true
	}
	if rpr.Strike.present() {
		def.Strike = true
	}
	if rpr.Subscript.present() {
		def.Subscript = true
	}
	if rpr.Superscript.present() {
		def.Superscript = true
	}
	if rpr.Color.Val != "" {
		def.Color = model.ParseColor(rpr.Color.Val)
	}
	if rpr.Shading.Fill != "" {
		def.BackColor = model.ParseColor(rpr.Shading.Fill)
	}
	if rpr.Font.ASCII != "" {
		def.FontFamily = rpr.Font.ASCII
	}
	if rpr.FontSize.Val != "" {
		def.FontSize = parseHalfPoints(rpr.FontSize.Val)
	}
}

// applyParagraphProps fills the paragraph-level fields of a style definition
// from a <w:pPr> block.
func applyParagraphProps(def *model.StyleDef, ppr *paragraphPropsXML) {
	if ppr.OutlineLvl.Val != "" {
		def.Level = parseInt(ppr.OutlineLvl.Val)
	}

	if ppr.NumPr != nil {
		def.Numbered = true
		if ppr.NumPr.NumID != nil {
			// A list is attached but the literal format lives in
			// numbering.xml, which this library does not resolve.
			def.NumberFormat = "decimal"
		}
		if ppr.NumPr.ILvl.Val != "" {
			def.Level = parseInt(ppr.NumPr.ILvl.Val)
		}
		if ppr.NumPr.NumStyle.Val != "" {
			def.NumberStyle = ppr.NumPr.NumStyle.Val
		}
	}

	if ppr.Spacing.Line != "" {
		def.LineSpacing = parseLineSpacing(ppr.Spacing.Line)
	}
	if ppr.Spacing.Before != "" {
		def.SpaceBefore = parseTwips(ppr.Spacing.Before)
	}
	if ppr.Spacing.After != "" {
		def.SpaceAfter = parseTwips(ppr.Spacing.After)
	}
	if ppr.Spacing.LineRule == "exact" {
		def.SpaceBetweenSameStyle = true
	}

	if ppr.Indent.Left != "" {
		def.IndentLeft = parseTwips(ppr.Indent.Left)
	}
	if ppr.Indent.Right != "" {
		def.IndentRight = parseTwips(ppr.Indent.Right)
	}
	if ppr.Indent.FirstLine != "" {
		def.IndentFirstLine = parseTwips(ppr.Indent.FirstLine)
	}

	if ppr.Justification != nil {
		def.Justification = parseJustification(ppr.Justification.Val)
	}

	if ppr.Tabs != nil {
		def.Tabs = parseTabStops(ppr.Tabs)
	}

	if ppr.Bidi != nil {
		def.RightDirection = true
	}
}

// parseJustification maps a w:jc value to a Justification. Unrecognized
// values (including the empty string) map to Left.
func parseJustification(val string) model.Justification {
	switch val {
	case "center":
		return model.Center
	case "right":
		return model.Right
	case "both":
		return model.Justify
	default:
		return model.Left
	}
}

// parseTabStops converts a <w:tabs> block to tab stops, preserving order.
func parseTabStops(tabs *tabsXML) []model.TabStop {
	out := make([]model.TabStop, 0, len(tabs.Tabs))
	for _, t := range tabs.Tabs {
		ts := model.TabStop{Alignment: 'L'}
		if t.Pos != "" {
			ts.Position = parseTwips(t.Pos)
		}
		if t.Val != "" {
			ts.Alignment = t.Val[0] // first letter, case kept: "right" -> 'r'
		}
		ts.Leader = t.Leader
		out = append(out, ts)
	}
	return out
}
