package docx

import (
	"strconv"
	"strings"

	"github.com/tsawler/minidocx/model"
)

// defaultParagraphStyle is the style assumed for paragraphs without an
// explicit <w:pStyle>.
const defaultParagraphStyle = "Normal"

// readParagraph converts one <w:p> element into a Paragraph. Paragraph
// fields are seeded from the resolved paragraph style, then overlaid with
// direct <w:pPr> properties; each run composes its resolved run style with
// direct <w:rPr> properties. Adjacent runs with identical style fingerprints
// are merged before returning.
func readParagraph(p paragraphXML, sr *StyleResolver) model.Paragraph {
	pStyleID := ""
	if p.Properties != nil {
		pStyleID = p.Properties.Style.Val
	}
	if pStyleID == "" {
		pStyleID = defaultParagraphStyle
	}

	paraStyle := sr.Resolve(pStyleID)

	para := model.Paragraph{
		StyleID:               pStyleID,
		Level:                 paraStyle.Level,
		Numbered:              paraStyle.Numbered,
		NumberFormat:          paraStyle.NumberFormat,
		NumberStyle:           paraStyle.NumberStyle,
		Justification:         paraStyle.Justification,
		RightDirection:        paraStyle.RightDirection,
		SpaceBefore:           paraStyle.SpaceBefore,
		SpaceAfter:            paraStyle.SpaceAfter,
		SpaceBetweenSameStyle: paraStyle.SpaceBetweenSameStyle,
		IndentLeft:            paraStyle.IndentLeft,
		IndentRight:           paraStyle.IndentRight,
		IndentFirstLine:       paraStyle.IndentFirstLine,
		Tabs:                  paraStyle.Tabs,
	}
	if paraStyle.LineSpacing > 0 {
		para.LineSpacing = paraStyle.LineSpacing
	}

	if p.Properties != nil {
		overlayDirectParagraphProps(&para, p.Properties)
	}

	runs := make([]model.Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		runs = append(runs, readRun(r, pStyleID, sr))
	}
	para.Runs = mergeAdjacentRuns(runs)

	return para
}

// overlayDirectParagraphProps applies direct <w:pPr> properties on top of
// the style-derived paragraph fields. Direct tab stops replace the inherited
// list; the other fields override whenever present.
func overlayDirectParagraphProps(para *model.Paragraph, ppr *paragraphPropsXML) {
	if ppr.NumPr != nil {
		para.Numbered = true
		if ppr.NumPr.NumID != nil {
			para.NumberFormat = "decimal"
		}
		if ppr.NumPr.ILvl.Val != "" {
			para.Level = parseInt(ppr.NumPr.ILvl.Val)
		}
		if ppr.NumPr.NumStyle.Val != "" {
			para.NumberStyle = ppr.NumPr.NumStyle.Val
		}
	}

	if ppr.Justification != nil {
		para.Justification = parseJustification(ppr.Justification.Val)
	}
	if ppr.Bidi != nil {
		para.RightDirection = true
	}

	if ppr.Indent.Left != "" {
		para.IndentLeft = parseTwips(ppr.Indent.Left)
	}
	if ppr.Indent.Right != "" {
		para.IndentRight = parseTwips(ppr.Indent.Right)
	}
	if ppr.Indent.FirstLine != "" {
		para.IndentFirstLine = parseTwips(ppr.Indent.FirstLine)
	}

	if ppr.Spacing.Line != "" {
		para.LineSpacing = parseLineSpacing(ppr.Spacing.Line)
	}
	if ppr.Spacing.Before != "" {
		para.SpaceBefore = parseTwips(ppr.Spacing.Before)
	}
	if ppr.Spacing.After != "" {
		para.SpaceAfter = parseTwips(ppr.Spacing.After)
	}
	if ppr.Spacing.LineRule == "exact" {
		para.SpaceBetweenSameStyle = true
	}

	if ppr.Tabs != nil {
		para.Tabs = parseTabStops(ppr.Tabs)
	}
}

// readRun converts one <w:r> element into a Run. A footnote or endnote
// reference short-circuits into a marker run carrying the note id.
func readRun(r runXML, pStyleID string, sr *StyleResolver) model.Run {
	if ref := noteReference(r); ref != nil {
		if id, err := strconv.Atoi(ref.ID); err == nil {
			run := model.NewRun()
			run.NoteID = id
			run.Text = ref.Text
			return run
		}
	}

	run := model.NewRun()

	if len(r.Text) > 0 {
		t := r.Text[0]
		run.Text = t.Value
		if t.Space != "preserve" {
			run.Text = strings.Trim(run.Text, " ")
		}
	}

	rStyleID := ""
	if r.Properties != nil {
		rStyleID = r.Properties.Style.Val
	}
	if rStyleID == "" {
		rStyleID = pStyleID
	}
	run.StyleID = rStyleID

	rStyle := sr.Resolve(rStyleID)
	if rStyle.Bold {
		run.Bold = true
	}
	if rStyle.Italic {
		run.Italic = true
	}
	if rStyle.Underline {
		run.Underline = true
	}
	if rStyle.Strike {
		run.Strike = true
	}
	if rStyle.Subscript {
		run.Subscript = true
	}
	if rStyle.Superscript {
		run.Superscript = true
	}
	if !rStyle.Color.Empty() {
		run.Color = rStyle.Color
	}
	if !rStyle.BackColor.Empty() {
		run.BackColor = rStyle.BackColor
	}
	if rStyle.FontFamily != "" {
		run.FontFamily = rStyle.FontFamily
	}
	if rStyle.FontSize > 0 {
		run.FontSize = rStyle.FontSize
	}

	if r.Properties != nil {
		overlayDirectRunProps(&run, r.Properties)
	}

	return run
}

// noteReference returns the footnote or endnote reference of a run, if any.
func noteReference(r runXML) *noteRefXML {
	if r.FootnoteRef != nil && r.FootnoteRef.ID != "" {
		return r.FootnoteRef
	}
	if r.EndnoteRef != nil && r.EndnoteRef.ID != "" {
		return r.EndnoteRef
	}
	return nil
}

// overlayDirectRunProps applies direct <w:rPr> properties on top of the
// style-derived run fields. Flags are additive: there is no direct way to
// clear an inherited true.
func overlayDirectRunProps(run *model.Run, rpr *runPropsXML) {
	if rpr.Lang.Val != "" {
		run.Lang = rpr.Lang.Val
	}
	if rpr.Bold.present() {
		run.Bold = true
	}
	if rpr.Italic.present() {
		run.Italic = true
	}
	if rpr.Underline.present() {
		run.Underline = true
	}
	if rpr.Strike.present() {
		run.Strike = true
	}
	if rpr.Subscript.present() {
		run.Subscript = true
	}
	if rpr.Superscript.present() {
		run.Superscript = true
	}
	if rpr.Color.Val != "" {
		run.Color = model.ParseColor(rpr.Color.Val)
	}
	if rpr.Shading.Fill != "" {
		run.BackColor = model.ParseColor(rpr.Shading.Fill)
	}
	if rpr.Font.ASCII != "" {
		run.FontFamily = rpr.Font.ASCII
	}
	if rpr.FontSize.Val != "" {
		run.FontSize = parseHalfPoints(rpr.FontSize.Val)
	}
}

// mergeAdjacentRuns coalesces adjacent runs with identical style
// fingerprints, concatenating their text. Note-reference runs are never
// merged. The operation is idempotent and preserves the concatenated text.
func mergeAdjacentRuns(runs []model.Run) []model.Run {
	if len(runs) < 2 {
		return runs
	}

	merged := make([]model.Run, 0, len(runs))
	merged = append(merged, runs[0])

	for _, r := range runs[1:] {
		last := &merged[len(merged)-1]
		if last.SameStyle(r) {
			last.Text += r.Text
		} else {
			merged = append(merged, r)
		}
	}

	return merged
}
