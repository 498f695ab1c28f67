package docx

import (
	"strconv"

	"github.com/tsawler/minidocx/model"
)

// StyleResolver flattens the basedOn inheritance chain of style definitions,
// memoising each result. A resolver (and its cache) is scoped to a single
// document load; concurrent loads must each use their own resolver.
type StyleResolver struct {
	styles map[string]model.StyleDef
	cache  map[string]model.StyleDef
}

// NewStyleResolver creates a resolver over a raw style map.
func NewStyleResolver(styles map[string]model.StyleDef) *StyleResolver {
	return &StyleResolver{
		styles: styles,
		cache:  make(map[string]model.StyleDef),
	}
}

// Resolve returns the fully merged definition of the named style. The empty
// id resolves to the all-unset definition; unknown ids resolve to the same
// and are cached. Cycles in the basedOn graph terminate: the id is seeded
// into the cache before recursion, so a cyclic lookup sees the partial
// (default) entry instead of recursing forever.
func (sr *StyleResolver) Resolve(id string) model.StyleDef {
	if id == "" {
		return model.NewStyleDef()
	}

	if cached, ok := sr.cache[id]; ok {
		return cached
	}

	cur, ok := sr.styles[id]
	if !ok {
		def := model.NewStyleDef()
		sr.cache[id] = def
		return def
	}

	// Cycle breaker: visible to recursive lookups of the same id.
	sr.cache[id] = model.NewStyleDef()

	result := model.NewStyleDef()
	if cur.BasedOn != "" {
		result = sr.Resolve(cur.BasedOn)
	}
	overlayStyle(&result, cur)

	sr.cache[id] = result
	return result
}

// overlayStyle merges cur onto an inherited base in place. Each field is
// taken from cur only when set there: booleans are sticky-true, strings
// override when non-empty, numerics when strictly positive, colors when
// non-empty, and justification when not Left. Tab stops append.
func overlayStyle(result *model.StyleDef, cur model.StyleDef) {
	// Kind is per-style metadata, not inherited.
	result.Kind = cur.Kind
	if cur.BasedOn != "" {
		result.BasedOn = cur.BasedOn
	}

	if cur.Bold {
		result.Bold = true
	}
	if cur.Italic {
		result.Italic = true
	}
	if cur.Underline {
		result.Underline = true
	}
	if cur.Strike {
		result.Strike = true
	}
	if cur.Subscript {
		result.Subscript = true
	}
	if cur.Superscript {
		result.Superscript = true
	}

	if !cur.Color.Empty() {
		result.Color = cur.Color
	}
	if !cur.BackColor.Empty() {
		result.BackColor = cur.BackColor
	}
	if cur.FontFamily != "" {
		result.FontFamily = cur.FontFamily
	}
	if cur.FontSize > 0 {
		result.FontSize = cur.FontSize
	}

	if cur.LineSpacing > 0 {
		result.LineSpacing = cur.LineSpacing
	}
	if cur.SpaceBefore > 0 {
		result.SpaceBefore = cur.SpaceBefore
	}
	if cur.SpaceAfter > 0 {
		result.SpaceAfter = cur.SpaceAfter
	}
	if cur.SpaceBetweenSameStyle {
		result.SpaceBetweenSameStyle = true
	}
	if cur.Justification != model.Left {
		result.Justification = cur.Justification
	}
	if cur.RightDirection {
		result.RightDirection = true
	}
	if cur.IndentLeft > 0 {
		result.IndentLeft = cur.IndentLeft
	}
	if cur.IndentRight > 0 {
		result.IndentRight = cur.IndentRight
	}
	if cur.IndentFirstLine > 0 {
		result.IndentFirstLine = cur.IndentFirstLine
	}

	if len(cur.Tabs) > 0 {
		tabs := make([]model.TabStop, 0, len(result.Tabs)+len(cur.Tabs))
		tabs = append(tabs, result.Tabs...)
		tabs = append(tabs, cur.Tabs...)
		result.Tabs = tabs
	}

	if cur.Numbered {
		result.Numbered = true
	}
	if cur.NumberFormat != "" {
		result.NumberFormat = cur.NumberFormat
	}
	if cur.NumberStyle != "" {
		result.NumberStyle = cur.NumberStyle
	}
	if cur.Level > 0 {
		result.Level = cur.Level
	}
}

// parseHalfPoints parses a size in half-points to points.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 2
}

// parseTwips parses a size in twips (twentieths of a point) to points.
func parseTwips(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 20
}

// parseLineSpacing parses a w:line value into a line-spacing multiplier.
// 240 twentieths of a point is single spacing.
func parseLineSpacing(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 240
}

// parseInt parses an integer attribute, treating malformed values as 0.
func parseInt(s string) int {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}
