package slidelens

// defaultLineSpacingBase is the font size, in points, used to resolve a
// multiplier line spacing when the paragraph's own font size is unknown.
const defaultLineSpacingBase = 12.0

// ParagraphRecord is the serialized per-paragraph style record. Optional
// fields are omitted entirely when unknown, never emitted as nulls, to keep
// the record minimal.
type ParagraphRecord struct {
	Text   string `json:"text"`
	Bullet bool   `json:"bullet,omitempty"`
	// Level is recorded only for bulleted paragraphs, where an explicit
	// zero is meaningful and must survive serialization.
	Level       *int     `json:"level,omitempty"`
	Alignment   string   `json:"alignment,omitempty"`
	SpaceBefore *float64 `json:"space_before,omitempty"`
	SpaceAfter  *float64 `json:"space_after,omitempty"`
	FontName    string   `json:"font_name,omitempty"`
	FontSize    *float64 `json:"font_size,omitempty"`
	Bold        *bool    `json:"bold,omitempty"`
	Italic      *bool    `json:"italic,omitempty"`
	Underline   *bool    `json:"underline,omitempty"`
	Color       string   `json:"color,omitempty"`
	ThemeColor  string   `json:"theme_color,omitempty"`
	LineSpacing *float64 `json:"line_spacing,omitempty"`
}

// ExtractParagraph builds the style record for one paragraph. It returns
// false when the paragraph has no non-empty runs and therefore nothing to
// record. Style attributes come from the paragraph's first contributing
// run only; genuinely mixed-run paragraphs are summarized by their leading
// run, a deliberate simplification.
func ExtractParagraph(p *Paragraph) (ParagraphRecord, bool) {
	text := p.Text()
	if text == "" {
		return ParagraphRecord{}, false
	}

	rec := ParagraphRecord{
		Text:      text,
		Alignment: alignmentName(p.Alignment),
	}

	// A bullet is present only when the paragraph declares an explicit
	// bullet character or auto-numbering marker; indent level alone does
	// not imply one. The indent level accompanies the bullet flag, so a
	// non-bulleted paragraph never carries one and a bulleted top-level
	// paragraph keeps its explicit zero.
	if p.Bullet != nil && p.Bullet.Type != BulletNone {
		rec.Bullet = true
		lvl := p.Level
		rec.Level = &lvl
	}

	if p.SpaceBefore != nil {
		v := round2(float64(*p.SpaceBefore) / 100)
		rec.SpaceBefore = &v
	}
	if p.SpaceAfter != nil {
		v := round2(float64(*p.SpaceAfter) / 100)
		rec.SpaceAfter = &v
	}

	run := p.FirstRun()
	if run != nil {
		rec.FontName = run.FontName
		if run.FontSize != nil {
			v := round2(float64(*run.FontSize) / 100)
			rec.FontSize = &v
		}
		rec.Bold = run.Bold
		rec.Italic = run.Italic
		rec.Underline = run.Underline

		// Explicit RGB wins; theme color is the fallback. When neither
		// resolves, both fields stay absent.
		if run.ColorRGB != "" {
			rec.Color = run.ColorRGB
		} else if run.ThemeColor != "" {
			rec.ThemeColor = run.ThemeColor
		}
	}

	if p.LineSpacing != nil {
		v := resolveLineSpacing(*p.LineSpacing, rec.FontSize)
		rec.LineSpacing = &v
	}

	return rec, true
}

// resolveLineSpacing turns the OOXML line spacing encoding into points.
// Positive values are hundredths of a point and used directly; negative
// values are a percentage in thousandths, resolved against the paragraph's
// own font size when known, else a fixed 12pt base.
func resolveLineSpacing(raw int, fontSize *float64) float64 {
	if raw >= 0 {
		return round2(float64(raw) / 100)
	}
	multiplier := float64(-raw) / 100000
	base := defaultLineSpacingBase
	if fontSize != nil {
		base = *fontSize
	}
	return round2(multiplier * base)
}

// alignmentName maps a non-default alignment to its output name. Only
// center, right and justify are named; left, distributed and unspecified
// alignments yield "", which is omitted from output.
func alignmentName(a HorizontalAlignment) string {
	switch a {
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	case AlignJustify:
		return "JUSTIFY"
	default:
		return ""
	}
}
