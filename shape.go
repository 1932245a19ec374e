package slidelens

import "strings"

// ShapeKind classifies the shapes materialized from a slide. Only the kinds
// that matter for inventory extraction are modeled; pictures, connectors,
// charts and tables are skipped at parse time.
type ShapeKind int

const (
	ShapeKindText ShapeKind = iota
	ShapeKindGroup
)

// Shape is the interface implemented by all materialized shapes.
type Shape interface {
	Kind() ShapeKind
}

// PlaceholderType identifies the layout role a placeholder shape inherits
// from its slide template.
type PlaceholderType string

const (
	PlaceholderTitle    PlaceholderType = "title"
	PlaceholderCtrTitle PlaceholderType = "ctrTitle"
	PlaceholderSubTitle PlaceholderType = "subTitle"
	PlaceholderBody     PlaceholderType = "body"
	PlaceholderDate     PlaceholderType = "dt"
	PlaceholderFooter   PlaceholderType = "ftr"
	PlaceholderSlideNum PlaceholderType = "sldNum"
)

// TextShape is a leaf shape carrying text. Geometry is in EMU relative to
// the containing group (or the slide for top-level shapes). Zero offsets
// mean the attribute was absent from the source.
type TextShape struct {
	Name        string
	OffsetX     int64
	OffsetY     int64
	Width       int64
	Height      int64
	Placeholder PlaceholderType // "" when the shape is not a placeholder
	// DefaultFontSize is the shape-level default run size from the text
	// body list style, in hundredths of a point. 0 means unset.
	DefaultFontSize int
	Paragraphs      []*Paragraph
}

func (s *TextShape) Kind() ShapeKind { return ShapeKindText }

// PlainText returns the concatenated run text of all paragraphs, one line
// per paragraph.
func (s *TextShape) PlainText() string {
	var lines []string
	for _, p := range s.Paragraphs {
		if t := p.Text(); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}

// GroupShape is a container whose children are positioned relative to it.
type GroupShape struct {
	Name    string
	OffsetX int64
	OffsetY int64
	Width   int64
	Height  int64
	Shapes  []Shape
}

func (g *GroupShape) Kind() ShapeKind { return ShapeKindGroup }

// HorizontalAlignment represents horizontal text alignment, using the OOXML
// attribute values.
type HorizontalAlignment string

const (
	AlignLeft        HorizontalAlignment = "l"
	AlignCenter      HorizontalAlignment = "ctr"
	AlignRight       HorizontalAlignment = "r"
	AlignJustify     HorizontalAlignment = "just"
	AlignDistributed HorizontalAlignment = "dist"
)

// BulletType represents the bullet marker kind declared on a paragraph.
type BulletType int

const (
	BulletNone BulletType = iota
	BulletChar
	BulletAutoNum
)

// Bullet holds the bullet declaration read from paragraph properties. A nil
// Bullet on a Paragraph means no declaration was present at all.
type Bullet struct {
	Type BulletType
	Char string // bullet character for BulletChar
	// NumFormat is the auto-numbering scheme, e.g. "arabicPeriod".
	NumFormat string
}

// Paragraph is one paragraph of a text body. Optional scalar properties are
// pointers so that "absent" and "explicit zero" stay distinguishable.
type Paragraph struct {
	Runs      []*TextRun
	Bullet    *Bullet
	Level     int
	Alignment HorizontalAlignment // "" when unspecified (default left)
	// SpaceBefore and SpaceAfter are in hundredths of a point.
	SpaceBefore *int
	SpaceAfter  *int
	// LineSpacing follows the OOXML encoding: positive values are
	// hundredths of a point (spcPts), negative values are a percentage in
	// thousandths (spcPct), e.g. -150000 for a 1.5x multiplier.
	LineSpacing *int
}

// Text returns the concatenated text of all non-empty runs, trimmed.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return strings.TrimSpace(sb.String())
}

// FirstRun returns the first run with non-empty text, or nil.
func (p *Paragraph) FirstRun() *TextRun {
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return r
		}
	}
	return nil
}

// TextRun is a run of uniformly formatted text. Tri-state attributes are
// pointers: nil means the source did not specify the attribute.
type TextRun struct {
	Text      string
	FontName  string
	FontSize  *int // hundredths of a point
	Bold      *bool
	Italic    *bool
	Underline *bool
	// ColorRGB is an explicit 6-char uppercase RGB hex value and
	// ThemeColor a theme color name; at most one is set.
	ColorRGB   string
	ThemeColor string
}

// Slide holds the parsed shape tree of one slide plus its visibility flag.
type Slide struct {
	Shapes []Shape
	Hidden bool
}

// Document is the parsed presentation: slides in document order and the
// slide canvas size in EMU.
type Document struct {
	Path        string
	Slides      []*Slide
	SlideWidth  int64
	SlideHeight int64
}

// VisibleSlideCount returns the number of slides not flagged hidden.
func (d *Document) VisibleSlideCount() int {
	n := 0
	for _, s := range d.Slides {
		if !s.Hidden {
			n++
		}
	}
	return n
}
