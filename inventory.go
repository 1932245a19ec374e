package slidelens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ShapeRecord is the serialized record for one qualifying shape. Geometry
// is in inches rounded to two decimals. Records are constructed once per
// extraction run and not mutated afterwards.
type ShapeRecord struct {
	Left            float64           `json:"left"`
	Top             float64           `json:"top"`
	Width           float64           `json:"width"`
	Height          float64           `json:"height"`
	PlaceholderType string            `json:"placeholder_type,omitempty"`
	DefaultFontSize *float64          `json:"default_font_size,omitempty"`
	Warnings        []string          `json:"warnings,omitempty"`
	Paragraphs      []ParagraphRecord `json:"paragraphs"`
}

// HasIssues reports whether the record carries layout diagnostics.
func (r *ShapeRecord) HasIssues() bool {
	return len(r.Warnings) > 0
}

// SlideInventory maps slide keys ("slide-I", document order, zero-based)
// to shape keys ("shape-N", visual order, zero-based) to shape records.
// Slides with no qualifying shapes are omitted entirely.
type SlideInventory map[string]map[string]*ShapeRecord

// BuildInventory derives the full shape inventory of a document: per slide,
// the shape tree is flattened to absolutely positioned leaves, filtered,
// sorted into reading order, and serialized with ids assigned by final
// visual position.
func BuildInventory(doc *Document) SlideInventory {
	inv := SlideInventory{}
	for i, slide := range doc.Slides {
		ordered := SortVisual(FlattenShapes(slide.Shapes, 0, 0))
		if len(ordered) == 0 {
			continue
		}

		records := make([]*ShapeRecord, len(ordered))
		for j, ps := range ordered {
			records[j] = buildShapeRecord(ps)
		}
		annotateLayoutIssues(ordered, records, doc.SlideWidth, doc.SlideHeight)

		shapes := make(map[string]*ShapeRecord, len(records))
		for j, rec := range records {
			shapes[fmt.Sprintf("shape-%d", j)] = rec
		}
		inv[fmt.Sprintf("slide-%d", i)] = shapes
	}
	return inv
}

func buildShapeRecord(ps PositionedShape) *ShapeRecord {
	s := ps.Shape
	rec := &ShapeRecord{
		Left:            round2(EMUToInch(ps.Left)),
		Top:             round2(EMUToInch(ps.Top)),
		Width:           round2(EMUToInch(s.Width)),
		Height:          round2(EMUToInch(s.Height)),
		PlaceholderType: string(s.Placeholder),
		Paragraphs:      make([]ParagraphRecord, 0, len(s.Paragraphs)),
	}
	if s.DefaultFontSize > 0 {
		v := round2(float64(s.DefaultFontSize) / 100)
		rec.DefaultFontSize = &v
	}
	for _, p := range s.Paragraphs {
		if pr, ok := ExtractParagraph(p); ok {
			rec.Paragraphs = append(rec.Paragraphs, pr)
		}
	}
	return rec
}

// FilterIssues returns a copy of the inventory restricted to shapes with
// layout diagnostics. Slides left without any flagged shape are dropped.
func (inv SlideInventory) FilterIssues() SlideInventory {
	out := SlideInventory{}
	for slideKey, shapes := range inv {
		kept := map[string]*ShapeRecord{}
		for shapeKey, rec := range shapes {
			if rec.HasIssues() {
				kept[shapeKey] = rec
			}
		}
		if len(kept) > 0 {
			out[slideKey] = kept
		}
	}
	return out
}

// WriteJSON serializes the inventory to path as indented JSON, creating
// the parent directory when needed.
func (inv SlideInventory) WriteJSON(path string) error {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}
