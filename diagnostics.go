package slidelens

import "fmt"

// annotateLayoutIssues appends overflow and overlap warnings to the shape
// records. Shapes are checked against the slide canvas and pairwise against
// each other; diagnostics reference shapes by their final visual ids.
func annotateLayoutIssues(ordered []PositionedShape, records []*ShapeRecord, slideW, slideH int64) {
	if slideW <= 0 || slideH <= 0 {
		return
	}
	for i, ps := range ordered {
		if ps.Left < 0 {
			records[i].Warnings = append(records[i].Warnings, "extends beyond left edge of slide")
		}
		if ps.Top < 0 {
			records[i].Warnings = append(records[i].Warnings, "extends beyond top edge of slide")
		}
		if ps.Left+ps.Shape.Width > slideW {
			records[i].Warnings = append(records[i].Warnings, "extends beyond right edge of slide")
		}
		if ps.Top+ps.Shape.Height > slideH {
			records[i].Warnings = append(records[i].Warnings, "extends beyond bottom edge of slide")
		}
	}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if shapesOverlap(ordered[i], ordered[j]) {
				records[i].Warnings = append(records[i].Warnings, fmt.Sprintf("overlaps shape-%d", j))
				records[j].Warnings = append(records[j].Warnings, fmt.Sprintf("overlaps shape-%d", i))
			}
		}
	}
}

// shapesOverlap reports whether two positioned shapes' axis-aligned bounds
// intersect with positive area. Zero-sized shapes never overlap anything.
func shapesOverlap(a, b PositionedShape) bool {
	if a.Shape.Width <= 0 || a.Shape.Height <= 0 || b.Shape.Width <= 0 || b.Shape.Height <= 0 {
		return false
	}
	return a.Left < b.Left+b.Shape.Width &&
		b.Left < a.Left+a.Shape.Width &&
		a.Top < b.Top+b.Shape.Height &&
		b.Top < a.Top+a.Shape.Height
}
