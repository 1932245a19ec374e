package slidelens

import "sort"

// rowClusterTolerance is the maximum vertical distance, in EMU, within
// which two shapes are considered to lie on the same visual line. Top
// coordinates of shapes on one line rarely match exactly (baseline jitter,
// differing font metrics), so exact equality is insufficient.
const rowClusterTolerance = emuPerInch / 2

// SortVisual orders positioned shapes into human reading order: shapes are
// clustered into rows by top coordinate, rows run top to bottom, and shapes
// within a row run left to right. The input slice is not modified.
func SortVisual(shapes []PositionedShape) []PositionedShape {
	sorted := make([]PositionedShape, len(shapes))
	copy(sorted, shapes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].Left < sorted[j].Left
	})

	out := make([]PositionedShape, 0, len(sorted))
	var row []PositionedShape
	var rowTop int64

	flush := func() {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Left < row[j].Left
		})
		out = append(out, row...)
		row = row[:0]
	}

	for _, s := range sorted {
		if len(row) == 0 {
			row = append(row, s)
			rowTop = s.Top
			continue
		}
		if absInt64(s.Top-rowTop) <= rowClusterTolerance {
			row = append(row, s)
			continue
		}
		flush()
		row = append(row, s)
		rowTop = s.Top
	}
	if len(row) > 0 {
		flush()
	}
	return out
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
