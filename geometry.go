package slidelens

import "unicode"

// PositionedShape pairs a leaf text shape with its absolute position on
// the slide in EMU. It is transient: produced by FlattenShapes, consumed by
// the visual sort and the inventory builder.
type PositionedShape struct {
	Shape *TextShape
	Left  int64
	Top   int64
}

// FlattenShapes resolves a shape tree into a flat list of qualifying leaf
// shapes annotated with absolute positions. Offsets accumulate through
// ancestor groups: a group's children are positioned relative to the
// group's own absolute position. The original shapes are never mutated.
// Output order matches a depth-first traversal of the tree.
func FlattenShapes(shapes []Shape, parentX, parentY int64) []PositionedShape {
	var out []PositionedShape
	for _, s := range shapes {
		switch sh := s.(type) {
		case *GroupShape:
			out = append(out, FlattenShapes(sh.Shapes, parentX+sh.OffsetX, parentY+sh.OffsetY)...)
		case *TextShape:
			if !shapeQualifies(sh) {
				continue
			}
			out = append(out, PositionedShape{
				Shape: sh,
				Left:  parentX + sh.OffsetX,
				Top:   parentY + sh.OffsetY,
			})
		}
	}
	return out
}

// shapeQualifies reports whether a shape carries meaningful, reviewable
// text. Slide-number placeholders are generated artifacts and always
// dropped; footer placeholders are dropped only when their entire text is
// purely numeric (an auto page number rather than authored content).
func shapeQualifies(s *TextShape) bool {
	text := s.PlainText()
	if text == "" {
		return false
	}
	switch s.Placeholder {
	case PlaceholderSlideNum:
		return false
	case PlaceholderFooter:
		if isPurelyNumeric(text) {
			return false
		}
	}
	return true
}

// isPurelyNumeric reports whether s consists only of digits.
func isPurelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
