package slidelens

import "testing"

func positioned(text string, left, top int64) PositionedShape {
	return PositionedShape{Shape: textShape(text, 0, 0), Left: left, Top: top}
}

func assertOrder(t *testing.T, got []PositionedShape, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d shapes, want %d", len(got), len(want))
	}
	for i := range want {
		if text := got[i].Shape.PlainText(); text != want[i] {
			t.Errorf("position %d = %q, want %q", i, text, want[i])
		}
	}
}

func TestSortVisualSameRowByLeft(t *testing.T) {
	// Tops differ by less than the 0.5in tolerance: order is decided by
	// left alone.
	shapes := []PositionedShape{
		positioned("right", Inch(5), Inch(1)),
		positioned("left", Inch(1), Inch(1.3)),
		positioned("middle", Inch(3), Inch(0.9)),
	}
	assertOrder(t, SortVisual(shapes), []string{"left", "middle", "right"})
}

func TestSortVisualSeparateRowsByTop(t *testing.T) {
	// Tops differ by more than the tolerance: the higher shape comes
	// first regardless of left.
	shapes := []PositionedShape{
		positioned("lower", Inch(0), Inch(2)),
		positioned("upper", Inch(7), Inch(1)),
	}
	assertOrder(t, SortVisual(shapes), []string{"upper", "lower"})
}

func TestSortVisualToleranceBoundary(t *testing.T) {
	// Exactly at the tolerance the shapes share a row; just beyond it
	// they do not.
	shapes := []PositionedShape{
		positioned("b", Inch(5), Inch(1)),
		positioned("a", Inch(1), Inch(1.5)),
	}
	assertOrder(t, SortVisual(shapes), []string{"a", "b"})

	shapes = []PositionedShape{
		positioned("b", Inch(5), Inch(1)),
		positioned("a", Inch(1), Inch(1)+rowClusterTolerance+1),
	}
	assertOrder(t, SortVisual(shapes), []string{"b", "a"})
}

func TestSortVisualMultipleRows(t *testing.T) {
	shapes := []PositionedShape{
		positioned("r2c2", Inch(4), Inch(3)),
		positioned("r1c1", Inch(0.5), Inch(0.2)),
		positioned("r2c1", Inch(1), Inch(3.1)),
		positioned("r1c2", Inch(6), Inch(0.4)),
		positioned("r3c1", Inch(2), Inch(5)),
	}
	assertOrder(t, SortVisual(shapes), []string{"r1c1", "r1c2", "r2c1", "r2c2", "r3c1"})
}

func TestSortVisualDoesNotMutateInput(t *testing.T) {
	shapes := []PositionedShape{
		positioned("b", Inch(5), Inch(2)),
		positioned("a", Inch(1), Inch(1)),
	}
	_ = SortVisual(shapes)
	if shapes[0].Shape.PlainText() != "b" {
		t.Error("input slice was reordered")
	}
}

func TestSortVisualEmpty(t *testing.T) {
	if got := SortVisual(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %d", len(got))
	}
}
