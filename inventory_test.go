package slidelens

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func oneSlideDoc(shapes ...Shape) *Document {
	return &Document{
		Slides:      []*Slide{{Shapes: shapes}},
		SlideWidth:  Inch(13.33),
		SlideHeight: Inch(7.5),
	}
}

func TestBuildInventoryAssignsIDsByVisualOrder(t *testing.T) {
	// Two shapes on the same visual row, listed right-first in the tree:
	// ids must follow left-to-right order, not tree order.
	right := textShape("right", Inch(6), Inch(1))
	left := textShape("left", Inch(1), Inch(1.2))

	inv := BuildInventory(oneSlideDoc(right, left))
	shapes, ok := inv["slide-0"]
	if !ok {
		t.Fatalf("missing slide-0 key, got %v", keysOf(inv))
	}
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}
	if shapes["shape-0"].Paragraphs[0].Text != "left" {
		t.Errorf("shape-0 = %q, want left", shapes["shape-0"].Paragraphs[0].Text)
	}
	if shapes["shape-1"].Paragraphs[0].Text != "right" {
		t.Errorf("shape-1 = %q, want right", shapes["shape-1"].Paragraphs[0].Text)
	}
}

func TestBuildInventoryDenseIDs(t *testing.T) {
	var shapes []Shape
	for i := 0; i < 5; i++ {
		shapes = append(shapes, textShape("s", Inch(float64(i)), Inch(float64(i))))
	}
	inv := BuildInventory(oneSlideDoc(shapes...))
	recs := inv["slide-0"]
	for i := 0; i < 5; i++ {
		key := "shape-" + string(rune('0'+i))
		if _, ok := recs[key]; !ok {
			t.Errorf("missing id %s", key)
		}
	}
}

func TestBuildInventoryOmitsEmptySlides(t *testing.T) {
	num := textShape("4", 0, 0)
	num.Placeholder = PlaceholderSlideNum
	doc := &Document{
		Slides: []*Slide{
			{Shapes: []Shape{textShape("content", 0, 0)}},
			{Shapes: []Shape{num}},
			{},
		},
		SlideWidth:  Inch(10),
		SlideHeight: Inch(7.5),
	}

	inv := BuildInventory(doc)
	if len(inv) != 1 {
		t.Fatalf("expected 1 slide entry, got %v", keysOf(inv))
	}
	if _, ok := inv["slide-0"]; !ok {
		t.Error("slide-0 should be present")
	}
}

func TestShapeRecordGeometryInInches(t *testing.T) {
	s := textShape("x", 0, 0)
	s.OffsetX = Inch(1.005)
	s.OffsetY = Inch(2)
	s.Width = Inch(3.333)
	s.Height = Inch(0.5)

	inv := BuildInventory(oneSlideDoc(s))
	rec := inv["slide-0"]["shape-0"]
	if rec.Left != 1.0 && rec.Left != 1.01 {
		t.Errorf("Left = %v, want 1.0 or 1.01 after rounding", rec.Left)
	}
	if rec.Top != 2.0 || rec.Width != 3.33 || rec.Height != 0.5 {
		t.Errorf("geometry = (%v, %v, %v, %v)", rec.Left, rec.Top, rec.Width, rec.Height)
	}
}

func TestShapeRecordJSONOmitsUnknownFields(t *testing.T) {
	s := textShape("plain", Inch(1), Inch(1))
	inv := BuildInventory(oneSlideDoc(s))

	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]map[string]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := decoded["slide-0"]["shape-0"]
	for _, absent := range []string{"placeholder_type", "default_font_size", "warnings"} {
		if _, ok := rec[absent]; ok {
			t.Errorf("field %s should be omitted, got %v", absent, rec[absent])
		}
	}
	paras, ok := rec["paragraphs"].([]any)
	if !ok || len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %v", rec["paragraphs"])
	}
	para := paras[0].(map[string]any)
	for _, absent := range []string{"bullet", "level", "alignment", "bold", "italic", "underline", "color", "theme_color", "font_size", "line_spacing", "space_before", "space_after"} {
		if _, ok := para[absent]; ok {
			t.Errorf("paragraph field %s should be omitted, got %v", absent, para[absent])
		}
	}
}

func TestAnnotateOverflow(t *testing.T) {
	s := textShape("wide", Inch(9.5), Inch(1))
	s.Width = Inch(2) // extends past a 10in slide
	doc := oneSlideDoc(s)
	doc.SlideWidth = Inch(10)

	inv := BuildInventory(doc)
	rec := inv["slide-0"]["shape-0"]
	if !rec.HasIssues() {
		t.Fatal("expected an overflow warning")
	}
	if rec.Warnings[0] != "extends beyond right edge of slide" {
		t.Errorf("warning = %q", rec.Warnings[0])
	}
}

func TestAnnotateOverlapReferencesVisualIDs(t *testing.T) {
	a := textShape("a", Inch(1), Inch(1))
	a.Width, a.Height = Inch(2), Inch(1)
	b := textShape("b", Inch(2), Inch(1.2))
	b.Width, b.Height = Inch(2), Inch(1)
	c := textShape("c", Inch(1), Inch(5))

	inv := BuildInventory(oneSlideDoc(a, b, c))
	recs := inv["slide-0"]
	wantA := []string{"overlaps shape-1"}
	wantB := []string{"overlaps shape-0"}
	if diff := cmp.Diff(wantA, recs["shape-0"].Warnings); diff != "" {
		t.Errorf("shape-0 warnings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantB, recs["shape-1"].Warnings); diff != "" {
		t.Errorf("shape-1 warnings (-want +got):\n%s", diff)
	}
	if recs["shape-2"].HasIssues() {
		t.Errorf("shape-2 should have no warnings, got %v", recs["shape-2"].Warnings)
	}
}

func TestFilterIssues(t *testing.T) {
	clean := textShape("fits", Inch(1), Inch(1))
	overflowing := textShape("spills", Inch(9.5), Inch(6))
	overflowing.Width = Inch(2)
	doc := &Document{
		Slides: []*Slide{
			{Shapes: []Shape{clean}},
			{Shapes: []Shape{overflowing}},
		},
		SlideWidth:  Inch(10),
		SlideHeight: Inch(7.5),
	}

	filtered := BuildInventory(doc).FilterIssues()
	if len(filtered) != 1 {
		t.Fatalf("expected 1 slide with issues, got %v", keysOf(filtered))
	}
	shapes := filtered["slide-1"]
	if len(shapes) != 1 || !shapes["shape-0"].HasIssues() {
		t.Errorf("expected only the overflowing shape, got %v", shapes)
	}
}

func TestWriteJSONCreatesParentDirectory(t *testing.T) {
	inv := BuildInventory(oneSlideDoc(textShape("x", Inch(1), Inch(1))))

	path := filepath.Join(t.TempDir(), "reports", "deck", "inventory.json")
	if err := inv.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON into missing directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("missing output file: %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	s := textShape("hello", Inch(1), Inch(1))
	inv := BuildInventory(oneSlideDoc(s))

	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := inv.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded SlideInventory
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(inv, decoded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func keysOf(inv SlideInventory) []string {
	var keys []string
	for k := range inv {
		keys = append(keys, k)
	}
	return keys
}
