package model

import (
	"math"
	"strings"
	"testing"
)

// ============================================================================
// Rect Tests
// ============================================================================

func TestRectExtents(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if c := r.Center(); c.X != 60 || c.Y != 45 {
		t.Errorf("Center() = %+v, want {60, 45}", c)
	}
}

func TestRectIsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"valid", NewRect(0, 0, 10, 10), false},
		{"zero width", NewRect(5, 0, 5, 10), true},
		{"zero height", NewRect(0, 5, 10, 5), true},
		{"inverted x", NewRect(10, 0, 0, 10), true},
		{"inverted y", NewRect(0, 10, 10, 0), true},
		{"zero rect", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsDegenerate(); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 50, 50)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial overlap", NewRect(40, 40, 80, 80), true},
		{"contained", NewRect(20, 20, 30, 30), true},
		{"touching edge", NewRect(50, 10, 90, 50), true},
		{"disjoint right", NewRect(60, 10, 90, 50), false},
		{"disjoint below", NewRect(10, 60, 50, 90), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(10, 10, 50, 50)
	b := NewRect(30, 0, 80, 40)
	want := NewRect(10, 0, 80, 50)
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

// ============================================================================
// Normalization Tests
// ============================================================================

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 0.5, 0.5},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"below", -0.25, 0},
		{"above", 1.75, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.v); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRectNormalized(t *testing.T) {
	r := NewRect(61.2, 79.2, 306, 396)
	got := r.Normalized(612, 792)
	want := NewRect(0.1, 0.1, 0.5, 0.5)
	const eps = 1e-9
	if math.Abs(got.X0-want.X0) > eps || math.Abs(got.Y0-want.Y0) > eps ||
		math.Abs(got.X1-want.X1) > eps || math.Abs(got.Y1-want.Y1) > eps {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}
}

func TestRectNormalizedClampsOutOfPage(t *testing.T) {
	// Coordinates outside the page clamp to the unit square.
	r := NewRect(-10, -5, 700, 800)
	got := r.Normalized(612, 792)
	if got.X0 != 0 || got.Y0 != 0 || got.X1 != 1 || got.Y1 != 1 {
		t.Errorf("Normalized() = %+v, want unit square", got)
	}
}

func TestPlaceRect(t *testing.T) {
	r := NewRect(0, 0, 306, 792)
	dual := PlaceRect(r, 612, 792)
	if dual.Abs != r {
		t.Errorf("Abs = %+v, want %+v", dual.Abs, r)
	}
	if dual.Norm.X1 != 0.5 || dual.Norm.Y1 != 1 {
		t.Errorf("Norm = %+v, want X1=0.5 Y1=1", dual.Norm)
	}
}

// ============================================================================
// TableRegion Tests
// ============================================================================

func TestTableRegionToMarkdown(t *testing.T) {
	table := TableRegion{
		Rows: 3,
		Cols: 2,
		Data: [][]string{
			{"Name", "Value"},
			{"alpha", "1"},
			{"beta", "2"},
		},
	}

	got := table.ToMarkdown()
	want := "| Name | Value |\n" +
		"|---|---|\n" +
		"| alpha | 1 |\n" +
		"| beta | 2 |\n"
	if got != want {
		t.Errorf("ToMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRegionToMarkdownFlattensNewlines(t *testing.T) {
	table := TableRegion{
		Data: [][]string{
			{"multi\nline", "x"},
			{"a", "b"},
		},
	}
	got := table.ToMarkdown()
	if strings.Contains(strings.TrimSuffix(got, "\n"), "multi\nline") {
		t.Errorf("cell newline survived: %q", got)
	}
	if !strings.Contains(got, "| multi line | x |") {
		t.Errorf("header row not flattened: %q", got)
	}
}

func TestTableRegionToMarkdownEmpty(t *testing.T) {
	var table TableRegion
	if got := table.ToMarkdown(); got != "" {
		t.Errorf("ToMarkdown() = %q, want empty", got)
	}
}

func TestTableRegionCell(t *testing.T) {
	table := TableRegion{Data: [][]string{{"a", "b"}, {"c", "d"}}}

	if got := table.Cell(1, 1); got != "d" {
		t.Errorf("Cell(1,1) = %q, want d", got)
	}
	if got := table.Cell(5, 0); got != "" {
		t.Errorf("Cell(5,0) = %q, want empty", got)
	}
	if got := table.Cell(0, -1); got != "" {
		t.Errorf("Cell(0,-1) = %q, want empty", got)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentWordCount(t *testing.T) {
	doc := NewDocument()
	doc.Pages = []*Page{
		{Number: 1, Words: []WordBox{{Text: "a"}, {Text: "b"}}},
		{Number: 2, Words: []WordBox{{Text: "c"}}},
	}
	if got := doc.WordCount(); got != 3 {
		t.Errorf("WordCount() = %d, want 3", got)
	}
	if got := len(doc.AllWords()); got != 3 {
		t.Errorf("len(AllWords()) = %d, want 3", got)
	}
}
