package graphics

import (
	"testing"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

func TestClassifyDispatch(t *testing.T) {
	groups := []source.DrawGroup{{
		Width:  1.5,
		Stroke: &model.Color{1, 0, 0},
		Ops: []source.DrawOp{
			{Op: source.OpLine, Points: []model.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}},
			{Op: source.OpCurve, Points: []model.Point{{X: 0, Y: 0}, {X: 10, Y: 50}, {X: 90, Y: 50}, {X: 100, Y: 0}}},
			{Op: source.OpRect, Rect: model.NewRect(10, 10, 110, 60)},
			{Op: source.OpQuad, Points: []model.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50}}},
			{Op: "shade"}, // unknown operator, skipped
		},
	}}

	out := Classify(200, 200, groups)
	if len(out) != 4 {
		t.Fatalf("got %d graphics, want 4", len(out))
	}

	wantKinds := []model.GraphicKind{
		model.GraphicLine, model.GraphicCurve, model.GraphicRect, model.GraphicQuad,
	}
	for i, g := range out {
		if g.Kind != wantKinds[i] {
			t.Errorf("graphic %d kind = %q, want %q", i, g.Kind, wantKinds[i])
		}
		if g.StrokeWidth != 1.5 {
			t.Errorf("graphic %d stroke width = %v, want 1.5", i, g.StrokeWidth)
		}
		if g.Stroke == nil || *g.Stroke != (model.Color{1, 0, 0}) {
			t.Errorf("graphic %d stroke = %v", i, g.Stroke)
		}
		if g.Fill != nil {
			t.Errorf("graphic %d fill = %v, want nil", i, g.Fill)
		}
	}

	line := out[0]
	if len(line.Points) != 2 {
		t.Fatalf("line has %d points, want 2", len(line.Points))
	}
	if line.Points[1].Abs != (model.Point{X: 100, Y: 100}) {
		t.Errorf("line end = %+v", line.Points[1].Abs)
	}
	if line.Points[1].Norm != (model.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("line end norm = %+v", line.Points[1].Norm)
	}

	rect := out[2]
	if rect.Rect == nil {
		t.Fatal("rect graphic missing rect geometry")
	}
	if rect.Rect.Abs != model.NewRect(10, 10, 110, 60) {
		t.Errorf("rect abs = %+v", rect.Rect.Abs)
	}
}

func TestClassifySkipsShortOps(t *testing.T) {
	groups := []source.DrawGroup{{
		Ops: []source.DrawOp{
			{Op: source.OpLine, Points: []model.Point{{X: 1, Y: 1}}},
			{Op: source.OpCurve, Points: []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{Op: source.OpQuad, Points: []model.Point{{X: 0, Y: 0}}},
		},
	}}

	if out := Classify(100, 100, groups); len(out) != 0 {
		t.Errorf("got %d graphics, want 0", len(out))
	}
}

func TestClassifyClampsNegativeStrokeWidth(t *testing.T) {
	groups := []source.DrawGroup{{
		Width: -2,
		Ops: []source.DrawOp{
			{Op: source.OpLine, Points: []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		},
	}}

	out := Classify(100, 100, groups)
	if len(out) != 1 {
		t.Fatalf("got %d graphics, want 1", len(out))
	}
	if out[0].StrokeWidth != 0 {
		t.Errorf("stroke width = %v, want 0", out[0].StrokeWidth)
	}
}

func TestClassifyCopiesColors(t *testing.T) {
	fill := &model.Color{0, 0.5, 1}
	groups := []source.DrawGroup{{
		Fill: fill,
		Ops: []source.DrawOp{
			{Op: source.OpRect, Rect: model.NewRect(0, 0, 10, 10)},
		},
	}}

	out := Classify(100, 100, groups)
	if len(out) != 1 {
		t.Fatalf("got %d graphics, want 1", len(out))
	}
	if out[0].Fill == fill {
		t.Error("fill color aliases the source group")
	}
	if *out[0].Fill != *fill {
		t.Errorf("fill = %v, want %v", *out[0].Fill, *fill)
	}
}
