package graphics

import (
	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// Classify walks a page's drawing groups and emits typed primitives with
// dual-coordinate geometry. Width and height must be positive, validated by
// the caller.
func Classify(width, height float64, groups []source.DrawGroup) []model.Graphic {
	var out []model.Graphic

	for _, group := range groups {
		strokeWidth := group.Width
		if strokeWidth < 0 {
			strokeWidth = 0
		}

		for _, op := range group.Ops {
			g, ok := classifyOp(op, width, height)
			if !ok {
				continue
			}
			g.StrokeWidth = strokeWidth
			g.Stroke = copyColor(group.Stroke)
			g.Fill = copyColor(group.Fill)
			out = append(out, g)
		}
	}

	return out
}

// classifyOp dispatches one drawing operation by its operator tag. Unknown
// tags and operations with too few points report !ok.
func classifyOp(op source.DrawOp, width, height float64) (model.Graphic, bool) {
	switch op.Op {
	case source.OpLine:
		if len(op.Points) < 2 {
			return model.Graphic{}, false
		}
		return model.Graphic{
			Kind:   model.GraphicLine,
			Points: placePoints(op.Points[:2], width, height),
		}, true

	case source.OpCurve:
		if len(op.Points) < 4 {
			return model.Graphic{}, false
		}
		return model.Graphic{
			Kind:   model.GraphicCurve,
			Points: placePoints(op.Points[:4], width, height),
		}, true

	case source.OpRect:
		r := model.PlaceRect(op.Rect, width, height)
		return model.Graphic{
			Kind: model.GraphicRect,
			Rect: &r,
		}, true

	case source.OpQuad:
		if len(op.Points) < 4 {
			return model.Graphic{}, false
		}
		// Corners arrive in upper-left, upper-right, lower-left,
		// lower-right order and are kept as-is.
		return model.Graphic{
			Kind:   model.GraphicQuad,
			Points: placePoints(op.Points[:4], width, height),
		}, true

	default:
		return model.Graphic{}, false
	}
}

func placePoints(pts []model.Point, width, height float64) []model.DualPoint {
	placed := make([]model.DualPoint, len(pts))
	for i, p := range pts {
		placed[i] = model.Place(p, width, height)
	}
	return placed
}

func copyColor(c *model.Color) *model.Color {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
