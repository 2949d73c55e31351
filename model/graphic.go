package model

// GraphicKind identifies the primitive a drawing operation classified to.
type GraphicKind string

const (
	GraphicLine  GraphicKind = "line"
	GraphicCurve GraphicKind = "curve"
	GraphicRect  GraphicKind = "rect"
	GraphicQuad  GraphicKind = "quad"
)

// Color is a 3-component color with each channel in [0,1].
type Color [3]float64

// Graphic is one classified vector-graphics primitive.
//
// The point count depends on the kind: 2 for a line, 4 control points for a
// cubic curve, and 4 corners for a quad (upper-left, upper-right, lower-left,
// lower-right). A rect carries its geometry in Rect instead and has no
// points. Stroke and Fill are nil when the drawing group carried no color.
type Graphic struct {
	Kind        GraphicKind `json:"kind"`
	Points      []DualPoint `json:"points,omitempty"`
	Rect        *DualRect   `json:"rect,omitempty"`
	StrokeWidth float64     `json:"stroke_width"`
	Stroke      *Color      `json:"stroke,omitempty"`
	Fill        *Color      `json:"fill,omitempty"`
}
