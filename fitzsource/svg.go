package fitzsource

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/foliohq/folio/model"
	"github.com/foliohq/folio/source"
)

// MuPDF's SVG rendering emits one element per drawn shape. Each shape
// becomes its own draw group; path data is decoded into line and curve
// operations, the other shape elements map directly.

// parseSVG converts an SVG page rendering into draw groups. Elements
// outside the supported shape set are skipped.
func parseSVG(svg string) ([]source.DrawGroup, error) {
	dec := xml.NewDecoder(strings.NewReader(svg))
	dec.Strict = false

	var groups []source.DrawGroup
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var ops []source.DrawOp
		switch start.Name.Local {
		case "path":
			ops = pathOps(xmlAttr(start, "d"))
		case "line":
			ops = lineOps(start)
		case "rect":
			ops = rectOps(start)
		case "polygon":
			ops = polygonOps(xmlAttr(start, "points"))
		default:
			continue
		}
		if len(ops) == 0 {
			continue
		}

		groups = append(groups, source.DrawGroup{
			Width:  floatAttr(start, "stroke-width"),
			Stroke: parseColor(xmlAttr(start, "stroke")),
			Fill:   parseColor(xmlAttr(start, "fill")),
			Ops:    ops,
		})
	}
	return groups, nil
}

func lineOps(el xml.StartElement) []source.DrawOp {
	return []source.DrawOp{{
		Op: source.OpLine,
		Points: []model.Point{
			{X: floatAttr(el, "x1"), Y: floatAttr(el, "y1")},
			{X: floatAttr(el, "x2"), Y: floatAttr(el, "y2")},
		},
	}}
}

func rectOps(el xml.StartElement) []source.DrawOp {
	x := floatAttr(el, "x")
	y := floatAttr(el, "y")
	w := floatAttr(el, "width")
	h := floatAttr(el, "height")
	if w <= 0 || h <= 0 {
		return nil
	}
	return []source.DrawOp{{
		Op:   source.OpRect,
		Rect: model.Rect{X0: x, Y0: y, X1: x + w, Y1: y + h},
	}}
}

// polygonOps maps a 4-corner polygon onto a quad op with its corners in
// upper-left, upper-right, lower-left, lower-right order. Other polygons
// decompose into their edges.
func polygonOps(points string) []source.DrawOp {
	pts := parsePoints(points)
	if len(pts) == 4 {
		return []source.DrawOp{{Op: source.OpQuad, Points: orderQuad(pts)}}
	}
	if len(pts) < 2 {
		return nil
	}
	var ops []source.DrawOp
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		ops = append(ops, source.DrawOp{
			Op:     source.OpLine,
			Points: []model.Point{pts[i], next},
		})
	}
	return ops
}

// orderQuad sorts four corners into upper-left, upper-right, lower-left,
// lower-right.
func orderQuad(pts []model.Point) []model.Point {
	sorted := append([]model.Point(nil), pts...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Y < sorted[i].Y ||
				(sorted[j].Y == sorted[i].Y && sorted[j].X < sorted[i].X) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if sorted[1].X < sorted[0].X {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	if sorted[3].X < sorted[2].X {
		sorted[2], sorted[3] = sorted[3], sorted[2]
	}
	return sorted
}

// pathOps decodes the supported subset of SVG path data: absolute and
// relative moveto, lineto, cubic curves, horizontal/vertical lines and
// closepath. Unsupported commands end the decode with whatever was
// gathered.
func pathOps(d string) []source.DrawOp {
	s := &pathScanner{data: d}
	var ops []source.DrawOp

	var cur, start model.Point
	for {
		cmd, ok := s.command()
		if !ok {
			break
		}
		rel := cmd >= 'a' && cmd <= 'z'

		switch cmd {
		case 'M', 'm':
			p, ok := s.point()
			if !ok {
				return ops
			}
			if rel {
				p = model.Point{X: cur.X + p.X, Y: cur.Y + p.Y}
			}
			cur, start = p, p
			// Additional coordinate pairs after a moveto are implicit
			// linetos.
			for {
				p, ok := s.point()
				if !ok {
					break
				}
				if rel {
					p = model.Point{X: cur.X + p.X, Y: cur.Y + p.Y}
				}
				ops = append(ops, lineOp(cur, p))
				cur = p
			}
		case 'L', 'l':
			for {
				p, ok := s.point()
				if !ok {
					break
				}
				if rel {
					p = model.Point{X: cur.X + p.X, Y: cur.Y + p.Y}
				}
				ops = append(ops, lineOp(cur, p))
				cur = p
			}
		case 'H', 'h':
			for {
				x, ok := s.number()
				if !ok {
					break
				}
				p := model.Point{X: x, Y: cur.Y}
				if rel {
					p.X = cur.X + x
				}
				ops = append(ops, lineOp(cur, p))
				cur = p
			}
		case 'V', 'v':
			for {
				y, ok := s.number()
				if !ok {
					break
				}
				p := model.Point{X: cur.X, Y: y}
				if rel {
					p.Y = cur.Y + y
				}
				ops = append(ops, lineOp(cur, p))
				cur = p
			}
		case 'C', 'c':
			for {
				c1, ok := s.point()
				if !ok {
					break
				}
				c2, ok := s.point()
				if !ok {
					return ops
				}
				end, ok := s.point()
				if !ok {
					return ops
				}
				if rel {
					c1 = model.Point{X: cur.X + c1.X, Y: cur.Y + c1.Y}
					c2 = model.Point{X: cur.X + c2.X, Y: cur.Y + c2.Y}
					end = model.Point{X: cur.X + end.X, Y: cur.Y + end.Y}
				}
				ops = append(ops, source.DrawOp{
					Op:     source.OpCurve,
					Points: []model.Point{cur, c1, c2, end},
				})
				cur = end
			}
		case 'Z', 'z':
			if cur != start {
				ops = append(ops, lineOp(cur, start))
			}
			cur = start
		default:
			return ops
		}
	}
	return ops
}

func lineOp(from, to model.Point) source.DrawOp {
	return source.DrawOp{Op: source.OpLine, Points: []model.Point{from, to}}
}

// pathScanner tokenizes SVG path data: single-letter commands and
// comma-or-space separated numbers.
type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) skip() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == ' ' || c == ',' || c == '\n' || c == '\t' || c == '\r' {
			s.pos++
			continue
		}
		return
	}
}

func (s *pathScanner) command() (byte, bool) {
	s.skip()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		s.pos++
		return c, true
	}
	return 0, false
}

func (s *pathScanner) number() (float64, bool) {
	s.skip()
	begin := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' {
			s.pos++
			continue
		}
		if (c == '-' || c == '+') && (s.pos == begin || s.data[s.pos-1] == 'e' || s.data[s.pos-1] == 'E') {
			s.pos++
			continue
		}
		break
	}
	if s.pos == begin {
		return 0, false
	}
	f, err := strconv.ParseFloat(s.data[begin:s.pos], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s *pathScanner) point() (model.Point, bool) {
	x, ok := s.number()
	if !ok {
		return model.Point{}, false
	}
	y, ok := s.number()
	if !ok {
		return model.Point{}, false
	}
	return model.Point{X: x, Y: y}, true
}

func parsePoints(raw string) []model.Point {
	s := &pathScanner{data: raw}
	var pts []model.Point
	for {
		p, ok := s.point()
		if !ok {
			return pts
		}
		pts = append(pts, p)
	}
}

func xmlAttr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func floatAttr(el xml.StartElement, name string) float64 {
	raw := strings.TrimSuffix(xmlAttr(el, name), "px")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseColor decodes #rgb and #rrggbb colors into normalized channels.
// Absent and "none" values yield nil.
func parseColor(raw string) *model.Color {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "none" || !strings.HasPrefix(raw, "#") {
		return nil
	}
	hex := raw[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	c := model.Color{
		float64(n>>16&0xff) / 255,
		float64(n>>8&0xff) / 255,
		float64(n&0xff) / 255,
	}
	return &c
}
