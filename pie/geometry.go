// Package pie places the external labels of a pie chart: the mid-angle of
// each slice, the label anchor, its bent connector line and the label text.
package pie

import (
	"math"

	"payments-charts/dataset"
	"payments-charts/layout"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Point is a screen coordinate. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextAnchor tells the drawing layer which side of the anchor the text
// extends to.
type TextAnchor string

const (
	AnchorStart TextAnchor = "start"
	AnchorEnd   TextAnchor = "end"
)

// SegmentGeometry is the drawing instruction for one labelled segment.
type SegmentGeometry struct {
	Index       int        `json:"index"`
	MidAngle    float64    `json:"mid_angle"`
	Percent     float64    `json:"percent"`
	InnerRadius float64    `json:"inner_radius"`
	OuterRadius float64    `json:"outer_radius"`
	Anchor      Point      `json:"anchor"`
	Connector   [3]Point   `json:"connector"`
	TextAnchor  TextAnchor `json:"text_anchor"`
	NameText    string     `json:"name_text"`
	ValueText   string     `json:"value_text"`
}

// Span returns the angle a segment covers. Non-positive totals and values
// cover nothing.
func Span(value, total float64) float64 {
	if !(total > 0) || !(value > 0) {
		return 0
	}
	return value / total * FullTurn
}

// PointAt returns the point at radius r and angle theta around center.
// Angle 0 points right and angles grow clockwise on screen.
func PointAt(center Point, r, theta float64) Point {
	return Point{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}

// ComputeLabelGeometry places the label of segment index. precedingAngleSum
// is the total span of every earlier segment. The second result is false
// when the segment is too small for a label at the profile's breakpoint, or
// when total is not positive; the slice itself is still drawn by the host.
func ComputeLabelGeometry(seg dataset.Segment, index int, total float64, center Point,
	innerRadius, outerRadius float64, p layout.LayoutProfile, precedingAngleSum float64) (SegmentGeometry, bool) {
	if !(total > 0) || !(seg.Value > 0) {
		return SegmentGeometry{}, false
	}

	percent := seg.Value / total
	if percent < p.Labels.MinPercent {
		return SegmentGeometry{}, false
	}

	mid := precedingAngleSum + Span(seg.Value, total)/2
	dist := p.Labels.LabelDistance
	anchor := PointAt(center, outerRadius+dist, mid)

	side := AnchorEnd
	if anchor.X > center.X {
		side = AnchorStart
	}

	return SegmentGeometry{
		Index:       index,
		MidAngle:    mid,
		Percent:     percent,
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		Anchor:      anchor,
		Connector: [3]Point{
			PointAt(center, outerRadius, mid),
			PointAt(center, outerRadius+dist/2, mid),
			anchor,
		},
		TextAnchor: side,
		NameText:   truncateTo(seg.Name, p.Labels.NameBudget),
		ValueText:  FormatAbbreviated(seg.Value, p.Labels),
	}, true
}

// Label is the render-pass result for one segment.
type Label struct {
	Index      int             `json:"index"`
	Segment    dataset.Segment `json:"segment"`
	StartAngle float64         `json:"start_angle"`
	EndAngle   float64         `json:"end_angle"`
	Geometry   SegmentGeometry `json:"geometry"`
	Omitted    bool            `json:"omitted"`
}

// Layout runs one render pass over segments in order, carrying the running
// angular offset and computing each label. Every segment gets an entry so
// the host can still draw slices whose label was omitted.
func Layout(segments []dataset.Segment, center Point, innerRadius, outerRadius float64, p layout.LayoutProfile) []Label {
	total := dataset.Total(segments)
	labels := make([]Label, 0, len(segments))

	var offset float64
	for i, seg := range segments {
		span := Span(seg.Value, total)
		geom, ok := ComputeLabelGeometry(seg, i, total, center, innerRadius, outerRadius, p, offset)
		labels = append(labels, Label{
			Index:      i,
			Segment:    seg,
			StartAngle: offset,
			EndAngle:   offset + span,
			Geometry:   geom,
			Omitted:    !ok,
		})
		offset += span
	}
	return labels
}

// Visible returns the labels that were not omitted.
func Visible(labels []Label) []Label {
	out := make([]Label, 0, len(labels))
	for _, l := range labels {
		if !l.Omitted {
			out = append(out, l)
		}
	}
	return out
}
