package render

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"payments-charts/dataset"
	"payments-charts/layout"
	"payments-charts/log"
	"payments-charts/pie"
)

const fontFamily = "ui-sans-serif, system-ui, sans-serif"

// errWriter keeps the first write error so Render can report it; svgo
// discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Render writes the widget as a standalone SVG document sized for v.
func (w *Widget) Render(out io.Writer, v layout.Viewport) error {
	start := time.Now()
	plan := w.Plan(v)
	defer func() { log.GetProfiler().RecordRender(plan.Profile.Breakpoint.String(), time.Since(start)) }()
	log.LayoutTrace("viewport %.0fx%.0f resolved to %s (chart height %.0f)",
		v.Width, v.Height, plan.Profile.Breakpoint, plan.Profile.ChartHeight)

	ew := &errWriter{w: out}
	canvas := svg.New(ew)
	canvas.Start(px(plan.Width), px(plan.Height),
		fmt.Sprintf(`data-breakpoint="%s"`, plan.Profile.Breakpoint),
		fmt.Sprintf(`font-family="%s"`, fontFamily))

	canvas.Roundrect(0, 0, px(plan.Width), px(plan.Height), 12, 12,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", dataset.ColorCard, dataset.ColorBorder))

	w.drawHeader(canvas, plan)
	w.drawSlices(canvas, plan)
	if w.Options.ShowLabels {
		w.drawLabels(canvas, plan)
	}
	if w.Options.ShowLegend {
		w.drawLegend(canvas, plan)
	}
	w.drawFooter(canvas, plan)

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func (w *Widget) drawHeader(canvas *svg.SVG, p Plan) {
	done := log.GetProfiler().StartRender("header")
	defer done()

	pad := p.Profile.ContainerPadding
	canvas.Rect(1, 1, px(p.Width-2), px(p.HeaderHeight+pad), "fill:"+dataset.ColorCardTint)

	y := pad + p.Profile.TitleFontSize
	if w.Options.Title != "" {
		canvas.Text(px(pad), px(y), w.Options.Title,
			fmt.Sprintf("font-size:%gpx;font-weight:600;fill:%s", p.Profile.TitleFontSize, dataset.ColorForeground))
	}
	y += 2 + p.Profile.SubtitleFontSize
	canvas.Text(px(pad), px(y), p.Display.Subtitle(),
		fmt.Sprintf("font-size:%gpx;fill:%s", p.Profile.SubtitleFontSize, dataset.ColorMutedForeground))

	if w.Options.ShowLogo && w.Options.LogoURL != "" {
		h := p.Profile.LogoSize
		lw := h * LogoAspect
		canvas.Image(px(p.Width-pad-lw), px(pad), px(lw), px(h), attr(w.Options.LogoURL), `class="logo"`)
	}
}

func (w *Widget) drawSlices(canvas *svg.SVG, p Plan) {
	done := log.GetProfiler().StartRender("slices")
	defer done()

	if p.Outer <= 0 {
		return
	}

	canvas.Group(`class="slices"`)
	for _, l := range p.Labels {
		span := l.EndAngle - l.StartAngle
		if span <= 0 {
			continue
		}
		canvas.Group(`class="slice"`)
		canvas.Title(fmt.Sprintf("%s\nValue: %s", l.Segment.Name, pie.FormatGrouped(l.Segment.Value)))
		canvas.Path(slicePath(p.Center, p.Inner, p.Outer, l.StartAngle, l.EndAngle, len(p.Labels) > 1),
			"fill:"+l.Segment.Color())
		canvas.Gend()
	}
	canvas.Gend()
}

// slicePath returns the SVG path of one slice. Neighbouring slices are
// separated by PaddingAngle when padded is set.
func slicePath(c pie.Point, inner, outer, start, end float64, padded bool) string {
	if padded {
		pad := PaddingAngle * math.Pi / 180
		if end-start > pad {
			start += pad / 2
			end -= pad / 2
		}
	}

	// A full turn cannot be drawn as a single arc.
	if end-start >= pie.FullTurn-1e-9 {
		mid := start + math.Pi
		return ring(c, inner, outer, start, mid) + " " + ring(c, inner, outer, mid, end)
	}
	return ring(c, inner, outer, start, end)
}

func ring(c pie.Point, inner, outer, start, end float64) string {
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	outerStart, outerEnd := pie.PointAt(c, outer, start), pie.PointAt(c, outer, end)

	var b strings.Builder
	if inner <= 0 {
		fmt.Fprintf(&b, "M%s L%s A%s,%s 0 %d 1 %s Z",
			coord(c), coord(outerStart), num(outer), num(outer), large, coord(outerEnd))
		return b.String()
	}

	innerStart, innerEnd := pie.PointAt(c, inner, start), pie.PointAt(c, inner, end)
	fmt.Fprintf(&b, "M%s A%s,%s 0 %d 1 %s L%s A%s,%s 0 %d 0 %s Z",
		coord(outerStart), num(outer), num(outer), large, coord(outerEnd),
		coord(innerEnd), num(inner), num(inner), large, coord(innerStart))
	return b.String()
}

func (w *Widget) drawLabels(canvas *svg.SVG, p Plan) {
	done := log.GetProfiler().StartRender("labels")
	defer done()

	canvas.Group(`class="labels"`)
	for _, l := range pie.Visible(p.Labels) {
		g := l.Geometry
		xs := make([]int, len(g.Connector))
		ys := make([]int, len(g.Connector))
		for i, pt := range g.Connector {
			xs[i], ys[i] = px(pt.X), px(pt.Y)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", l.Segment.Color()))

		anchor := string(g.TextAnchor)
		canvas.Text(px(g.Anchor.X), px(g.Anchor.Y), g.NameText,
			fmt.Sprintf("text-anchor:%s;font-size:%gpx;font-weight:500;fill:%s",
				anchor, p.Profile.LabelFontSize, dataset.ColorForeground))
		canvas.Text(px(g.Anchor.X), px(g.Anchor.Y+p.Profile.LabelValueFontSize+2), p.ValueText(l.Segment.Value),
			fmt.Sprintf("text-anchor:%s;font-size:%gpx;fill:%s",
				anchor, p.Profile.LabelValueFontSize, dataset.ColorMutedForeground))
		log.RenderTrace("labels", "segment %d at (%.1f, %.1f) %s", g.Index, g.Anchor.X, g.Anchor.Y, anchor)
	}
	canvas.Gend()
}

func (w *Widget) drawLegend(canvas *svg.SVG, p Plan) {
	done := log.GetProfiler().StartRender("legend")
	defer done()

	size := legendFontSize(p.Display.StackLegend)
	canvas.Group(`class="legend"`)
	for _, item := range p.Legend {
		canvas.Rect(px(item.X), px(item.Y), legendSwatch, legendSwatch,
			fmt.Sprintf("fill:%s", item.Segment.Color()))
		canvas.Text(px(item.X+legendSwatch+legendGap), px(item.Y+legendSwatch), item.Text,
			fmt.Sprintf("font-size:%gpx;fill:%s", size, dataset.ColorMutedForeground))
	}
	canvas.Gend()
}

func (w *Widget) drawFooter(canvas *svg.SVG, p Plan) {
	done := log.GetProfiler().StartRender("footer")
	defer done()

	pad := p.Profile.ContainerPadding
	size := p.Display.FooterFontSize()
	style := fmt.Sprintf("font-size:%gpx;fill:%s", size, dataset.ColorMutedForeground)

	canvas.Line(0, px(p.FooterTop), px(p.Width), px(p.FooterTop),
		fmt.Sprintf("stroke:%s;stroke-width:1", dataset.ColorBorder))

	x, y := pad, p.FooterTop+pad/2+size
	source := "Source: " + w.Options.SourceText
	if w.Options.SourceURL != "" {
		canvas.Link(attr(w.Options.SourceURL), attr(source))
		canvas.Text(px(x), px(y), source, style+";text-decoration:underline")
		canvas.LinkEnd()
	} else {
		canvas.Text(px(x), px(y), source, style)
	}

	if w.Options.Credit != "" {
		if p.Display.StackFooter {
			y += size + footerLineGap
		} else {
			x += TextWidth(source, size) + legendItemGap
		}
		canvas.Text(px(x), px(y), w.Options.Credit, style)
	}

	if w.Options.Notes != "" {
		notesSize := size - 1
		nx := p.Width - pad
		anchor := "end"
		if p.Display.StackFooter {
			y += size + footerLineGap
			nx, anchor = pad, "start"
		}
		canvas.Group(`class="notes"`)
		canvas.Title(w.Options.Notes)
		canvas.Text(px(nx), px(y), "ⓘ Notes", fmt.Sprintf("%s;text-anchor:%s;font-size:%gpx", style, anchor, notesSize))
		canvas.Gend()
	}
}

// attr escapes a value svgo writes into an attribute verbatim.
func attr(v string) string {
	return html.EscapeString(v)
}

func px(v float64) int {
	return int(math.Round(v))
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func coord(pt pie.Point) string {
	return num(pt.X) + "," + num(pt.Y)
}
