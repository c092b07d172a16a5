package chart

import (
	"fmt"
	"strings"

	"github.com/plantdesk/portalctl/internal/analytics"
	"github.com/plantdesk/portalctl/internal/metrics"
)

var dayLabels = [analytics.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	barFill   = "#4f6df5"
	lineColor = "#4f6df5"
	areaFill  = "rgba(79,109,245,0.15)"
	gridColor = "#e3e6ef"
)

// RenderBarSVG renders the weekly histogram as an inline SVG bar chart in
// the normalized 100x100 box.
func RenderBarSVG(report analytics.WeeklyReport) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" preserveAspectRatio="xMidYMid meet">` + "\n")
	writeGrid(&b)

	inner := boxSize - 2*padding
	slot := inner / float64(analytics.DaysPerWeek)
	barWidth := slot * 0.6

	for i, count := range report.Histogram {
		heightPct := BarHeightPercent(count, report.TotalThisWeek, report.MaxCount)
		barHeight := heightPct / 100 * inner
		x := padding + float64(i)*slot + (slot-barWidth)/2
		y := boxSize - padding - barHeight

		fmt.Fprintf(&b, `  <rect x="%s" y="%s" width="%s" height="%s" rx="1" fill="%s"><title>%s: %d</title></rect>`+"\n",
			coord(x), coord(y), coord(barWidth), coord(barHeight), barFill, dayLabels[i], count)
		fmt.Fprintf(&b, `  <text x="%s" y="97" font-size="4" text-anchor="middle" fill="#8a8fa3">%s</text>`+"\n",
			coord(x+barWidth/2), dayLabels[i][:1])
	}

	b.WriteString("</svg>\n")
	metrics.ChartsRenderedTotal.WithLabelValues("bar").Inc()
	return b.String()
}

// RenderLineSVG renders the weekly histogram as an inline SVG line chart
// with a filled area and per-day markers. The stroke starts fully offset
// and animates to zero offset for a draw-in effect; when the path length
// cannot be established the chart renders statically instead of failing.
func RenderLineSVG(report analytics.WeeklyReport) string {
	line := LinePath(report.Histogram, report.MaxCount)
	area := AreaPath(report.Histogram, report.MaxCount)
	length := PathLength(report.Histogram, report.MaxCount)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" preserveAspectRatio="xMidYMid meet">` + "\n")
	writeGrid(&b)

	fmt.Fprintf(&b, `  <path d="%s" fill="%s" stroke="none"/>`+"\n", area, areaFill)

	if length > 0 {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="1.5" stroke-linecap="round" stroke-dasharray="%s" stroke-dashoffset="%s">`+"\n",
			line, lineColor, coord(length), coord(length))
		b.WriteString(`    <animate attributeName="stroke-dashoffset" to="0" dur="1s" fill="freeze"/>` + "\n")
		b.WriteString("  </path>\n")
	} else {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="1.5" stroke-linecap="round"/>`+"\n", line, lineColor)
	}

	for i, p := range Points(report.Histogram, report.MaxCount) {
		fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="1.6" fill="%s"><title>%s: %d</title></circle>`+"\n",
			coord(p.X), coord(p.Y), lineColor, dayLabels[i], report.Histogram[i])
	}

	b.WriteString("</svg>\n")
	metrics.ChartsRenderedTotal.WithLabelValues("line").Inc()
	return b.String()
}

func writeGrid(b *strings.Builder) {
	for _, y := range []float64{padding, boxSize / 2, boxSize - padding} {
		fmt.Fprintf(b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.3"/>`+"\n",
			coord(padding), coord(y), coord(boxSize-padding), coord(y), gridColor)
	}
}
