// Package chart turns weekly histograms into drawing geometry: bar-height
// percentages and SVG path strings in a normalized 100x100 coordinate
// space. All functions are pure and deterministic.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/plantdesk/portalctl/internal/analytics"
)

const (
	// boxSize is the side of the normalized drawing box.
	boxSize = 100.0
	// padding is applied on all four sides of the box.
	padding = 10.0

	// singleBarPercent keeps the lone bar of a one-submission week clearly
	// visible instead of scaling it against itself.
	singleBarPercent = 40.0
	// minBarPercent is the visibility floor for any non-zero bar.
	minBarPercent = 20.0
)

// Point is one per-day marker position in box coordinates.
type Point struct {
	X float64
	Y float64
}

// BarHeightPercent returns the bar height in [0,100] for one day's count.
// Zero-count days always render flat; a week with exactly one submission
// renders its single bar at a fixed 40%.
func BarHeightPercent(count, totalThisWeek, maxCount int) float64 {
	if totalThisWeek == 0 || count == 0 {
		return 0
	}
	if totalThisWeek == 1 {
		return singleBarPercent
	}
	if maxCount < 1 {
		maxCount = 1
	}
	h := float64(count) / float64(maxCount) * 100
	if h < minBarPercent {
		return minBarPercent
	}
	return h
}

// Points maps the 7 histogram values onto evenly spaced marker coordinates
// inside the padded box. Y grows downward, so larger counts sit higher.
func Points(hist [analytics.DaysPerWeek]int, maxCount int) [analytics.DaysPerWeek]Point {
	if maxCount < 1 {
		maxCount = 1
	}
	inner := boxSize - 2*padding
	step := inner / float64(analytics.DaysPerWeek-1)

	var pts [analytics.DaysPerWeek]Point
	for i, v := range hist {
		pts[i] = Point{
			X: padding + float64(i)*step,
			Y: boxSize - padding - float64(v)/float64(maxCount)*inner,
		}
	}
	return pts
}

// LinePath builds the polyline path ("M x,y L x,y ...") through the seven
// day markers.
func LinePath(hist [analytics.DaysPerWeek]int, maxCount int) string {
	pts := Points(hist, maxCount)

	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(coord(p.X))
		b.WriteByte(',')
		b.WriteString(coord(p.Y))
	}
	return b.String()
}

// AreaPath is LinePath closed down to the baseline so the region under the
// line can be filled.
func AreaPath(hist [analytics.DaysPerWeek]int, maxCount int) string {
	pts := Points(hist, maxCount)
	baseline := coord(boxSize - padding)

	var b strings.Builder
	b.WriteString(LinePath(hist, maxCount))
	b.WriteString(" L ")
	b.WriteString(coord(pts[len(pts)-1].X))
	b.WriteByte(',')
	b.WriteString(baseline)
	b.WriteString(" L ")
	b.WriteString(coord(pts[0].X))
	b.WriteByte(',')
	b.WriteString(baseline)
	b.WriteString(" Z")
	return b.String()
}

// PathLength measures the polyline through the day markers. Used to set up
// the draw-in animation; returns 0 when the geometry degenerates so the
// caller can skip animating.
func PathLength(hist [analytics.DaysPerWeek]int, maxCount int) float64 {
	pts := Points(hist, maxCount)
	var total float64
	for i := 1; i < len(pts); i++ {
		total += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return total
}

// coord formats a box coordinate with two-decimal precision, trimming
// trailing zeros so paths stay compact and stable.
func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
