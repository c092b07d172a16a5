package chart

import (
	"strings"
	"testing"

	"github.com/plantdesk/portalctl/internal/analytics"
)

func weekOf(hist [analytics.DaysPerWeek]int) analytics.WeeklyReport {
	total := 0
	max := 1
	for _, v := range hist {
		total += v
		if v > max {
			max = v
		}
	}
	return analytics.WeeklyReport{Histogram: hist, TotalThisWeek: total, MaxCount: max}
}

func TestRenderBarSVGSingleSubmissionWeek(t *testing.T) {
	report := weekOf([analytics.DaysPerWeek]int{0, 0, 1, 0, 0, 0, 0})
	svg := RenderBarSVG(report)

	if got := strings.Count(svg, "<rect"); got != analytics.DaysPerWeek {
		t.Fatalf("expected %d bars, got %d", analytics.DaysPerWeek, got)
	}
	// The lone bar renders at 40% of the inner height (32 units); every
	// other bar is flat.
	if !strings.Contains(svg, `height="32"`) {
		t.Fatalf("single-submission bar should be 32 units tall:\n%s", svg)
	}
	if got := strings.Count(svg, `height="0"`); got != analytics.DaysPerWeek-1 {
		t.Fatalf("expected %d flat bars, got %d", analytics.DaysPerWeek-1, got)
	}
}

func TestRenderLineSVGAnimatesDrawIn(t *testing.T) {
	report := weekOf([analytics.DaysPerWeek]int{1, 3, 2, 5, 4, 2, 1})
	svg := RenderLineSVG(report)

	if !strings.Contains(svg, "stroke-dasharray") || !strings.Contains(svg, "stroke-dashoffset") {
		t.Fatal("line chart should set up the dash animation")
	}
	if !strings.Contains(svg, `<animate attributeName="stroke-dashoffset" to="0"`) {
		t.Fatal("line chart should animate the dash offset to zero")
	}
	if got := strings.Count(svg, "<circle"); got != analytics.DaysPerWeek {
		t.Fatalf("expected %d day markers, got %d", analytics.DaysPerWeek, got)
	}
}

func TestRenderLineSVGIsDeterministic(t *testing.T) {
	report := weekOf([analytics.DaysPerWeek]int{2, 0, 4, 1, 0, 3, 2})
	first := RenderLineSVG(report)
	for i := 0; i < 5; i++ {
		if got := RenderLineSVG(report); got != first {
			t.Fatal("render output changed between identical calls")
		}
	}
}
