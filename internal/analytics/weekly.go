// Package analytics buckets submission timestamps into the weekly
// histogram shown on the dashboard. Everything here is pure: the same
// input and reference instant always produce the same report.
package analytics

import (
	"math"
	"time"
)

// DaysPerWeek is the histogram width; slot 0 is Sunday.
const DaysPerWeek = 7

// WeeklyReport is a full snapshot over a list of record timestamps.
// It is recomputed from scratch on every call; nothing is retained.
type WeeklyReport struct {
	// Histogram counts records of the current week by day-of-week.
	Histogram [DaysPerWeek]int
	// TotalThisWeek is the sum over Histogram.
	TotalThisWeek int
	// LastWeekTotal counts records of the preceding week as a scalar.
	LastWeekTotal int
	// ChangePercent is the signed week-over-week change. When last week
	// had no records it is 100 if this week has any, else 0. The 0%/100%
	// asymmetry is deliberate and preserved from the product behaviour.
	ChangePercent int
	// MaxCount is the histogram maximum with a floor of 1 so that scaling
	// stays well-defined for empty weeks.
	MaxCount int
}

// WeeklySnapshot partitions created into the current-week histogram and
// the preceding-week scalar relative to now. Records older than two weeks
// or in the future are ignored.
func WeeklySnapshot(created []time.Time, now time.Time) WeeklyReport {
	weekStart := now.AddDate(0, 0, -7)
	twoWeekStart := now.AddDate(0, 0, -14)

	var report WeeklyReport
	for _, t := range created {
		switch {
		case !t.Before(weekStart) && !t.After(now):
			report.Histogram[int(t.Weekday())]++
			report.TotalThisWeek++
		case !t.Before(twoWeekStart) && t.Before(weekStart):
			report.LastWeekTotal++
		}
	}

	report.ChangePercent = changePercent(report.TotalThisWeek, report.LastWeekTotal)
	report.MaxCount = maxCount(report.Histogram)
	return report
}

func changePercent(thisWeek, lastWeek int) int {
	if lastWeek > 0 {
		return int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))
	}
	if thisWeek > 0 {
		return 100
	}
	return 0
}

func maxCount(hist [DaysPerWeek]int) int {
	max := 1
	for _, v := range hist {
		if v > max {
			max = v
		}
	}
	return max
}
