package analytics

import (
	"testing"
	"time"
)

func TestWeeklySnapshotPartitionsTwoWeeks(t *testing.T) {
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC) // a Wednesday
	created := []time.Time{
		now.AddDate(0, 0, -1),  // this week
		now.AddDate(0, 0, -3),  // this week
		now.AddDate(0, 0, -8),  // last week
		now.AddDate(0, 0, -10), // last week
		now.AddDate(0, 0, -20), // out of range, ignored
	}

	report := WeeklySnapshot(created, now)

	if report.TotalThisWeek != 2 {
		t.Fatalf("TotalThisWeek = %d, want 2", report.TotalThisWeek)
	}
	if report.LastWeekTotal != 2 {
		t.Fatalf("LastWeekTotal = %d, want 2", report.LastWeekTotal)
	}
	if report.ChangePercent != 0 {
		t.Fatalf("ChangePercent = %d, want 0", report.ChangePercent)
	}

	// -1d from Wednesday is Tuesday, -3d is Sunday.
	if report.Histogram[int(time.Tuesday)] != 1 || report.Histogram[int(time.Sunday)] != 1 {
		t.Fatalf("histogram misplaced the current-week records: %v", report.Histogram)
	}
	sum := 0
	for _, v := range report.Histogram {
		sum += v
	}
	if sum != report.TotalThisWeek {
		t.Fatalf("histogram sum %d != TotalThisWeek %d", sum, report.TotalThisWeek)
	}
}

func TestWeeklySnapshotEmptyInput(t *testing.T) {
	report := WeeklySnapshot(nil, time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC))

	if report.TotalThisWeek != 0 || report.LastWeekTotal != 0 {
		t.Fatalf("empty input must produce zero totals: %+v", report)
	}
	if report.ChangePercent != 0 {
		t.Fatalf("empty weeks yield 0%%, got %d", report.ChangePercent)
	}
	if report.MaxCount != 1 {
		t.Fatalf("MaxCount floors at 1, got %d", report.MaxCount)
	}
	for i, v := range report.Histogram {
		if v != 0 {
			t.Fatalf("histogram slot %d = %d, want 0", i, v)
		}
	}
}

func TestWeeklySnapshotFutureAndBoundaryRecords(t *testing.T) {
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.UTC)
	created := []time.Time{
		now,                    // boundary: included in this week
		now.Add(time.Hour),     // future: ignored
		now.AddDate(0, 0, -7),  // boundary: exactly one week old, this week
		now.AddDate(0, 0, -14), // boundary: exactly two weeks old, last week
	}

	report := WeeklySnapshot(created, now)

	if report.TotalThisWeek != 2 {
		t.Fatalf("TotalThisWeek = %d, want 2", report.TotalThisWeek)
	}
	if report.LastWeekTotal != 1 {
		t.Fatalf("LastWeekTotal = %d, want 1", report.LastWeekTotal)
	}
}

func TestChangePercentAsymmetry(t *testing.T) {
	tests := []struct {
		name               string
		thisWeek, lastWeek int
		want               int
	}{
		{"both empty", 0, 0, 0},
		{"growth from nothing", 3, 0, 100},
		{"collapse to nothing", 0, 4, -100},
		{"half", 2, 4, -50},
		{"double", 4, 2, 100},
		{"rounding", 1, 3, -67},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := changePercent(tc.thisWeek, tc.lastWeek); got != tc.want {
				t.Fatalf("changePercent(%d, %d) = %d, want %d", tc.thisWeek, tc.lastWeek, got, tc.want)
			}
		})
	}
}
