package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"weightbot/internal/adapter/memory"
	"weightbot/internal/app"
)

func seed(t *testing.T, db *memory.DB, userID int64, day time.Time, value string) {
	t.Helper()
	if err := db.SaveMeasurement(context.Background(), userID, day, decimal.RequireFromString(value)); err != nil {
		t.Fatalf("seed %s: %v", day, err)
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday itself", date(2024, time.March, 11), date(2024, time.March, 11)},
		{"wednesday", date(2024, time.March, 13), date(2024, time.March, 11)},
		{"sunday", date(2024, time.March, 17), date(2024, time.March, 11)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := app.MondayOf(tc.in); !got.Equal(tc.want) {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWeeklyMondayAligned(t *testing.T) {
	svc := app.NewReportService(memory.New())

	// Reference Wednesday: week 0 must span the Monday through Sunday
	// containing it.
	buckets, err := svc.WeeklyAverages(context.Background(), 1, date(2024, time.March, 13), 2)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if !buckets[0].Start.Equal(date(2024, time.March, 11)) || !buckets[0].End.Equal(date(2024, time.March, 17)) {
		t.Fatalf("week 0 spans %s..%s, want 2024-03-11..2024-03-17", buckets[0].Start, buckets[0].End)
	}
	if !buckets[1].Start.Equal(date(2024, time.March, 4)) {
		t.Fatalf("week 1 starts %s, want 2024-03-04", buckets[1].Start)
	}
}

func TestMonthlyYearRollover(t *testing.T) {
	svc := app.NewReportService(memory.New())

	buckets, err := svc.MonthlyAverages(context.Background(), 1, date(2024, time.January, 15), 3)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	wantLabels := []string{"Jan 2024", "Dec 2023", "Nov 2023"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Fatalf("bucket %d label %q, want %q", i, buckets[i].Label, want)
		}
	}
	// February-in-month-bounds check via the rollover bucket.
	if !buckets[1].End.Equal(date(2023, time.December, 31)) {
		t.Fatalf("Dec 2023 ends %s, want 2023-12-31", buckets[1].End)
	}
}

func TestMonthlyAverageAndAbsent(t *testing.T) {
	db := memory.New()
	seed(t, db, 1, date(2023, time.December, 5), "80")
	seed(t, db, 1, date(2023, time.December, 20), "82")
	svc := app.NewReportService(db)

	buckets, err := svc.MonthlyAverages(context.Background(), 1, date(2024, time.January, 15), 3)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	dec := buckets[1]
	if dec.Count != 2 || dec.Average.StringFixed(1) != "81.0" {
		t.Fatalf("Dec 2023: count %d avg %s, want 2 / 81.0", dec.Count, dec.Average)
	}
	// Empty months report absent, never zero and never a division error.
	if buckets[2].Count != 0 {
		t.Fatalf("Nov 2023 count %d, want 0", buckets[2].Count)
	}
}

func TestDailyAndWeeklyEndToEnd(t *testing.T) {
	// User logs 72.4 on Monday and 73.0 on Wednesday, nothing on Tuesday.
	db := memory.New()
	seed(t, db, 1, date(2024, time.March, 11), "72.4")
	seed(t, db, 1, date(2024, time.March, 13), "73.0")
	svc := app.NewReportService(db)
	wednesday := date(2024, time.March, 13)

	daily, err := svc.DailyValues(context.Background(), 1, wednesday, 3)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if daily[0].Count != 1 || daily[0].Average.StringFixed(1) != "73.0" {
		t.Fatalf("day 0: count %d value %s, want 73.0", daily[0].Count, daily[0].Average)
	}
	if daily[1].Count != 0 {
		t.Fatalf("day 1 must be absent, got count %d", daily[1].Count)
	}
	if daily[2].Count != 1 || daily[2].Average.StringFixed(1) != "72.4" {
		t.Fatalf("day 2: count %d value %s, want 72.4", daily[2].Count, daily[2].Average)
	}

	weekly, err := svc.WeeklyAverages(context.Background(), 1, wednesday, 1)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if weekly[0].Count != 2 || weekly[0].Average.StringFixed(1) != "72.7" {
		t.Fatalf("week 0: count %d avg %s, want 2 / 72.7", weekly[0].Count, weekly[0].Average)
	}
}

func TestDailyLabels(t *testing.T) {
	svc := app.NewReportService(memory.New())
	buckets, err := svc.DailyValues(context.Background(), 1, date(2024, time.March, 1), 2)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if buckets[0].Label != "01/03" || buckets[1].Label != "29/02" {
		t.Fatalf("labels %q %q, want 01/03 29/02", buckets[0].Label, buckets[1].Label)
	}
}

func TestUserIsolation(t *testing.T) {
	db := memory.New()
	seed(t, db, 1, date(2024, time.March, 11), "72.4")
	svc := app.NewReportService(db)

	buckets, err := svc.DailyValues(context.Background(), 2, date(2024, time.March, 11), 1)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if buckets[0].Count != 0 {
		t.Fatalf("user 2 sees user 1 data: count %d", buckets[0].Count)
	}
}
