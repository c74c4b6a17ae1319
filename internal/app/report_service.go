package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"weightbot/internal/domain"
)

// Bucket is one labelled aggregation bucket, most-recent first in every
// report. Count == 0 means the bucket holds no data; Average is meaningless
// then and callers render it as "no data", never as zero.
type Bucket struct {
	Label   string
	Start   time.Time
	End     time.Time
	Average decimal.Decimal
	Count   int
}

// ReportService turns range queries into monthly, weekly or daily bucketed
// averages. It is used identically by on-demand report commands and by the
// scheduled summary jobs.
type ReportService struct {
	repo domain.MeasurementRepository
}

// NewReportService creates a ReportService backed by the given repository.
func NewReportService(repo domain.MeasurementRepository) *ReportService {
	return &ReportService{repo: repo}
}

// MonthlyAverages returns one bucket per calendar month, starting with the
// month containing ref and walking back months-1 more. Month arithmetic is
// done on integer month counts so the day of month can never skew a rollover.
func (s *ReportService) MonthlyAverages(ctx context.Context, userID int64, ref time.Time, months int) ([]Bucket, error) {
	ref = domain.Day(ref)
	out := make([]Bucket, 0, months)
	for k := 0; k < months; k++ {
		tot := ref.Year()*12 + int(ref.Month()) - 1 - k
		start := time.Date(tot/12, time.Month(tot%12+1), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		b, err := s.bucket(ctx, userID, start.Format("Jan 2006"), start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// WeeklyAverages returns one bucket per Monday-aligned week. Week 0 is the
// full Monday-Sunday span containing ref; week k is that span shifted back
// k*7 days.
func (s *ReportService) WeeklyAverages(ctx context.Context, userID int64, ref time.Time, weeks int) ([]Bucket, error) {
	monday := MondayOf(ref)
	out := make([]Bucket, 0, weeks)
	for k := 0; k < weeks; k++ {
		start := monday.AddDate(0, 0, -7*k)
		end := start.AddDate(0, 0, 6)
		label := fmt.Sprintf("%s–%s", start.Format("02/01"), end.Format("02/01"))
		b, err := s.bucket(ctx, userID, label, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// DailyValues returns one bucket per day, ref first. Each bucket holds the
// single stored value for that day (Count is 0 or 1), not an average.
func (s *ReportService) DailyValues(ctx context.Context, userID int64, ref time.Time, days int) ([]Bucket, error) {
	ref = domain.Day(ref)
	out := make([]Bucket, 0, days)
	for k := 0; k < days; k++ {
		d := ref.AddDate(0, 0, -k)
		b, err := s.bucket(ctx, userID, d.Format("02/01"), d, d)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// MonthSeries returns the raw (date, value) points of the calendar month
// containing monthStart, ascending. Used to build monthly report charts.
func (s *ReportService) MonthSeries(ctx context.Context, userID int64, monthStart time.Time) ([]domain.Measurement, error) {
	start := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.repo.MeasurementsInRange(ctx, userID, start, start.AddDate(0, 1, -1))
}

// MondayOf returns the Monday of the week containing t, at midnight UTC.
func MondayOf(t time.Time) time.Time {
	d := domain.Day(t)
	return d.AddDate(0, 0, -int((d.Weekday()+6)%7))
}

func (s *ReportService) bucket(ctx context.Context, userID int64, label string, start, end time.Time) (Bucket, error) {
	ms, err := s.repo.MeasurementsInRange(ctx, userID, start, end)
	if err != nil {
		return Bucket{}, err
	}
	b := Bucket{Label: label, Start: start, End: end, Count: len(ms)}
	if len(ms) == 0 {
		return b, nil
	}
	sum := decimal.Zero
	for _, m := range ms {
		sum = sum.Add(m.Value)
	}
	b.Average = sum.Div(decimal.NewFromInt(int64(len(ms))))
	return b, nil
}
