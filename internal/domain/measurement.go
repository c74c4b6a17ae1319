package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DayFormat is the canonical YYYY-MM-DD form of a calendar date.
const DayFormat = "2006-01-02"

// Measurement is one dated weight reading for one user. At most one
// measurement exists per (user, day); a later save for the same day
// replaces the earlier one.
type Measurement struct {
	UserID int64           `json:"userId"`
	Date   time.Time       `json:"date"`
	Value  decimal.Decimal `json:"value"`
}

// MeasurementRepository is the port for measurement persistence.
type MeasurementRepository interface {
	// SaveMeasurement upserts the measurement keyed by (userID, date).
	SaveMeasurement(ctx context.Context, userID int64, date time.Time, value decimal.Decimal) error
	// MeasurementsInRange returns measurements with start <= date <= end,
	// ascending by date. Empty result is not an error.
	MeasurementsInRange(ctx context.Context, userID int64, start, end time.Time) ([]Measurement, error)
}

// Day normalises t to its calendar date at midnight UTC. Measurements are
// keyed by calendar date, not by instant.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
