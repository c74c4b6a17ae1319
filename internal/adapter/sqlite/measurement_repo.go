package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"weightbot/internal/domain"
)

// SaveMeasurement upserts the measurement keyed by (userID, date).
// Last write wins; no history is kept.
func (d *DB) SaveMeasurement(ctx context.Context, userID int64, date time.Time, value decimal.Decimal) error {
	_, err := d.sql.ExecContext(ctx,
		"REPLACE INTO weights (user_id, date, weight) VALUES (?, ?, ?);",
		userID, date.Format(domain.DayFormat), value.String())
	return err
}

// MeasurementsInRange returns measurements with start <= date <= end,
// ascending by date. Dates are stored as YYYY-MM-DD text, so BETWEEN on
// strings is a correct date comparison.
func (d *DB) MeasurementsInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.Measurement, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT date, weight FROM weights WHERE user_id = ? AND date BETWEEN ? AND ? ORDER BY date;",
		userID, start.Format(domain.DayFormat), end.Format(domain.DayFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Measurement, 0, 8)
	for rows.Next() {
		var day, raw string
		if err := rows.Scan(&day, &raw); err != nil {
			return nil, err
		}
		date, err := time.Parse(domain.DayFormat, day)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", day, err)
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("stored weight %q: %w", raw, err)
		}
		out = append(out, domain.Measurement{UserID: userID, Date: date, Value: value})
	}
	return out, rows.Err()
}
