package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"weightbot/internal/domain"
)

// ErrInvalidValue is returned when a submitted weight does not parse as a
// positive number.
var ErrInvalidValue = errors.New("invalid weight value")

// Snapshotter triggers a best-effort backup after a successful write.
type Snapshotter interface {
	SnapshotAsync()
}

// WeightService encapsulates measurement recording and retrieval use cases.
type WeightService struct {
	repo    domain.MeasurementRepository
	backups Snapshotter
}

// NewWeightService creates a WeightService backed by the given repository.
// backups may be nil when no remote snapshot target is configured.
func NewWeightService(repo domain.MeasurementRepository, backups Snapshotter) *WeightService {
	return &WeightService{repo: repo, backups: backups}
}

// ParseValue parses a user-submitted weight. A comma is accepted as the
// decimal separator ("72,4" and "72.4" are equivalent).
func ParseValue(text string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(text), ",", "."))
	if err != nil || !v.IsPositive() {
		return decimal.Decimal{}, ErrInvalidValue
	}
	return v, nil
}

// Record upserts the measurement for (userID, date). A write for an existing
// day replaces the stored value; no history is kept. After a successful write
// a background snapshot is triggered.
func (s *WeightService) Record(ctx context.Context, userID int64, date time.Time, value decimal.Decimal) error {
	if !value.IsPositive() {
		return ErrInvalidValue
	}
	if err := s.repo.SaveMeasurement(ctx, userID, domain.Day(date), value); err != nil {
		return err
	}
	if s.backups != nil {
		s.backups.SnapshotAsync()
	}
	return nil
}

// Range returns the user's measurements with start <= date <= end, ascending.
func (s *WeightService) Range(ctx context.Context, userID int64, start, end time.Time) ([]domain.Measurement, error) {
	return s.repo.MeasurementsInRange(ctx, userID, domain.Day(start), domain.Day(end))
}
