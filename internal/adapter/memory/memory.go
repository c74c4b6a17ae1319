// Package memory implements the repository and object-store ports in memory,
// for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"weightbot/internal/domain"
)

// DB implements in-memory measurement and preference storage.
type DB struct {
	mu           sync.Mutex
	measurements map[string]domain.Measurement // key: "userID|YYYY-MM-DD"
	prefs        map[int64]domain.Preferences
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{
		measurements: make(map[string]domain.Measurement),
		prefs:        make(map[int64]domain.Preferences),
	}
}

// Ensure interfaces are met.
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.PreferenceRepository = (*DB)(nil)
var _ domain.ObjectStore = (*ObjectStore)(nil)

func key(userID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", userID, date.Format(domain.DayFormat))
}

// SaveMeasurement upserts the measurement keyed by (userID, date).
func (db *DB) SaveMeasurement(ctx context.Context, userID int64, date time.Time, value decimal.Decimal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	date = domain.Day(date)
	db.measurements[key(userID, date)] = domain.Measurement{UserID: userID, Date: date, Value: value}
	return nil
}

// MeasurementsInRange returns measurements with start <= date <= end,
// ascending by date.
func (db *DB) MeasurementsInRange(ctx context.Context, userID int64, start, end time.Time) ([]domain.Measurement, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end = domain.Day(start), domain.Day(end)
	out := make([]domain.Measurement, 0, 8)
	for _, m := range db.measurements {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// UserPreferences returns the stored preferences or the defaults.
func (db *DB) UserPreferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.prefs[userID]; ok {
		return p, nil
	}
	return domain.Preferences{UserID: userID, Language: domain.DefaultLanguage, RemindersEnabled: true}, nil
}

// SaveLanguage stores the user's language preference.
func (db *DB) SaveLanguage(ctx context.Context, userID int64, lang string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p := db.prefAt(userID)
	p.Language = lang
	db.prefs[userID] = p
	return nil
}

// SaveRemindersEnabled stores the user's morning-reminder toggle.
func (db *DB) SaveRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	p := db.prefAt(userID)
	p.RemindersEnabled = enabled
	db.prefs[userID] = p
	return nil
}

// prefAt returns the stored preferences or the defaults. Callers hold db.mu.
func (db *DB) prefAt(userID int64) domain.Preferences {
	if p, ok := db.prefs[userID]; ok {
		return p
	}
	return domain.Preferences{UserID: userID, Language: domain.DefaultLanguage, RemindersEnabled: true}
}

// ObjectStore is an in-memory object store.
type ObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewObjectStore creates an empty in-memory object store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: make(map[string][]byte)}
}

// Upload stores data under name, overwriting any existing object.
func (s *ObjectStore) Upload(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[name] = cp
	return nil
}

// List returns the stored object names in unspecified order.
func (s *ObjectStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.objects))
	for n := range s.objects {
		names = append(names, n)
	}
	return names, nil
}

// Download returns the object's bytes.
func (s *ObjectStore) Download(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[name]
	if !ok {
		return nil, fmt.Errorf("object %q not found", name)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}
