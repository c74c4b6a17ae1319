package domain

import "context"

// DefaultLanguage is used for users that never picked a language.
const DefaultLanguage = "es"

// Preferences holds per-user settings that survive restarts.
type Preferences struct {
	UserID           int64  `json:"userId"`
	Language         string `json:"language"`
	RemindersEnabled bool   `json:"remindersEnabled"`
}

// PreferenceRepository is the port for preference persistence.
type PreferenceRepository interface {
	// UserPreferences returns the stored preferences, or the defaults
	// (Spanish, reminders on) for a user without a row.
	UserPreferences(ctx context.Context, userID int64) (Preferences, error)
	SaveLanguage(ctx context.Context, userID int64, lang string) error
	SaveRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
}
