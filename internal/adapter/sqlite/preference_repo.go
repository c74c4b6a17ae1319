package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"weightbot/internal/domain"
)

// UserPreferences returns the stored preferences, or the defaults (Spanish,
// reminders on) for a user without a row.
func (d *DB) UserPreferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	p := domain.Preferences{UserID: userID, Language: domain.DefaultLanguage, RemindersEnabled: true}

	var enabled int
	err := d.sql.QueryRowContext(ctx,
		"SELECT language, reminders_enabled FROM user_preferences WHERE user_id = ?;", userID,
	).Scan(&p.Language, &enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	p.RemindersEnabled = enabled != 0
	return p, nil
}

// SaveLanguage stores the user's language preference.
func (d *DB) SaveLanguage(ctx context.Context, userID int64, lang string) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, language) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET language = excluded.language;`,
		userID, lang)
	return err
}

// SaveRemindersEnabled stores the user's morning-reminder toggle.
func (d *DB) SaveRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, reminders_enabled) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET reminders_enabled = excluded.reminders_enabled;`,
		userID, v)
	return err
}
