package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weightbot/internal/app"
	"weightbot/internal/domain"
	"weightbot/internal/i18n"
)

func (b *Bot) handleCommand(ctx context.Context, userID int64, lang string, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, userID, lang, msg.From.FirstName)
	case "help":
		b.reply(ctx, userID, i18n.T(lang, "help"))
	case "log", "weight", "peso":
		b.handleLog(ctx, userID, lang, arg)
	case "daily", "diario":
		b.handleDailyReport(ctx, userID, lang)
	case "weekly", "semanal":
		b.handleWeeklyReport(ctx, userID, lang)
	case "monthly", "mensual":
		b.handleMonthlyReport(ctx, userID, lang)
	case "lang":
		b.handleLanguage(ctx, userID, lang, arg)
	case "reminders":
		b.handleReminders(ctx, userID, lang, arg)
	default:
		b.reply(ctx, userID, i18n.T(lang, "unknown_command"))
	}
}

// handleStart welcomes the user and (re-)registers their recurring jobs.
// Registration replaces any previous one, so repeated /start is harmless.
func (b *Bot) handleStart(ctx context.Context, userID int64, lang, firstName string) {
	if b.sched == nil {
		b.log.Errorw("no scheduler attached, recurring jobs unavailable", "user", userID)
	} else if err := b.sched.Register(userID, b.tzName); err != nil {
		b.log.Errorw("job registration failed", "user", userID, "error", err)
	}
	b.reply(ctx, userID, fmt.Sprintf(i18n.T(lang, "start"), firstName))
}

// handleLog records an explicit value, or arms the tracker and asks for one.
func (b *Bot) handleLog(ctx context.Context, userID int64, lang, arg string) {
	if arg == "" {
		b.tracker.ArmExplicit(userID)
		b.reply(ctx, userID, i18n.T(lang, "ask_weight_now"))
		return
	}

	value, err := app.ParseValue(arg)
	if err != nil {
		b.reply(ctx, userID, i18n.T(lang, "invalid_number"))
		return
	}
	if err := b.weights.Record(ctx, userID, b.today(), value); err != nil {
		b.log.Errorw("record weight", "user", userID, "error", err)
		return
	}
	// An explicit value supersedes any pending question.
	b.tracker.Reset(userID)
	b.reply(ctx, userID, fmt.Sprintf(i18n.T(lang, "weight_registered"), value.StringFixed(1)))
}

// handleFreeText routes bare numeric messages through the correlation
// tracker. Everything else, and numbers nobody asked for, is dropped
// silently: spontaneous numbers without context must not overwrite data.
func (b *Bot) handleFreeText(ctx context.Context, userID int64, lang string, msg *tgbotapi.Message) {
	value, err := app.ParseValue(msg.Text)
	if err != nil {
		return
	}
	replyTo := 0
	if msg.ReplyToMessage != nil {
		replyTo = msg.ReplyToMessage.MessageID
	}
	if !b.tracker.Accept(userID, replyTo) {
		return
	}
	if err := b.weights.Record(ctx, userID, b.today(), value); err != nil {
		b.log.Errorw("record weight", "user", userID, "error", err)
		return
	}
	b.reply(ctx, userID, fmt.Sprintf(i18n.T(lang, "weight_registered"), value.StringFixed(1)))
}

func (b *Bot) handleDailyReport(ctx context.Context, userID int64, lang string) {
	today := b.today()
	buckets, err := b.reports.DailyValues(ctx, userID, today, daysBack)
	if err != nil {
		b.log.Errorw("daily report", "user", userID, "error", err)
		return
	}
	b.reply(ctx, userID, bucketLines(lang, fmt.Sprintf(i18n.T(lang, "daily_header"), daysBack), buckets))

	// Chart over the same window; text is already out, so a render failure
	// only costs the picture.
	ms, err := b.weights.Range(ctx, userID, today.AddDate(0, 0, -(daysBack-1)), today)
	if err != nil || len(ms) < 2 {
		return
	}
	points := make([]domain.SeriesPoint, len(ms))
	for i, m := range ms {
		points[i] = domain.SeriesPoint{Date: m.Date, Value: m.Value}
	}
	png, err := b.renderer.RenderSeries(fmt.Sprintf(i18n.T(lang, "daily_chart_title"), daysBack), points)
	if err != nil {
		b.log.Warnw("daily chart render failed", "user", userID, "error", err)
		return
	}
	if err := b.SendImage(ctx, userID, png, fmt.Sprintf(i18n.T(lang, "daily_chart_caption"), daysBack)); err != nil {
		b.log.Warnw("daily chart send failed", "user", userID, "error", err)
	}
}

func (b *Bot) handleWeeklyReport(ctx context.Context, userID int64, lang string) {
	buckets, err := b.reports.WeeklyAverages(ctx, userID, b.today(), weeksBack)
	if err != nil {
		b.log.Errorw("weekly report", "user", userID, "error", err)
		return
	}
	b.reply(ctx, userID, bucketLines(lang, fmt.Sprintf(i18n.T(lang, "weekly_header"), weeksBack), buckets))
}

func (b *Bot) handleMonthlyReport(ctx context.Context, userID int64, lang string) {
	buckets, err := b.reports.MonthlyAverages(ctx, userID, b.today(), monthsBack)
	if err != nil {
		b.log.Errorw("monthly report", "user", userID, "error", err)
		return
	}
	b.reply(ctx, userID, bucketLines(lang, fmt.Sprintf(i18n.T(lang, "monthly_header"), monthsBack), buckets))
}

func (b *Bot) handleLanguage(ctx context.Context, userID int64, lang, arg string) {
	arg = strings.ToLower(arg)
	if !i18n.Supported(arg) {
		b.reply(ctx, userID, i18n.T(lang, "lang_usage"))
		return
	}
	if err := b.prefs.SaveLanguage(ctx, userID, arg); err != nil {
		b.log.Errorw("save language", "user", userID, "error", err)
		return
	}
	// Confirm in the language just chosen.
	b.reply(ctx, userID, i18n.T(arg, "lang_set"))
}

func (b *Bot) handleReminders(ctx context.Context, userID int64, lang, arg string) {
	var enabled bool
	switch strings.ToLower(arg) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		b.reply(ctx, userID, i18n.T(lang, "reminders_usage"))
		return
	}
	if err := b.prefs.SaveRemindersEnabled(ctx, userID, enabled); err != nil {
		b.log.Errorw("save reminders", "user", userID, "error", err)
		return
	}
	key := "reminders_off"
	if enabled {
		key = "reminders_on"
	}
	b.reply(ctx, userID, i18n.T(lang, key))
}

// bucketLines formats a report header plus one line per bucket.
func bucketLines(lang, header string, buckets []app.Bucket) string {
	lines := make([]string, 0, len(buckets)+1)
	lines = append(lines, header)
	for _, bk := range buckets {
		if bk.Count == 0 {
			lines = append(lines, fmt.Sprintf(i18n.T(lang, "no_data"), bk.Label))
			continue
		}
		lines = append(lines, fmt.Sprintf(i18n.T(lang, "entry"), bk.Label, bk.Average.StringFixed(1)))
	}
	return strings.Join(lines, "\n")
}
