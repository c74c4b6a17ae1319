package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weightbot/internal/domain"
	"weightbot/internal/i18n"
)

// NotifyService holds the bodies of the three scheduled jobs: the morning
// prompt, the weekly summary and the monthly report. Transport failures are
// logged and dropped; the next scheduled occurrence supersedes a missed one.
type NotifyService struct {
	repo      domain.MeasurementRepository
	prefs     domain.PreferenceRepository
	reports   *ReportService
	tracker   *CorrelationTracker
	messenger domain.Messenger
	renderer  domain.ChartRenderer
	loc       *time.Location
	now       func() time.Time
	log       *zap.SugaredLogger
}

// NewNotifyService wires a NotifyService.
func NewNotifyService(
	repo domain.MeasurementRepository,
	prefs domain.PreferenceRepository,
	reports *ReportService,
	tracker *CorrelationTracker,
	messenger domain.Messenger,
	renderer domain.ChartRenderer,
	loc *time.Location,
	log *zap.SugaredLogger,
) *NotifyService {
	return &NotifyService{
		repo:      repo,
		prefs:     prefs,
		reports:   reports,
		tracker:   tracker,
		messenger: messenger,
		renderer:  renderer,
		loc:       loc,
		now:       time.Now,
		log:       log,
	}
}

func (s *NotifyService) today() time.Time {
	return domain.Day(s.now().In(s.loc))
}

// DailyPrompt asks the user for today's weight and arms the correlation
// tracker with the prompt's message id. The prompt is suppressed when today
// already has a measurement or the user disabled reminders.
func (s *NotifyService) DailyPrompt(ctx context.Context, userID int64) {
	prefs, err := s.prefs.UserPreferences(ctx, userID)
	if err != nil {
		s.log.Errorw("daily prompt: load preferences", "user", userID, "error", err)
		return
	}
	if !prefs.RemindersEnabled {
		return
	}
	today := s.today()
	ms, err := s.repo.MeasurementsInRange(ctx, userID, today, today)
	if err != nil {
		s.log.Errorw("daily prompt: today lookup", "user", userID, "error", err)
		return
	}
	if len(ms) > 0 {
		// Already logged today, don't ask twice.
		return
	}
	id, err := s.messenger.SendText(ctx, userID, i18n.T(prefs.Language, "daily_reminder"))
	if err != nil {
		s.log.Warnw("daily prompt: send", "user", userID, "error", err)
		return
	}
	s.tracker.ArmScheduled(userID, id)
}

// WeeklySummary compares the current week-to-date average against the prior
// full week and reports direction and magnitude. Skipped entirely when
// either week has fewer than 2 data points.
func (s *NotifyService) WeeklySummary(ctx context.Context, userID int64) {
	prefs, err := s.prefs.UserPreferences(ctx, userID)
	if err != nil {
		s.log.Errorw("weekly summary: load preferences", "user", userID, "error", err)
		return
	}
	buckets, err := s.reports.WeeklyAverages(ctx, userID, s.today(), 2)
	if err != nil {
		s.log.Errorw("weekly summary: aggregate", "user", userID, "error", err)
		return
	}
	cur, prev := buckets[0], buckets[1]
	if cur.Count < 2 || prev.Count < 2 {
		return
	}

	diff := cur.Average.Sub(prev.Average)
	var change string
	switch {
	case diff.IsNegative():
		change = fmt.Sprintf(i18n.T(prefs.Language, "weekly_down"), diff.Abs().StringFixed(1))
	case diff.IsPositive():
		change = fmt.Sprintf(i18n.T(prefs.Language, "weekly_up"), diff.StringFixed(1))
	default:
		change = i18n.T(prefs.Language, "weekly_no_change")
	}
	text := fmt.Sprintf(i18n.T(prefs.Language, "weekly_summary"),
		cur.Average.StringFixed(1), prev.Average.StringFixed(1), change)
	if _, err := s.messenger.SendText(ctx, userID, text); err != nil {
		s.log.Warnw("weekly summary: send", "user", userID, "error", err)
	}
}

// MonthlyReport sends the prior full month's evolution chart with a
// net-change caption. Skipped when the month has fewer than 2 points. A
// chart render failure still delivers the caption text.
func (s *NotifyService) MonthlyReport(ctx context.Context, userID int64) {
	prefs, err := s.prefs.UserPreferences(ctx, userID)
	if err != nil {
		s.log.Errorw("monthly report: load preferences", "user", userID, "error", err)
		return
	}
	today := s.today()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	ms, err := s.reports.MonthSeries(ctx, userID, monthStart)
	if err != nil {
		s.log.Errorw("monthly report: series", "user", userID, "error", err)
		return
	}
	if len(ms) < 2 {
		return
	}

	first, last := ms[0].Value, ms[len(ms)-1].Value
	diff := last.Sub(first)
	verdict := fmt.Sprintf(i18n.T(prefs.Language, "monthly_up"), diff.StringFixed(1))
	if diff.IsNegative() {
		verdict = fmt.Sprintf(i18n.T(prefs.Language, "monthly_down"), diff.Abs().StringFixed(1))
	}
	caption := fmt.Sprintf(i18n.T(prefs.Language, "monthly_caption"),
		monthStart.Format("Jan 2006"), first.StringFixed(1), last.StringFixed(1), verdict)

	points := make([]domain.SeriesPoint, len(ms))
	for i, m := range ms {
		points[i] = domain.SeriesPoint{Date: m.Date, Value: m.Value}
	}
	title := fmt.Sprintf(i18n.T(prefs.Language, "monthly_chart_title"), monthStart.Format("January 2006"))
	png, err := s.renderer.RenderSeries(title, points)
	if err != nil {
		s.log.Warnw("monthly report: render", "user", userID, "error", err)
		if _, err := s.messenger.SendText(ctx, userID, caption); err != nil {
			s.log.Warnw("monthly report: send text", "user", userID, "error", err)
		}
		return
	}
	if err := s.messenger.SendImage(ctx, userID, png, caption); err != nil {
		s.log.Warnw("monthly report: send image", "user", userID, "error", err)
	}
}
