// Package telegram is the driving adapter: it long-polls for updates,
// dispatches commands to the application services and implements the
// Messenger port for outbound sends.
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"weightbot/internal/app"
	"weightbot/internal/domain"
	"weightbot/internal/schedule"
)

// Report window sizes, matching the command help texts.
const (
	monthsBack = 6
	weeksBack  = 4
	daysBack   = 6
)

// Bot wires Telegram updates to the application services. The chat id of a
// private chat doubles as the user identity.
type Bot struct {
	api      *tgbotapi.BotAPI
	weights  *app.WeightService
	reports  *app.ReportService
	tracker  *app.CorrelationTracker
	prefs    domain.PreferenceRepository
	renderer domain.ChartRenderer
	sched    *schedule.Scheduler
	loc      *time.Location
	tzName   string
	now      func() time.Time
	log      *zap.SugaredLogger
}

var _ domain.Messenger = (*Bot)(nil)

// New authenticates against the Bot API and returns a Bot ready to Run.
func New(
	token string,
	weights *app.WeightService,
	reports *app.ReportService,
	tracker *app.CorrelationTracker,
	prefs domain.PreferenceRepository,
	renderer domain.ChartRenderer,
	loc *time.Location,
	tzName string,
	log *zap.SugaredLogger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{
		api:      api,
		weights:  weights,
		reports:  reports,
		tracker:  tracker,
		prefs:    prefs,
		renderer: renderer,
		loc:      loc,
		tzName:   tzName,
		now:      time.Now,
		log:      log,
	}, nil
}

// SetScheduler attaches the job scheduler. A nil scheduler leaves the bot in
// a reduced mode where on-demand commands work but nothing recurring is ever
// registered.
func (b *Bot) SetScheduler(s *schedule.Scheduler) {
	b.sched = s
}

// SendText delivers a text message and returns its Telegram message id.
func (b *Bot) SendText(ctx context.Context, userID int64, text string) (int, error) {
	sent, err := b.api.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// SendImage delivers a PNG with a caption.
func (b *Bot) SendImage(ctx context.Context, userID int64, png []byte, caption string) error {
	photo := tgbotapi.NewPhoto(userID, tgbotapi.FileBytes{Name: "weight.png", Bytes: png})
	photo.Caption = caption
	_, err := b.api.Send(photo)
	return err
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.log.Infow("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.Chat.ID
	lang := b.language(ctx, userID)

	if msg.IsCommand() {
		b.handleCommand(ctx, userID, lang, msg)
		return
	}
	b.handleFreeText(ctx, userID, lang, msg)
}

func (b *Bot) language(ctx context.Context, userID int64) string {
	prefs, err := b.prefs.UserPreferences(ctx, userID)
	if err != nil {
		b.log.Warnw("load preferences", "user", userID, "error", err)
		return domain.DefaultLanguage
	}
	return prefs.Language
}

// reply sends text and logs delivery failures instead of propagating them.
func (b *Bot) reply(ctx context.Context, userID int64, text string) {
	if _, err := b.SendText(ctx, userID, text); err != nil {
		b.log.Warnw("send failed", "user", userID, "error", err)
	}
}

func (b *Bot) today() time.Time {
	return domain.Day(b.now().In(b.loc))
}
