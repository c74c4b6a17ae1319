package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Messenger is the outbound chat transport the core talks through.
type Messenger interface {
	// SendText delivers a text message and returns the transport's id for
	// it, used to correlate structural replies with prompts.
	SendText(ctx context.Context, userID int64, text string) (messageID int, err error)
	SendImage(ctx context.Context, userID int64, png []byte, caption string) error
}

// SeriesPoint is one (date, value) pair handed to a chart renderer.
type SeriesPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// ChartRenderer turns a named time series into an image.
type ChartRenderer interface {
	RenderSeries(title string, points []SeriesPoint) ([]byte, error)
}

// ObjectStore is the port for the remote snapshot store. Artifacts are full
// copies of the local store file; retention is not this system's concern.
type ObjectStore interface {
	Upload(ctx context.Context, name string, data []byte) error
	List(ctx context.Context) ([]string, error)
	Download(ctx context.Context, name string) ([]byte, error)
}
