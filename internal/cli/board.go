package cli

import (
	"context"
	"io"
	"time"

	"github.com/Domenick1991/airboard/internal/kafka"
	"github.com/Domenick1991/airboard/internal/logger"
	"github.com/Domenick1991/airboard/internal/report"
	"github.com/Domenick1991/airboard/internal/service/flights"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Board prints the airport board: banner, diagnostics, summary, table.
type Board struct {
	flights   flights.FlightUseCase
	out       io.Writer
	message   string
	publisher Publisher
	topic     string
}

type BoardOption func(*Board)

// WithMessage sets the greeting banner shown before the report.
func WithMessage(msg string) BoardOption {
	return func(b *Board) {
		b.message = msg
	}
}

func WithPublisher(p Publisher, topic string) BoardOption {
	return func(b *Board) {
		b.publisher = p
		b.topic = topic
	}
}

func NewBoard(svc flights.FlightUseCase, out io.Writer, opts ...BoardOption) *Board {
	b := &Board{flights: svc, out: out}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Show(ctx context.Context) error {
	console := report.NewConsole(b.out)
	console.Banner(b.message)

	list, err := b.flights.List(ctx)
	if err != nil {
		return err
	}

	r := report.Build(list)
	console.Render(r)

	if b.publisher != nil && b.topic != "" {
		event := kafka.NewBoardEvent(r, time.Now())
		if err := b.publisher.Publish(ctx, b.topic, event.RunID, event); err != nil {
			l := logger.GetLogger()
			l.Warn().Err(err).Str("topic", b.topic).Msg("publish board event")
		}
	}
	return nil
}
