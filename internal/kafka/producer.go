package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airboard/internal/logger"
	"github.com/Domenick1991/airboard/internal/report"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// BoardEvent is published once per rendered board.
type BoardEvent struct {
	Type               string            `json:"type"`
	RunID              string            `json:"run_id"`
	FlightCount        int               `json:"flight_count"`
	AvgDurationMinutes int               `json:"avg_duration_minutes"`
	Rows               []report.BoardRow `json:"rows"`
	GeneratedAt        time.Time         `json:"generated_at"`
}

func NewBoardEvent(r report.Report, now time.Time) BoardEvent {
	event := BoardEvent{
		Type:        "board_rendered",
		RunID:       uuid.NewString(),
		Rows:        r.Board,
		GeneratedAt: now,
	}
	if r.Summary != nil {
		event.FlightCount = r.Summary.FlightCount
		event.AvgDurationMinutes = r.Summary.AvgDuration
	}
	return event
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	l := logger.GetLogger()
	l.Debug().Str("topic", topic).Str("key", key).Msg("publishing to kafka")

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	l.Info().Str("topic", topic).Str("key", key).Msg("published to kafka")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
