package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/givihq/deliverytime/internal/models"
)

// PredictionRecord is what gets written to the configured sink after each
// served prediction. Sink failures are logged and never surfaced to the
// API caller.
type PredictionRecord struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Restaurant       string    `json:"restaurant"`
	City             string    `json:"city"`
	RoadKm           float64   `json:"road_km"`
	Method           string    `json:"method"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Confidence       int       `json:"confidence"`
}

type Sink interface {
	Write(ctx context.Context, rec PredictionRecord) error
	Close() error
}

// NewSink builds the sink named by the configuration; unset or unknown kinds
// get the console sink.
func NewSink(ctx context.Context, cfg models.SinkConfig) (Sink, error) {
	switch cfg.Kind {
	case "kafka":
		return NewKafkaSink(cfg)
	case "postgres":
		return NewPostgresSink(ctx, cfg.PostgresDSN)
	case "", "console":
		return &ConsoleSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported sink kind: %s", cfg.Kind)
	}
}

type ConsoleSink struct{}

func (c *ConsoleSink) Write(ctx context.Context, rec PredictionRecord) error {
	msg, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	output := fmt.Sprintf("[predictions] %s\n", string(msg))
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleSink) Close() error {
	return nil
}
