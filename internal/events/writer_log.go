package events

import (
	"context"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"go.uber.org/zap"
)

// LogWriter logs every event. Used when no sink is configured.
type LogWriter struct{}

func (s *LogWriter) Write(ctx context.Context, e cloudevents.Event) error {
	zap.S().Named("event_writer").Infow("event written", "type", e.Type(), "id", e.ID(), "data", string(e.Data()))
	return nil
}

func (s *LogWriter) Close(_ context.Context) error {
	return nil
}
