package events

import (
	"context"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// HTTPWriter posts events to a CloudEvents HTTP sink.
type HTTPWriter struct {
	client cloudevents.Client
	target string
}

func NewHTTPWriter(target string) (*HTTPWriter, error) {
	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudevents client: %w", err)
	}
	return &HTTPWriter{client: c, target: target}, nil
}

func (h *HTTPWriter) Write(ctx context.Context, e cloudevents.Event) error {
	result := h.client.Send(cloudevents.ContextWithTarget(ctx, h.target), e)
	if cloudevents.IsUndelivered(result) {
		return fmt.Errorf("failed to deliver event %s: %w", e.ID(), result)
	}
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("event %s was rejected: %w", e.ID(), result)
	}
	return nil
}

func (h *HTTPWriter) Close(_ context.Context) error {
	return nil
}
