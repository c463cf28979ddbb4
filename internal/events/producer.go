package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	CalculationMessageKind string = "load-planner.events.calculation"
	ExportMessageKind      string = "load-planner.events.export"
	defaultSource          string = "load-planner"

	closeTimeout = 5 * time.Second
)

var ErrProducerClosed = errors.New("event producer is closed")

// Writer is the interface to be implemented by the underlying writer.
type Writer interface {
	Write(ctx context.Context, e cloudevents.Event) error
	Close(ctx context.Context) error
}

// EventProducer buffers events and hands them to a Writer from a single goroutine,
// so callers never wait on the writer.
type EventProducer struct {
	buffer  *buffer
	wakeCh  chan struct{}
	doneCh  chan struct{}
	stopped chan struct{}
	writer  Writer
	source  string

	// lock orders buffered writes before the close of doneCh so the final flush sees them.
	lock      sync.RWMutex
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		buffer:  newBuffer(),
		wakeCh:  make(chan struct{}, 1),
		doneCh:  make(chan struct{}),
		stopped: make(chan struct{}),
		writer:  w,
		source:  defaultSource,
	}

	for _, o := range opts {
		o(ep)
	}

	go ep.run()
	return ep
}

// Write queues payload, encoded as JSON, as an event of the given kind.
func (ep *EventProducer) Write(ctx context.Context, kind string, payload any) error {
	d, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ep.lock.RLock()
	defer ep.lock.RUnlock()

	if ep.closed {
		return ErrProducerClosed
	}

	if err := ep.buffer.PushBack(&message{Kind: kind, Data: d}); err != nil {
		return err
	}

	select {
	case ep.wakeCh <- struct{}{}:
	default:
	}

	return nil
}

// Close flushes the pending events and closes the writer.
func (ep *EventProducer) Close() error {
	ep.closeOnce.Do(func() {
		ep.lock.Lock()
		ep.closed = true
		close(ep.doneCh)
		ep.lock.Unlock()

		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		g, ctx := errgroup.WithContext(closeCtx)
		g.Go(func() error {
			select {
			case <-ep.stopped:
			case <-ctx.Done():
				return ctx.Err()
			}
			return ep.writer.Close(ctx)
		})
		if err := g.Wait(); err != nil {
			zap.S().Named("event_producer").Errorf("event producer closed with error: %s", err)
			ep.closeErr = err
			return
		}

		zap.S().Named("event_producer").Info("event producer closed")
	})

	return ep.closeErr
}

func (ep *EventProducer) run() {
	defer close(ep.stopped)

	for {
		select {
		case <-ep.wakeCh:
			ep.flush()
		case <-ep.doneCh:
			ep.flush()
			return
		}
	}
}

func (ep *EventProducer) flush() {
	for msg := ep.buffer.Pop(); msg != nil; msg = ep.buffer.Pop() {
		e := cloudevents.NewEvent()
		e.SetID(uuid.NewString())
		e.SetSource(ep.source)
		e.SetType(msg.Kind)
		e.SetTime(time.Now())
		_ = e.SetData(cloudevents.ApplicationJSON, json.RawMessage(msg.Data))

		if err := ep.writer.Write(context.TODO(), e); err != nil {
			zap.S().Named("event_producer").Errorw("failed to send event", "error", err, "type", msg.Kind)
		}
	}
}
