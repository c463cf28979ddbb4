package events

type ProducerOptions func(e *EventProducer)

// WithSource sets the source attribute of every event.
func WithSource(source string) ProducerOptions {
	return func(e *EventProducer) {
		if source != "" {
			e.source = source
		}
	}
}

// WithBufferSize bounds the number of pending events. Writes beyond it fail with ErrBufferFull.
func WithBufferSize(size int) ProducerOptions {
	return func(e *EventProducer) {
		if size > 0 {
			e.buffer.max = size
		}
	}
}
