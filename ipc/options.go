package ipc

import "go.uber.org/zap"

// DefaultQueueCapacity is the default bound on the number of pending outbound
// messages. Small enough to bound memory, large enough to absorb brief bursts
// of stream-side latency.
const DefaultQueueCapacity = 10

type options struct {
	logger   *zap.SugaredLogger
	capacity int
}

type Option func(o *options)

// WithLogger sets the logger that failures and forwarded worker stderr lines
// are reported through. Attach fields to the logger (worker ID, etc.) to tag
// everything the channel logs. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l.Sugar()
	}
}

// WithQueueCapacity sets the bound on the outbound message queue.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   zap.NewNop().Sugar(),
		capacity: DefaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
