package ipc

import (
	"bufio"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Sender enqueues outbound messages for the send pump. Copies of a Sender
// share the same queue, so any copy may be handed to another goroutine;
// messages hit the wire in the order the queue observed them.
type Sender[T any] struct {
	queue     chan<- T
	closeOnce *sync.Once
	done      <-chan struct{}
}

// NewSender starts a send pump that owns w exclusively and returns the Sender
// feeding it. Each message is encoded with codec, terminated with a newline,
// written, and flushed individually. NewParent and NewWorker call this with a
// JSONCodec; use it directly to plug in a custom codec.
func NewSender[T any](w io.Writer, codec Codec[T], opts ...Option) *Sender[T] {
	o := buildOptions(opts)
	queue := make(chan T, o.capacity)
	done := make(chan struct{})
	go sendPump(o.logger.Named("send_pump"), w, codec, queue, done)
	return &Sender[T]{
		queue:     queue,
		closeOnce: new(sync.Once),
		done:      done,
	}
}

// Send enqueues msg for the pump. It blocks while the queue is full, so a
// stalled stream throttles producers instead of growing memory without bound.
// Send never fails: if the stream has already died, the enqueue still
// succeeds and the message is silently discarded. Send must not be called
// after Close.
func (s *Sender[T]) Send(msg T) {
	s.queue <- msg
}

// Close releases the queue and waits for the pump to drain what was already
// enqueued and exit. Safe to call on any copy of the Sender, but only once
// across all copies takes effect.
func (s *Sender[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	<-s.done
}

// sendPump is the sole writer for w. It drains the queue in FIFO order until
// the queue is closed. An encode failure drops that one message; a write or
// flush failure kills this direction of the channel permanently, after which
// the pump discards the rest of the queue so producers never block on a dead
// stream.
func sendPump[T any](log *zap.SugaredLogger, w io.Writer, codec Codec[T], queue <-chan T, done chan<- struct{}) {
	defer close(done)

	bw := bufio.NewWriter(w)
	for msg := range queue {
		line, err := codec.Encode(msg)
		if err != nil {
			log.Warnf("failed to encode message: %s", err)
			continue
		}
		log.Debugf("sending %s", line)

		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			log.Warnf("failed to write message: %s", err)
			break
		}
		if err := bw.Flush(); err != nil {
			log.Warnf("failed to flush message: %s", err)
			break
		}
	}

	for range queue {
	}
}
