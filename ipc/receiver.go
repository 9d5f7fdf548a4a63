package ipc

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ErrMalformed is returned by Recv when a line arrives that the codec cannot
// decode. The channel itself is fine; the caller should call Recv again.
var ErrMalformed = errors.New("malformed message line")

// Receiver yields inbound messages one at a time. It owns its stream
// exclusively and supports a single consumer; concurrent Recv calls are not
// supported.
type Receiver[T any] struct {
	log    *zap.SugaredLogger
	br     *bufio.Reader
	codec  Codec[T]
	failed bool
}

// NewReceiver returns a Receiver that reads newline-delimited messages from r
// and decodes them with codec. NewParent and NewWorker call this with a
// JSONCodec; use it directly to plug in a custom codec.
func NewReceiver[T any](r io.Reader, codec Codec[T], opts ...Option) *Receiver[T] {
	o := buildOptions(opts)
	return &Receiver[T]{
		log:   o.logger.Named("recv"),
		br:    bufio.NewReader(r),
		codec: codec,
	}
}

// Recv blocks until the next message arrives and returns it. It returns
// io.EOF once the stream has ended or failed; after that every call returns
// io.EOF immediately without touching the stream again. A line that cannot
// be decoded returns ErrMalformed and leaves the channel healthy — call Recv
// again for the next message.
func (r *Receiver[T]) Recv() (T, error) {
	var zero T
	if r.failed {
		return zero, io.EOF
	}

	line, err := r.br.ReadString('\n')
	if err != nil {
		// terminal either way: a broken stream can't heal, and a cleanly
		// closed one has nothing more to say
		r.failed = true
		if err != io.EOF {
			r.log.Warnf("failed to read next line: %s", err)
			return zero, io.EOF
		}
		if line == "" {
			return zero, io.EOF
		}
		// the peer's final line was unterminated; still deliver it
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	r.log.Debugf("received %s", line)

	msg, err := r.codec.Decode([]byte(line))
	if err != nil {
		r.log.Warnf("failed to decode message: %s", err)
		return zero, ErrMalformed
	}
	return msg, nil
}
