package ipc

import "io"

// NewParent builds the parent side of a channel pairing from a worker
// process's pipe handles: the returned Sender writes to the worker's stdin
// and the Receiver reads from the worker's stdout. If stderr is non-nil, a
// relay goroutine forwards each of its lines into the logger at info level
// for the lifetime of that stream. NewParent returns immediately; all I/O
// happens in the background.
//
// Out is the message type sent to the worker, In the type received from it.
func NewParent[Out, In any](stdin io.Writer, stdout, stderr io.Reader, opts ...Option) (*Sender[Out], *Receiver[In]) {
	if stderr != nil {
		o := buildOptions(opts)
		go relayLines(o.logger.Named("stderr_relay"), stderr)
	}
	return newChannel[Out, In](stdin, stdout, opts)
}

// NewWorker builds the worker side of a channel pairing from the process's
// own standard streams: the returned Sender writes to stdout and the Receiver
// reads from stdin. No relay is started — this side is the one being logged.
// Worker code must keep its own logging on stderr so it cannot corrupt the
// message stream.
//
// Out is the message type sent to the parent, In the type received from it.
func NewWorker[Out, In any](stdin io.Reader, stdout io.Writer, opts ...Option) (*Sender[Out], *Receiver[In]) {
	return newChannel[Out, In](stdout, stdin, opts)
}

// newChannel is the shared builder behind NewParent and NewWorker; the two
// constructions differ only in which stream plays which role.
func newChannel[Out, In any](w io.Writer, r io.Reader, opts []Option) (*Sender[Out], *Receiver[In]) {
	return NewSender[Out](w, JSONCodec[Out]{}, opts...), NewReceiver[In](r, JSONCodec[In]{}, opts...)
}
