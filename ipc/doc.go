/*
Package ipc provides a typed control-plane channel between a parent process and a spawned worker process, carried over the worker's standard input and output streams. The worker's standard error stream is independently forwarded, line-by-line, into the parent's logger.

Messages are framed as UTF-8 text, one message per line, terminated by a single newline. The default codec is JSON, which guarantees that an encoded message never contains an embedded newline. Each direction of the channel is generic over its own message type, so the parent and the worker can speak different vocabularies.

The channel is fire-and-forget: Send never fails, Recv degrades to end-of-stream when the underlying stream dies, and all failures are reported through the logger rather than surfaced to the caller. Callers that need delivery confirmation must layer acknowledgements into their own message protocol.

Each stream has exactly one owner: a single pump goroutine owns the writable stream, the Receiver owns the readable stream and supports one consumer at a time, and the stderr relay owns the error stream. The only shared structure is the bounded send queue, which provides backpressure when the pump falls behind.

This package does not spawn or manage the worker process itself. The parent obtains pipe handles from os/exec (or equivalent) and hands them to NewParent; the worker passes its own os.Stdin and os.Stdout to NewWorker.
*/
package ipc
