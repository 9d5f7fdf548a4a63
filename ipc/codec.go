package ipc

import "encoding/json"

// A Codec translates messages to and from their single-line wire form.
// Encode must never produce bytes containing a newline; the send pump appends
// the line terminator itself. Decode is given the line with the terminator
// already stripped.
type Codec[T any] interface {
	Encode(msg T) ([]byte, error)
	Decode(line []byte) (T, error)
}

// JSONCodec is the default Codec. json.Marshal escapes control characters
// inside strings, so the encoded form of any message is a single line.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(msg T) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec[T]) Decode(line []byte) (T, error) {
	var msg T
	err := json.Unmarshal(line, &msg)
	return msg, err
}
