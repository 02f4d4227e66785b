package msgpack

import "fmt"

// UnsupportedKindError indicates the packer was handed a Value whose kind it
// does not know how to encode. Nothing is written to the sink.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("cannot pack a value of kind %v", e.Kind)
}

// SinkError indicates the output sink rejected a write or accepted only part
// of one. The codec never retries; the stream should be discarded.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink: %v", e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
