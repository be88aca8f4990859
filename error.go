package kel103

import (
	"errors"
	"fmt"
)

var (
	// ErrReadTimeout is returned when the instrument does not produce a
	// reply within the transport read timeout.
	ErrReadTimeout = errors.New("read timeout waiting for reply")
)

// DecodeError is returned when a reply is not valid UTF-8.
type DecodeError struct {
	Reply []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in reply: %q", e.Reply)
}

// ParseError is returned when the numeric part of a reply does not parse.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse value %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MismatchError is returned when the readback after a set command does not
// match the requested value within tolerance. The write itself has already
// reached the instrument and is not rolled back.
type MismatchError struct {
	Op       string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s set incorrectly on the device: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

// ProtocolError is returned when a reply is missing an expected token.
type ProtocolError struct {
	Query string
	Reply string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected reply to %s: %q", e.Query, e.Reply)
}

// ModelError is returned when the identification reply does not name the
// expected instrument model.
type ModelError struct {
	Reply string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("device is not a %s: %q", deviceModel, e.Reply)
}
