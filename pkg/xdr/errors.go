package xdr

import (
	"errors"
	"fmt"
)

// ErrorCode classifies codec failures.
type ErrorCode int

const (
	// ErrSizeViolation indicates a fixed-size field was given data of the
	// wrong exact length, or a bounded field exceeded its declared maximum.
	// Raised on both the encode side (actual data too long) and the decode
	// side (wire-declared length too long).
	ErrSizeViolation ErrorCode = iota + 1

	// ErrBufferUnderflow indicates a decode operation requested more bytes
	// than remain in the source buffer. Signals truncated or corrupt input.
	ErrBufferUnderflow

	// ErrTrailingData indicates the buffer still held unconsumed bytes at
	// the point the caller expected exhaustion. Signals an over-long or
	// mis-framed message.
	ErrTrailingData
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrSizeViolation:
		return "SizeViolation"
	case ErrBufferUnderflow:
		return "BufferUnderflow"
	case ErrTrailingData:
		return "TrailingData"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error represents a codec failure with a classification code.
type Error struct {
	Code    ErrorCode
	Message string

	// Offset is the decoder cursor position at the time of failure.
	// Encode-side errors carry -1 since the encoder has no cursor.
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Message, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewSizeViolationError creates an encode-side SizeViolation error.
// Decode-side callers set Offset to the cursor position themselves.
func NewSizeViolationError(message string) *Error {
	return &Error{Code: ErrSizeViolation, Message: message, Offset: -1}
}

// NewBufferUnderflowError creates a BufferUnderflow error for a read of
// need bytes at the given cursor offset with remaining bytes left.
func NewBufferUnderflowError(offset, need, remaining int) *Error {
	return &Error{
		Code:    ErrBufferUnderflow,
		Message: fmt.Sprintf("need %d bytes, %d remaining", need, remaining),
		Offset:  offset,
	}
}

// NewTrailingDataError creates a TrailingData error for a buffer with
// remaining unconsumed bytes at the given cursor offset.
func NewTrailingDataError(offset, remaining int) *Error {
	return &Error{
		Code:    ErrTrailingData,
		Message: fmt.Sprintf("%d unconsumed bytes remain", remaining),
		Offset:  offset,
	}
}

// IsSizeViolation reports whether err (or any error it wraps) is a
// SizeViolation codec error.
func IsSizeViolation(err error) bool { return hasCode(err, ErrSizeViolation) }

// IsBufferUnderflow reports whether err (or any error it wraps) is a
// BufferUnderflow codec error.
func IsBufferUnderflow(err error) bool { return hasCode(err, ErrBufferUnderflow) }

// IsTrailingData reports whether err (or any error it wraps) is a
// TrailingData codec error.
func IsTrailingData(err error) bool { return hasCode(err, ErrTrailingData) }

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
