package xdr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoder serializes values into XDR wire format. It is an append-only
// accumulator: each Encode method appends the encoded bytes of one field,
// and Bytes returns the concatenated stream once all fields of the current
// message have been written.
//
// Methods that can violate a size contract return an error; after any error
// the encoder holds a partial stream and must be Reset (or discarded) rather
// than reused. Infallible primitives return nothing.
//
// An Encoder is not safe for concurrent use; give each concurrent encode
// pass its own instance.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty encoder ready for a new message.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Reset discards all accumulated bytes, keeping the underlying storage for
// reuse by the next message.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the encoded stream accumulated so far. The returned slice
// aliases the encoder's internal storage and is only valid until the next
// Encode or Reset call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes accumulated so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// EncodeUint appends a 32-bit unsigned integer, big-endian.
func (e *Encoder) EncodeUint(v uint32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, v)
}

// EncodeInt appends a 32-bit signed integer, big-endian two's complement.
func (e *Encoder) EncodeInt(v int32) {
	e.EncodeUint(uint32(v))
}

// EncodeEnum appends an enumeration value. Per RFC 4506 Section 4.3 enums
// are represented exactly like signed integers.
func (e *Encoder) EncodeEnum(v int32) {
	e.EncodeInt(v)
}

// EncodeBool appends a boolean as a 32-bit integer, 1 for true and 0 for
// false.
func (e *Encoder) EncodeBool(v bool) {
	if v {
		e.EncodeUint(1)
	} else {
		e.EncodeUint(0)
	}
}

// EncodeUhyper appends a 64-bit unsigned integer, big-endian.
func (e *Encoder) EncodeUhyper(v uint64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, v)
}

// EncodeHyper appends a 64-bit signed integer, big-endian two's complement.
func (e *Encoder) EncodeHyper(v int64) {
	e.EncodeUhyper(uint64(v))
}

// EncodeFloat appends a single-precision IEEE 754 value, big-endian.
func (e *Encoder) EncodeFloat(v float32) {
	e.EncodeUint(math.Float32bits(v))
}

// EncodeDouble appends a double-precision IEEE 754 value, big-endian.
func (e *Encoder) EncodeDouble(v float64) {
	e.EncodeUhyper(math.Float64bits(v))
}

// EncodeString appends a variable-length string: 4-byte length, the raw
// bytes, then zero padding to the next 4-byte boundary.
func (e *Encoder) EncodeString(s string) {
	e.EncodeUint(uint32(len(s)))
	e.buf = append(e.buf, s...)
	e.pad(len(s))
}

// EncodeBoundedString appends a string whose byte length must not exceed
// max. The bound is a declared upper limit, not a fixed width: the wire
// format is identical to EncodeString. Returns a SizeViolation error when
// the string is too long.
func (e *Encoder) EncodeBoundedString(max uint32, s string) error {
	if uint64(len(s)) > uint64(max) {
		return NewSizeViolationError(fmt.Sprintf("string is %d bytes, maximum is %d", len(s), max))
	}
	e.EncodeString(s)
	return nil
}

// EncodeOpaque appends variable-length opaque data: 4-byte length, the raw
// bytes, then zero padding to the next 4-byte boundary.
func (e *Encoder) EncodeOpaque(data []byte) {
	e.EncodeUint(uint32(len(data)))
	e.buf = append(e.buf, data...)
	e.pad(len(data))
}

// EncodeFixedOpaque appends fixed-length opaque data: exactly n raw bytes
// with no length prefix, then zero padding to the next 4-byte boundary.
// The size is an exact contract, not a bound; the decode side must supply
// the same n out-of-band. Returns a SizeViolation error when len(data) != n.
func (e *Encoder) EncodeFixedOpaque(n int, data []byte) error {
	if len(data) != n {
		return NewSizeViolationError(fmt.Sprintf("opaque data is %d bytes, want exactly %d", len(data), n))
	}
	e.buf = append(e.buf, data...)
	e.pad(n)
	return nil
}

var zeroPad [3]byte

// pad appends zero bytes so a payload of n bytes ends on a 4-byte boundary.
func (e *Encoder) pad(n int) {
	if p := padding(n); p > 0 {
		e.buf = append(e.buf, zeroPad[:p]...)
	}
}

// padding returns the number of zero bytes that follow a payload of n bytes.
func padding(n int) int {
	return (4 - n%4) % 4
}
