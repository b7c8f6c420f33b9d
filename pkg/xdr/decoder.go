package xdr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Decoder consumes XDR wire format from a fixed buffer, advancing a cursor
// as each field is read. Every Decode method mirrors the corresponding
// Encoder method exactly: same byte count, same endianness, same padding.
//
// The decoder borrows the caller's buffer for its lifetime and never
// mutates it. Decoded opaque bytes are returned as fresh copies, so the
// source buffer cannot be aliased through the results.
//
// Every read is bounds-checked before any byte is consumed: a read past the
// remaining buffer fails with a BufferUnderflow error and leaves the cursor
// where it was. After decoding a complete message, call Done to verify no
// trailing bytes remain.
//
// A Decoder is not safe for concurrent use; give each concurrent decode
// pass its own instance.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a decoder reading from data, positioned at the start.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

// Reset replaces the source buffer and rewinds the cursor to the start.
func (d *Decoder) Reset(data []byte) {
	d.buf = data
	d.pos = 0
}

// Position returns the current cursor offset. Together with SetPosition it
// supports lookahead parsing: save the position, decode speculatively, and
// restore on mismatch.
func (d *Decoder) Position() int {
	return d.pos
}

// SetPosition moves the cursor to pos. Returns a BufferUnderflow error when
// pos lies outside [0, len(buffer)].
func (d *Decoder) SetPosition(pos int) error {
	if pos < 0 || pos > len(d.buf) {
		return &Error{
			Code:    ErrBufferUnderflow,
			Message: fmt.Sprintf("position %d outside buffer of %d bytes", pos, len(d.buf)),
			Offset:  d.pos,
		}
	}
	d.pos = pos
	return nil
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Done verifies the cursor has reached the end of the buffer, returning a
// TrailingData error otherwise. Callers use it as a top-level integrity
// check after decoding a complete message.
func (d *Decoder) Done() error {
	if d.pos != len(d.buf) {
		return NewTrailingDataError(d.pos, d.Remaining())
	}
	return nil
}

// read returns the next n bytes of the buffer and advances the cursor.
// On underflow the cursor does not move and no bytes are consumed.
// The returned slice aliases the source buffer; callers that hand bytes
// back to the user must copy.
func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, NewBufferUnderflowError(d.pos, n, d.Remaining())
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// skip consumes and discards n bytes.
func (d *Decoder) skip(n int) error {
	_, err := d.read(n)
	return err
}

// DecodeUint reads a 32-bit unsigned integer, big-endian.
func (d *Decoder) DecodeUint() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeInt reads a 32-bit signed integer, big-endian two's complement.
func (d *Decoder) DecodeInt() (int32, error) {
	v, err := d.DecodeUint()
	return int32(v), err
}

// DecodeEnum reads an enumeration value, represented like a signed integer.
func (d *Decoder) DecodeEnum() (int32, error) {
	return d.DecodeInt()
}

// DecodeBool reads a boolean. Zero decodes as false, any non-zero value as
// true, matching RFC 4506 Section 4.4.
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeUint()
	return v != 0, err
}

// DecodeUhyper reads a 64-bit unsigned integer, big-endian.
func (d *Decoder) DecodeUhyper() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeHyper reads a 64-bit signed integer, big-endian two's complement.
func (d *Decoder) DecodeHyper() (int64, error) {
	v, err := d.DecodeUhyper()
	return int64(v), err
}

// DecodeFloat reads a single-precision IEEE 754 value, big-endian.
func (d *Decoder) DecodeFloat() (float32, error) {
	v, err := d.DecodeUint()
	return math.Float32frombits(v), err
}

// DecodeDouble reads a double-precision IEEE 754 value, big-endian.
func (d *Decoder) DecodeDouble() (float64, error) {
	v, err := d.DecodeUhyper()
	return math.Float64frombits(v), err
}

// DecodeString reads a variable-length string: 4-byte length, that many
// bytes, then the padding to the next 4-byte boundary (discarded).
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.decodeVariable()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBoundedString reads a string whose declared length must not exceed
// max. The check is applied to the untrusted wire-declared length before
// any body byte is read, so a corrupt length field cannot trigger an
// over-read. Mirrors EncodeBoundedString, which checks the actual data
// length on the encode side.
func (d *Decoder) DecodeBoundedString(max uint32) (string, error) {
	length, err := d.DecodeUint()
	if err != nil {
		return "", err
	}
	if length > max {
		return "", &Error{
			Code:    ErrSizeViolation,
			Message: fmt.Sprintf("declared string length %d exceeds maximum %d", length, max),
			Offset:  d.pos,
		}
	}
	b, err := d.readPadded(int(length))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeOpaque reads variable-length opaque data: 4-byte length, that many
// bytes, then the padding (discarded). The returned slice is a copy.
func (d *Decoder) DecodeOpaque() ([]byte, error) {
	b, err := d.decodeVariable()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// DecodeFixedOpaque reads exactly n raw bytes plus padding. There is no
// length prefix on the wire; n is the out-of-band exact-size contract
// shared with the encode side. The returned slice is a copy.
func (d *Decoder) DecodeFixedOpaque(n int) ([]byte, error) {
	b, err := d.readPadded(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// decodeVariable reads a 4-byte length then the padded body. The returned
// slice aliases the source buffer.
func (d *Decoder) decodeVariable() ([]byte, error) {
	length, err := d.DecodeUint()
	if err != nil {
		return nil, err
	}
	return d.readPadded(int(length))
}

// readPadded reads n body bytes and skips the padding that follows them.
func (d *Decoder) readPadded(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	if err := d.skip(padding(n)); err != nil {
		return nil, err
	}
	return b, nil
}
