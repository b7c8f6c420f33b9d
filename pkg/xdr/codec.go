package xdr

import "fmt"

// ============================================================================
// Codec Interface
// ============================================================================

// Codec is implemented by types that can encode and decode themselves in
// XDR format. Field order is the implementer's contract: Encode and Decode
// must visit the same fields in the same order.
type Codec interface {
	Encode(*Encoder) error
	Decode(*Decoder) error
}

// Marshal encodes c into a fresh buffer. The returned slice is owned by the
// caller and does not alias any encoder state.
func Marshal(c Codec) ([]byte, error) {
	enc := NewEncoder()
	if err := c.Encode(enc); err != nil {
		return nil, fmt.Errorf("xdr encode: %w", err)
	}
	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())
	return out, nil
}

// Unmarshal decodes a complete message from data into c. The buffer must be
// consumed exactly: leftover bytes fail with a TrailingData error, so a
// mis-framed message cannot pass silently.
func Unmarshal(data []byte, c Codec) error {
	dec := NewDecoder(data)
	if err := c.Decode(dec); err != nil {
		return fmt.Errorf("xdr decode: %w", err)
	}
	return dec.Done()
}

// ============================================================================
// Discriminated Union Helpers
// ============================================================================

// EncodeUnionDiscriminant writes the uint32 discriminant of an XDR union.
// An alias for EncodeUint that makes union encode code self-documenting.
//
// Per RFC 4506 Section 4.15, the discriminant is always encoded as a uint32
// before the union arm data.
func EncodeUnionDiscriminant(e *Encoder, disc uint32) {
	e.EncodeUint(disc)
}

// DecodeUnionDiscriminant reads the uint32 discriminant of an XDR union.
// An alias for DecodeUint that makes union decode code self-documenting.
func DecodeUnionDiscriminant(d *Decoder) (uint32, error) {
	return d.DecodeUint()
}

// ============================================================================
// Optional-Data Helpers
// ============================================================================

// EncodeOptional writes an XDR optional-data field: a boolean discriminant,
// then the payload when present. An absent field encodes as just uint32(0).
func EncodeOptional(e *Encoder, present bool, pack func(*Encoder) error) error {
	e.EncodeBool(present)
	if !present {
		return nil
	}
	return pack(e)
}

// DecodeOptional reads an XDR optional-data field, invoking unpack only
// when the discriminant says the payload is present. Returns whether it was.
func DecodeOptional(d *Decoder, unpack func(*Decoder) error) (bool, error) {
	present, err := d.DecodeBool()
	if err != nil || !present {
		return false, err
	}
	if err := unpack(d); err != nil {
		return false, err
	}
	return true, nil
}
