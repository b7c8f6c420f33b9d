package xdr

import "fmt"

// The array and list combinators are generic top-level functions rather
// than methods because Go methods cannot carry type parameters. Each takes
// a per-element closure: the codec never knows the element schema.

// EncodeList writes items as an XDR optional-data linked list: each element
// is preceded by uint32(1), and the list is terminated by uint32(0). There
// is no explicit count on the wire; the encoding is self-terminating.
func EncodeList[T any](e *Encoder, items []T, pack func(*Encoder, T) error) error {
	for _, item := range items {
		e.EncodeUint(1)
		if err := pack(e, item); err != nil {
			return err
		}
	}
	e.EncodeUint(0)
	return nil
}

// EncodeFixedArray writes exactly n elements with no count prefix and no
// markers. The count is an exact contract shared out-of-band with the
// decode side. Returns a SizeViolation error when len(items) != n.
func EncodeFixedArray[T any](e *Encoder, n int, items []T, pack func(*Encoder, T) error) error {
	if len(items) != n {
		return NewSizeViolationError(fmt.Sprintf("array has %d elements, want exactly %d", len(items), n))
	}
	for _, item := range items {
		if err := pack(e, item); err != nil {
			return err
		}
	}
	return nil
}

// EncodeArray writes a 4-byte element count followed by the elements.
func EncodeArray[T any](e *Encoder, items []T, pack func(*Encoder, T) error) error {
	e.EncodeUint(uint32(len(items)))
	return EncodeFixedArray(e, len(items), items, pack)
}

// DecodeList reads an XDR optional-data linked list: a uint32 continuation
// flag before each element, terminated by the first zero flag. The buffer
// size is the only bound on list length; each iteration consumes at least
// four bytes, so termination is guaranteed.
func DecodeList[T any](d *Decoder, unpack func(*Decoder) (T, error)) ([]T, error) {
	var items []T
	for {
		follows, err := d.DecodeUint()
		if err != nil {
			return nil, err
		}
		if follows == 0 {
			return items, nil
		}
		item, err := unpack(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// DecodeFixedArray invokes unpack exactly n times and returns the elements
// in order. n is the out-of-band exact-size contract; nothing is read from
// the wire besides the elements themselves.
func DecodeFixedArray[T any](d *Decoder, n int, unpack func(*Decoder) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, NewBufferUnderflowError(d.pos, n, d.Remaining())
	}
	// The count may come off the wire and is untrusted; cap the
	// preallocation at what the remaining buffer could plausibly hold.
	items := make([]T, 0, min(n, d.Remaining()/4+1))
	for i := 0; i < n; i++ {
		item, err := unpack(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// DecodeArray reads a 4-byte element count, then that many elements.
func DecodeArray[T any](d *Decoder, unpack func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.DecodeUint()
	if err != nil {
		return nil, err
	}
	return DecodeFixedArray(d, int(n), unpack)
}
