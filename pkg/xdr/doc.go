// Package xdr implements encoding and decoding of the XDR (External Data
// Representation) wire format per RFC 4506.
//
// The package provides a symmetric Encoder/Decoder pair. The Encoder is an
// append-only byte accumulator with one method per XDR primitive; the Decoder
// wraps a caller-supplied buffer with a cursor and mirrors every primitive
// exactly. Array and list combinators are generic top-level functions that
// take per-element encode/decode closures, so higher-level protocols can
// compose them without the codec knowing any schema.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte integers
//   - 4-byte alignment for all data types
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are padded with zeros to 4-byte boundaries
//
// The codec performs no I/O and never logs; every failure surfaces as an
// *Error classified as a size violation, a buffer underflow, or trailing
// data. Any codec error is terminal for the current message.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
