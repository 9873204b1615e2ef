// Package encoding provides low-level encoding and decoding algorithms for
// the binary payloads this module exports.
//
// Most of this module's on-wire data is opaque to a marker's own struct
// tags and versioning (§4.3); these encoders back the narrower places
// where a payload is itself a sequence of same-typed values that benefit
// from a dedicated columnar representation -- a zone's transition table
// (§4.7): an ascending sequence of truncated wall-clock timestamps paired
// with a column of (highly repetitive) UTC-offset indices; and a names
// payload's per-slot string columns (§4.5), keyed by era/month code or by
// a dense weekday/day-period index.
//
// # Architecture
//
// The package is organized around the ColumnarEncoder and ColumnarDecoder
// interfaces:
//
//	type ColumnarEncoder[T comparable] interface {
//	    Write(data T)           // Encode single value
//	    WriteSlice(data []T)    // Encode multiple values (more efficient)
//	    Bytes() []byte          // Get encoded data
//	    Len() int               // Number of values encoded
//	    Size() int              // Size in bytes
//	    Reset()                 // Clear state but keep buffer
//	    Finish()                // Finalize and release resources
//	}
//
//	type ColumnarDecoder[T comparable] interface {
//	    All(data []byte, count int) iter.Seq[T]  // Sequential iteration
//	    At(data []byte, index, count int) (T, bool)  // Random access (if supported)
//	}
//
// # Timestamp Encoding
//
// TimestampDeltaEncoder/Decoder store delta-of-delta compressed
// timestamps: the first value in full, the second as a delta, and every
// value after that as a delta-of-delta. A zone's DST transition table
// repeats the same one- or two-per-year cadence for decades, so the
// deltas stay nearly constant and most later entries take one or two
// bytes.
//
// # Numeric Value Encoding
//
// NumericGorillaEncoder/Decoder apply Facebook's Gorilla XOR compression.
// An offset-index column is exactly the case Gorilla was built for: the
// overwhelming majority of a zone's transitions move between the same
// one or two UTC offsets, so consecutive index values are frequently
// identical (1 bit) or differ by only a handful of meaningful bits.
//
// # Tag (String) Encoding
//
// TagEncoder/Decoder store length-prefixed UTF-8 strings with uvarint
// length headers, both sequential (All) and random-access (At) decode.
// Package datetime's NameTable uses this as the column format for every
// names-payload slot (era, month, weekday, day-period strings), paired
// with a container.AsciiTrie for the code-keyed slots.
//
// # Thread Safety
//
// Encoders are not thread-safe; use one encoder per goroutine. Decoders
// are stateless (or hold only the input slice) and safe for concurrent
// reads.
package encoding
