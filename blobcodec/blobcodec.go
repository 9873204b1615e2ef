// Package blobcodec implements the three buffer-provider payload
// formats named in spec.md §6.2: postcard (default), bincode, and JSON.
//
// Grounded on compress.Codec's interface-plus-keyed-factory pattern
// (teacher: compress/codec.go's Compressor/Decompressor/Codec interfaces
// and CreateCodec/GetCodec factory functions) -- Codec here plays the
// same role, keyed by Format instead of format.CompressionType.
package blobcodec

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Format selects a buffer-provider wire format.
type Format uint8

const (
	// FormatPostcard is the default: the wire bytes ARE the marker's
	// packed container bytes, so decode is the identity function --
	// this is what makes the "Baked" and "Buffer/postcard" providers
	// equally zero-copy.
	FormatPostcard Format = iota
	// FormatBincode is a compact binary envelope around the payload,
	// requiring an allocate-and-copy decode step -- it stands in for
	// ICU4X's bincode buffer format using github.com/fxamacker/cbor/v2
	// (sourced from kedacore-keda's dependency list), since no bincode-
	// equivalent library appears anywhere in the retrieval pack.
	FormatBincode
	// FormatJSON is the human-readable, slowest format (spec.md §6.2).
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatPostcard:
		return "postcard"
	case FormatBincode:
		return "bincode"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// envelope is the wire shape for the non-postcard formats: the payload
// bytes plus nothing else. Unlike postcard, decoding this requires a
// real deserialization pass (cbor.Unmarshal/json.Unmarshal), exercising
// the "deserialize from a byte blob into a yoke" path spec.md §4.2
// describes for the Buffer provider.
type envelope struct {
	Payload []byte `json:"payload" cbor:"payload"`
}

// Codec encodes/decodes a marker's packed payload bytes to/from one
// buffer-provider wire format.
type Codec interface {
	Encode(payload []byte) ([]byte, error)
	Decode(wire []byte) ([]byte, error)
}

type postcardCodec struct{}

func (postcardCodec) Encode(payload []byte) ([]byte, error) { return payload, nil }
func (postcardCodec) Decode(wire []byte) ([]byte, error)    { return wire, nil }

type bincodeCodec struct{}

func (bincodeCodec) Encode(payload []byte) ([]byte, error) {
	return cbor.Marshal(envelope{Payload: payload})
}

func (bincodeCodec) Decode(wire []byte) ([]byte, error) {
	var e envelope
	if err := cbor.Unmarshal(wire, &e); err != nil {
		return nil, fmt.Errorf("blobcodec: bincode decode: %w", err)
	}

	return e.Payload, nil
}

type jsonCodec struct{}

func (jsonCodec) Encode(payload []byte) ([]byte, error) {
	return json.Marshal(envelope{Payload: payload})
}

func (jsonCodec) Decode(wire []byte) ([]byte, error) {
	var e envelope
	if err := json.Unmarshal(wire, &e); err != nil {
		return nil, fmt.Errorf("blobcodec: json decode: %w", err)
	}

	return e.Payload, nil
}

var builtin = map[Format]Codec{
	FormatPostcard: postcardCodec{},
	FormatBincode:  bincodeCodec{},
	FormatJSON:     jsonCodec{},
}

// Get retrieves the built-in Codec for format f.
func Get(f Format) (Codec, error) {
	if c, ok := builtin[f]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("blobcodec: unsupported format %v", f)
}
