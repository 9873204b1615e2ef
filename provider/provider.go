// Package provider implements the data-access surface of spec.md §4.2:
// Provider.Load, the Baked/Buffer/Forking/Filtering provider kinds, and
// the NeverMarker escape hatch.
//
// A DataPayload (spec.md §3.2) is represented here as Payload, an
// opaque borrowed byte slice. Callers reinterpret it via the container
// package's zero-copy codecs once they know the marker's concrete
// DataStruct shape; Provider itself never parses payload bytes, mirroring
// how the teacher's encoder/decoder split keeps byte layout knowledge
// out of the blob-management layer (blob.NumericBlob only slices
// payloads; section types know their shape).
package provider

import (
	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
)

// Payload is a borrowed, immutable view of bytes for one DataIdentifier.
// "Borrowed" here means: callers must not retain Bytes past the
// lifetime of the Provider that returned it unless the provider
// documents otherwise (Baked's bytes are process-static and safe
// to retain indefinitely; Buffer's bytes are owned by the
// Response and safe to retain).
type Payload struct {
	Bytes []byte
}

// Metadata carries the request-scoped diagnostics spec.md §4.2 allows a
// Response to report.
type Metadata struct {
	Checksum    uint64
	HasChecksum bool
}

// Request is a single data-access request: a DataIdentifier plus
// metadata controlling diagnostics (spec.md §4.2: "metadata.silent
// suppresses diagnostic output").
type Request struct {
	Identifier datalocale.Identifier
	Silent     bool
}

// Response is what Provider.Load returns on success.
type Response struct {
	Payload  Payload
	Metadata Metadata
}

// Provider is the sole data-access surface (spec.md §6.1 item 1).
type Provider interface {
	Load(id marker.ID, req Request) (Response, error)
}

// CheckNever implements the "never marker" escape from spec.md §4.2/§9:
// every provider must fail any load of marker.NeverMarker with
// ErrMarkerNotFound, regardless of what else it has registered. Every
// concrete provider in this package calls this first.
func CheckNever(id marker.ID) error {
	if id.Equal(marker.NeverMarker) {
		return errs.ErrMarkerNotFound
	}

	return nil
}

// ValidateIdentifier enforces spec.md §4.2's identifier-acceptance
// rules for a marker: singleton markers only accept the root identifier
// (und, ""); others defer to Info.AttributesDomain.
func ValidateIdentifier(info marker.Info, id datalocale.Identifier) error {
	if info.IsSingleton {
		if id.Attributes != "" || !id.Locale.IsRoot() {
			return errs.ErrIdentifierNotFound
		}

		return nil
	}
	if !info.AcceptsAttributes(id.Attributes) {
		return errs.ErrIdentifierNotFound
	}

	return nil
}
