package provider

import (
	"github.com/intlgo/icucore/blobcodec"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/internal/options"
	"github.com/intlgo/icucore/marker"
)

// BufferOption configures a Buffer provider, following the teacher's
// generic functional-options package (internal/options, kept from
// mebo's blob.NumericEncoderOption convention).
type BufferOption = options.Option[*Buffer]

// WithFormat selects the wire format Put encodes entries in. Each entry
// records the format it was stored with and Load decodes it with that
// format, but the format is fixed when NewBuffer applies its options,
// so all entries of one Buffer share a single format; there is no
// per-marker format setting.
func WithFormat(f blobcodec.Format) BufferOption {
	return options.NoError(func(b *Buffer) { b.defaultFormat = f })
}

// Buffer is the "deserializes from a byte blob" provider of spec.md
// §4.2: entries are stored in their wire format and decoded into packed
// container bytes on demand (postcard's decode is the identity
// function; bincode/json allocate and copy).
//
// Grounded on the teacher's encoder/decoder pairing
// (blob.NewNumericEncoder / blob.NewNumericDecoder) for the
// construct-with-options-then-operate shape.
type Buffer struct {
	defaultFormat blobcodec.Format
	infos         map[uint32]marker.Info
	entries       map[uint32]map[string]wireEntry
}

type wireEntry struct {
	format blobcodec.Format
	wire   []byte
}

// NewBuffer constructs an empty Buffer provider. Default format is
// FormatPostcard (spec.md §6.2's stated default) unless overridden with
// WithFormat.
func NewBuffer(opts ...BufferOption) (*Buffer, error) {
	b := &Buffer{
		defaultFormat: blobcodec.FormatPostcard,
		infos:         make(map[uint32]marker.Info),
		entries:       make(map[uint32]map[string]wireEntry),
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// RegisterMarker declares a marker this provider can serve.
func (b *Buffer) RegisterMarker(info marker.Info) {
	b.infos[info.ID.Hash()] = info
	if b.entries[info.ID.Hash()] == nil {
		b.entries[info.ID.Hash()] = make(map[string]wireEntry)
	}
}

// Put stores payload for id in the provider's default wire format.
func (b *Buffer) Put(id marker.ID, identifierKey string, payload []byte) error {
	codec, err := blobcodec.Get(b.defaultFormat)
	if err != nil {
		return err
	}
	wire, err := codec.Encode(payload)
	if err != nil {
		return err
	}
	if b.entries[id.Hash()] == nil {
		b.entries[id.Hash()] = make(map[string]wireEntry)
	}
	b.entries[id.Hash()][identifierKey] = wireEntry{format: b.defaultFormat, wire: wire}

	return nil
}

// Load implements Provider: it decodes the stored wire bytes back into
// packed container bytes.
func (b *Buffer) Load(id marker.ID, req Request) (Response, error) {
	if err := CheckNever(id); err != nil {
		return Response{}, err
	}

	info, ok := b.infos[id.Hash()]
	if !ok {
		return Response{}, errs.ErrMarkerNotFound
	}
	if err := ValidateIdentifier(info, req.Identifier); err != nil {
		return Response{}, err
	}

	table := b.entries[id.Hash()]
	entry, ok := table[req.Identifier.String()]
	if !ok {
		return Response{}, errs.ErrIdentifierNotFound
	}

	codec, err := blobcodec.Get(entry.format)
	if err != nil {
		return Response{}, err
	}
	payload, err := codec.Decode(entry.wire)
	if err != nil {
		return Response{}, err
	}

	return Response{Payload: Payload{Bytes: payload}}, nil
}
