package provider

import (
	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
)

// Baked is the "compiled constants" provider from spec.md §4.2: it
// returns a process-static reference to bytes obtained from generated
// Go source (the baked-data emitter, out of scope per spec.md §1 --
// Baked only consumes its output). Go has no borrow checker, so the
// Rust '\''static' guarantee is approximated by convention: a Baked
// provider's tables must only ever be built from package-level `var`
// literals that live for the process lifetime.
type Baked struct {
	infos map[uint32]marker.Info
	// data[markerHash][identifier.String()] = payload bytes.
	data map[uint32]map[string][]byte
}

// NewBaked constructs a Baked provider with no registered markers.
func NewBaked() *Baked {
	return &Baked{
		infos: make(map[uint32]marker.Info),
		data:  make(map[uint32]map[string][]byte),
	}
}

// Register adds a marker's static identifier->payload table. Intended
// to be called once at process init from generated code, matching how
// the teacher's baked-data constants are package-level vars assembled
// once.
func (b *Baked) Register(info marker.Info, payloads map[datalocale.Identifier][]byte) {
	b.infos[info.ID.Hash()] = info
	table := make(map[string][]byte, len(payloads))
	for id, bytes := range payloads {
		table[id.String()] = bytes
	}
	b.data[info.ID.Hash()] = table
}

// Load implements Provider.
func (b *Baked) Load(id marker.ID, req Request) (Response, error) {
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

	table := b.data[id.Hash()]
	bytes, ok := table[req.Identifier.String()]
	if !ok {
		return Response{}, errs.ErrIdentifierNotFound
	}

	return Response{Payload: Payload{Bytes: bytes}}, nil
}
