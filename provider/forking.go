package provider

import (
	"errors"

	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
)

// Forking tries each child provider in order and returns the first
// success, swallowing only ErrMarkerNotFound from a child so it can
// fall through to the next one -- any other error (identifier not
// found, inconsistent data, I/O) is returned immediately, per spec.md
// §4.2's "ForkingProvider ... only continues to the next child on
// MarkerNotFound".
//
// Grounded on the teacher's Codec keyed-factory fallback shape
// (compress/codec.go's GetCodec trying a registry before erroring),
// generalized here into a try-in-sequence chain of whole providers.
type Forking struct {
	children []Provider
}

// NewForking constructs a Forking provider trying children in the
// given order.
func NewForking(children ...Provider) *Forking {
	return &Forking{children: children}
}

// Load implements Provider.
func (f *Forking) Load(id marker.ID, req Request) (Response, error) {
	if err := CheckNever(id); err != nil {
		return Response{}, err
	}

	var last error
	for _, child := range f.children {
		resp, err := child.Load(id, req)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, errs.ErrMarkerNotFound) {
			return Response{}, err
		}
		last = err
	}

	if last == nil {
		return Response{}, errs.ErrMarkerNotFound
	}

	return Response{}, last
}
