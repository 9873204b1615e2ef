package provider

import (
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
)

// LocalePredicate reports whether a request's identifier is in scope
// for a Filtering provider. Returning false behaves like
// ErrIdentifierNotFound having occurred upstream.
type LocalePredicate func(req Request) bool

// Filtering wraps a Provider and rejects requests a predicate does not
// accept, per spec.md §4.2's "FilteringProvider ... restricts the
// locales/attributes an inner provider will serve, e.g. to implement
// --locales modern at buffer-provider load time instead of at export
// time."
type Filtering struct {
	inner     Provider
	predicate LocalePredicate
}

// NewFiltering wraps inner, rejecting any request predicate rejects.
func NewFiltering(inner Provider, predicate LocalePredicate) *Filtering {
	return &Filtering{inner: inner, predicate: predicate}
}

// Load implements Provider.
func (f *Filtering) Load(id marker.ID, req Request) (Response, error) {
	if err := CheckNever(id); err != nil {
		return Response{}, err
	}
	if f.predicate != nil && !f.predicate(req) {
		return Response{}, errs.ErrIdentifierNotFound
	}

	return f.inner.Load(id, req)
}
