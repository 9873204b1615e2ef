package datetime

import (
	"unicode/utf8"

	"github.com/intlgo/icucore/errs"
)

// SingleTemplate is the "one placeholder" backend of spec.md §4.5: the
// store encodes (offset_to_placeholder, literal_bytes).
type SingleTemplate struct {
	offset  int
	literal string
}

// ParseSingle parses a template string containing exactly one "{0}"
// placeholder, stripping it and recording its byte offset into the
// remaining literal.
func ParseSingle(template string) (SingleTemplate, error) {
	idx := indexOfPlaceholder(template, "{0}")
	if idx < 0 {
		return SingleTemplate{}, errs.ErrInvalidPlaceholder
	}
	rest := template[:idx] + template[idx+3:]
	if indexOfPlaceholder(rest, "{0}") >= 0 {
		return SingleTemplate{}, errs.ErrInvalidPlaceholder
	}

	return SingleTemplate{offset: idx, literal: rest}, nil
}

func indexOfPlaceholder(s, token string) int {
	for i := 0; i+len(token) <= len(s); i++ {
		if s[i:i+len(token)] == token {
			return i
		}
	}

	return -1
}

// Encode produces the wire store: the offset encoded as a single UTF-8
// scalar value followed by the literal bytes.
func (s SingleTemplate) Encode() ([]byte, error) {
	if s.offset < 0 || s.offset >= 0xD800 {
		return nil, errs.ErrInvalidPlaceholder
	}
	buf := make([]byte, utf8.RuneLen(rune(s.offset))+len(s.literal))
	n := utf8.EncodeRune(buf, rune(s.offset))
	copy(buf[n:], s.literal)

	return buf, nil
}

// DecodeSingle parses a wire store produced by Encode, rejecting empty
// stores, out-of-scalar-range offsets, and offsets beyond the literal
// region.
func DecodeSingle(wire []byte) (SingleTemplate, error) {
	if len(wire) == 0 {
		return SingleTemplate{}, errs.ErrInvalidPlaceholder
	}
	r, n := utf8.DecodeRune(wire)
	if r == utf8.RuneError || r >= 0xD800 {
		return SingleTemplate{}, errs.ErrInvalidPlaceholder
	}
	literal := string(wire[n:])
	if int(r) > len(literal) {
		return SingleTemplate{}, errs.ErrInvalidPlaceholder
	}

	return SingleTemplate{offset: int(r), literal: literal}, nil
}

// Interpolate substitutes value for the placeholder at the stored
// offset.
func (s SingleTemplate) Interpolate(value string) string {
	return s.literal[:s.offset] + value + s.literal[s.offset:]
}
