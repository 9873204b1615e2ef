package datetime

import (
	"unicode/utf8"

	"github.com/intlgo/icucore/errs"
)

// DoubleTemplate is the "up to two placeholders" backend of spec.md
// §4.5: store encodes two offsets in two leading code-point slots (bit
// 0 = placeholder index, bits 1+ = offset+1 in literal bytes).
type DoubleTemplate struct {
	// offset[i] is the literal-byte offset of placeholder i, or -1 if
	// placeholder i does not appear in the template.
	offset  [2]int
	literal string
}

// ParseDouble parses a template containing "{0}" and/or "{1}"
// placeholders, rejecting duplicates and rejecting a "{1}" that comes
// before "{0}", so offsets are ascending when both are present
// (spec.md §4.5).
func ParseDouble(template string) (DoubleTemplate, error) {
	offset := [2]int{-1, -1}
	var lit []byte

	i := 0
	for i < len(template) {
		switch {
		case i+3 <= len(template) && template[i:i+3] == "{0}":
			if offset[0] != -1 || offset[1] != -1 {
				return DoubleTemplate{}, errs.ErrInvalidPlaceholder
			}
			offset[0] = len(lit)
			i += 3
		case i+3 <= len(template) && template[i:i+3] == "{1}":
			if offset[1] != -1 {
				return DoubleTemplate{}, errs.ErrInvalidPlaceholder
			}
			offset[1] = len(lit)
			i += 3
		default:
			lit = append(lit, template[i])
			i++
		}
	}

	if offset[0] == -1 && offset[1] == -1 {
		return DoubleTemplate{}, errs.ErrInvalidPlaceholder
	}
	if offset[0] != -1 && offset[1] != -1 && offset[0] > offset[1] {
		return DoubleTemplate{}, errs.ErrInvalidPlaceholder
	}

	return DoubleTemplate{offset: offset, literal: string(lit)}, nil
}

func (d DoubleTemplate) slotValue(index int) (int, error) {
	if d.offset[index] == -1 {
		return index, nil
	}
	v := (d.offset[index]+1)<<1 | index
	if v >= 0xD800 {
		return 0, errs.ErrInvalidPlaceholder
	}

	return v, nil
}

// Encode produces the wire store: the two fixed-position code-point
// slots (index 0 then index 1) followed by the literal bytes.
func (d DoubleTemplate) Encode() ([]byte, error) {
	v0, err := d.slotValue(0)
	if err != nil {
		return nil, err
	}
	v1, err := d.slotValue(1)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, utf8.RuneLen(rune(v0))+utf8.RuneLen(rune(v1))+len(d.literal))
	n := utf8.EncodeRune(buf, rune(v0))
	n += utf8.EncodeRune(buf[n:], rune(v1))
	copy(buf[n:], d.literal)

	return buf, nil
}

// DecodeDouble parses a wire store produced by Encode.
func DecodeDouble(wire []byte) (DoubleTemplate, error) {
	r0, n0 := utf8.DecodeRune(wire)
	if r0 == utf8.RuneError || r0 >= 0xD800 {
		return DoubleTemplate{}, errs.ErrInvalidPlaceholder
	}
	rest := wire[n0:]
	r1, n1 := utf8.DecodeRune(rest)
	if r1 == utf8.RuneError || r1 >= 0xD800 {
		return DoubleTemplate{}, errs.ErrInvalidPlaceholder
	}
	if r0&1 != 0 || r1&1 != 1 {
		return DoubleTemplate{}, errs.ErrInvalidPlaceholder
	}

	literal := string(rest[n1:])
	offset := [2]int{-1, -1}
	if r0>>1 != 0 {
		offset[0] = int(r0>>1) - 1
	}
	if r1>>1 != 0 {
		offset[1] = int(r1>>1) - 1
	}
	for _, off := range offset {
		if off > len(literal) {
			return DoubleTemplate{}, errs.ErrInvalidPlaceholder
		}
	}

	return DoubleTemplate{offset: offset, literal: literal}, nil
}

// Interpolate substitutes values[0] and values[1] for their respective
// placeholders, where present; absent placeholders are ignored.
func (d DoubleTemplate) Interpolate(values [2]string) string {
	type ins struct {
		offset int
		value  string
	}
	var inserts []ins
	for i := range 2 {
		if d.offset[i] != -1 {
			inserts = append(inserts, ins{offset: d.offset[i], value: values[i]})
		}
	}
	// Apply from the rightmost offset first ({1} before {0} when the
	// offsets tie) so earlier insertions don't shift offsets not yet
	// applied.
	for a := 0; a < len(inserts); a++ {
		for b := a + 1; b < len(inserts); b++ {
			if inserts[b].offset >= inserts[a].offset {
				inserts[a], inserts[b] = inserts[b], inserts[a]
			}
		}
	}

	out := d.literal
	for _, ins := range inserts {
		out = out[:ins.offset] + ins.value + out[ins.offset:]
	}

	return out
}
