package datetime

import (
	"slices"

	"github.com/intlgo/icucore/errs"
)

// MultiKeyTemplate is the finite-keyed-set backend of spec.md §4.5: an
// arbitrary number of named placeholders ("{weekday}", "{month}", ...),
// each carrying its own key rather than Double's fixed two-slot layout.
type MultiKeyTemplate struct {
	keys    []string
	offsets []int
	literal string
}

// ParseMultiKey parses a template with one or more "{key}"
// placeholders, rejecting duplicate keys, unterminated braces, and
// empty keys.
func ParseMultiKey(template string) (MultiKeyTemplate, error) {
	var lit []byte
	var keys []string
	var offsets []int
	seen := make(map[string]bool)

	i := 0
	for i < len(template) {
		if template[i] != '{' {
			lit = append(lit, template[i])
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(template); j++ {
			if template[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			return MultiKeyTemplate{}, errs.ErrInvalidPlaceholder
		}
		key := template[i+1 : end]
		if key == "" || seen[key] {
			return MultiKeyTemplate{}, errs.ErrInvalidPlaceholder
		}
		seen[key] = true
		keys = append(keys, key)
		offsets = append(offsets, len(lit))
		i = end + 1
	}

	if len(keys) == 0 {
		return MultiKeyTemplate{}, errs.ErrInvalidPlaceholder
	}

	return MultiKeyTemplate{keys: keys, offsets: offsets, literal: string(lit)}, nil
}

// Keys returns the placeholder keys in template order.
func (m MultiKeyTemplate) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Interpolate substitutes values[key] for each placeholder. Insertions
// are applied in reverse template order (rightmost offset first, later
// placeholder first where offsets tie) so earlier insertions never
// shift an offset not yet applied.
func (m MultiKeyTemplate) Interpolate(values map[string]string) (string, error) {
	type ins struct {
		offset int
		value  string
	}
	inserts := make([]ins, 0, len(m.keys))
	for i, k := range m.keys {
		v, ok := values[k]
		if !ok {
			return "", &errs.MissingInputFieldError{Field: k}
		}
		inserts = append(inserts, ins{offset: m.offsets[i], value: v})
	}
	slices.Reverse(inserts)

	out := m.literal
	for _, in := range inserts {
		out = out[:in.offset] + in.value + out[in.offset:]
	}

	return out, nil
}
