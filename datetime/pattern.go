package datetime

import "github.com/intlgo/icucore/errs"

// PatternItem is the tagged variant from spec.md §3.3: either a literal
// rune or a (symbol, length) field reference.
type PatternItem struct {
	IsField bool
	Literal rune
	Symbol  FieldSymbol
	Length  FieldLength
}

// NewLiteral builds a literal PatternItem.
func NewLiteral(ch rune) PatternItem {
	return PatternItem{Literal: ch}
}

// NewField builds a field PatternItem.
func NewField(sym FieldSymbol, length FieldLength) PatternItem {
	return PatternItem{IsField: true, Symbol: sym, Length: length}
}

// Pattern is an ordered sequence of PatternItem (spec.md §3.3, §4.5).
type Pattern struct {
	Items []PatternItem
}

// Validate rejects structurally invalid patterns: an empty pattern, or
// a field whose length is out of the FieldLength enum's One..Six range.
func (p Pattern) Validate() error {
	if len(p.Items) == 0 {
		return errs.ErrInvalidPattern
	}
	for _, it := range p.Items {
		if it.IsField && (it.Length < One || it.Length > Six) {
			return errs.ErrInvalidPattern
		}
	}

	return nil
}

// Fields returns the field items of p in order, dropping literals --
// the view the skeleton matcher compares against a requested field set.
func (p Pattern) Fields() []PatternItem {
	out := make([]PatternItem, 0, len(p.Items))
	for _, it := range p.Items {
		if it.IsField {
			out = append(out, it)
		}
	}

	return out
}

// withAdjustedLength returns a copy of p with every field item in sym's
// symbol class rewritten to length, implementing the skeleton matcher's
// post-match length adjustment (spec.md §4.6): numeric fields take the
// new length only when the request is not text, and a text field is
// never widened from length One unless the request asked for text.
func (p Pattern) withAdjustedLength(sym FieldSymbol, length FieldLength, requestedText bool) Pattern {
	items := make([]PatternItem, len(p.Items))
	copy(items, p.Items)
	for i, it := range items {
		if !it.IsField || it.Symbol.class() != sym.class() {
			continue
		}
		wasText := isTextField(it.Symbol, it.Length)
		if !wasText {
			if !requestedText {
				items[i].Length = length
			}
			continue
		}
		if it.Length == One && length > One && !requestedText {
			continue
		}
		items[i].Length = length
	}

	return Pattern{Items: items}
}
