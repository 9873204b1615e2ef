package datetime

import "strings"

// Part tags a region of formatted output with the semantic field that
// produced it (spec.md §4.9).
type Part uint8

const (
	PartYear Part = iota
	PartMonth
	PartDay
	PartHour
	PartMinute
	PartSecond
	PartEra
	PartWeekday
	PartDayPeriod
	PartTimeZoneName
	PartRelatedYear
	PartLiteral
	PartError
)

func (p Part) String() string {
	switch p {
	case PartYear:
		return "YEAR"
	case PartMonth:
		return "MONTH"
	case PartDay:
		return "DAY"
	case PartHour:
		return "HOUR"
	case PartMinute:
		return "MINUTE"
	case PartSecond:
		return "SECOND"
	case PartEra:
		return "ERA"
	case PartWeekday:
		return "WEEKDAY"
	case PartDayPeriod:
		return "DAY_PERIOD"
	case PartTimeZoneName:
		return "TIME_ZONE_NAME"
	case PartRelatedYear:
		return "RELATED_YEAR"
	case PartLiteral:
		return "LITERAL"
	case PartError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// PartSpan records one emitted, tagged region of output: the part kind
// and the [Start,End) byte range it occupies in the writer's buffer.
type PartSpan struct {
	Kind  Part
	Start int
	End   int
}

// PartsWriter is the stack-based parts-aware writer of spec.md §4.9: a
// sink whose WriteString/WriteRune calls inside an Enter/Exit bracket are
// recorded as one tagged PartSpan. Nesting is a stack; Exit closes the
// innermost open part, matching the teacher's decode-loop discipline of
// always pairing a "start" state transition with an "end" one.
type PartsWriter struct {
	buf   strings.Builder
	stack []int // buffer offsets where each open part started
	spans []PartSpan
	kinds []Part
}

// Enter opens a new part region.
func (w *PartsWriter) Enter(kind Part) {
	w.stack = append(w.stack, w.buf.Len())
	w.kinds = append(w.kinds, kind)
}

// Exit closes the innermost open part region. It panics if no part is
// open, matching spec.md §9's "unbalanced exits are programmer errors."
func (w *PartsWriter) Exit() {
	if len(w.stack) == 0 {
		panic("datetime: PartsWriter.Exit with no open part")
	}
	n := len(w.stack) - 1
	start := w.stack[n]
	kind := w.kinds[n]
	w.stack = w.stack[:n]
	w.kinds = w.kinds[:n]
	w.spans = append(w.spans, PartSpan{Kind: kind, Start: start, End: w.buf.Len()})
}

// WriteString appends s to the current output; it is recorded as part
// of whichever part is currently open, if any.
func (w *PartsWriter) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteRune appends a single rune.
func (w *PartsWriter) WriteRune(r rune) {
	w.buf.WriteRune(r)
}

// String returns the accumulated output.
func (w *PartsWriter) String() string {
	return w.buf.String()
}

// Spans returns the closed part spans in the order they were closed.
// Callers that need source order can sort by Start; nested parts close
// before their enclosing part, matching stack-unwind order.
func (w *PartsWriter) Spans() []PartSpan {
	out := make([]PartSpan, len(w.spans))
	copy(out, w.spans)

	return out
}

// Open reports how many parts remain open (unclosed); a fully-formed
// format call must finish with this at zero.
func (w *PartsWriter) Open() int {
	return len(w.stack)
}
