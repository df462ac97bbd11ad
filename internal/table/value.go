package table

import (
	"strconv"
	"time"
)

// Kind identifies the semantic type of a cell value.
type Kind int

// Cell value kinds. The zero value of Value has KindNull, so an
// uninitialized cell is a proper null marker rather than an empty string.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindTime
)

// String returns the kind name as used in dtype summaries.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "null"
	}
}

// Value is a single typed cell. A null Value carries no payload and is
// distinct from the empty string.
type Value struct {
	ts   time.Time
	str  string
	num  float64
	kind Kind
}

// Null returns the null marker.
func Null() Value {
	return Value{}
}

// NewString returns a string-kinded cell.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewNumber returns a number-kinded cell.
func NewNumber(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// NewTime returns a timestamp-kinded cell.
func NewTime(t time.Time) Value {
	return Value{kind: KindTime, ts: t}
}

// Kind returns the cell's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is the null marker.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Text returns the string payload and whether the cell is string-kinded.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Number returns the numeric payload and whether the cell is number-kinded.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Time returns the timestamp payload and whether the cell is time-kinded.
func (v Value) Time() (time.Time, bool) {
	return v.ts, v.kind == KindTime
}

// Render returns the textual form of the cell for CSV output and reports.
// Null renders as the empty string, which the loader maps back to null.
func (v Value) Render() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}

// Equal reports whether two cells have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindTime:
		return v.ts.Equal(o.ts)
	default:
		return true
	}
}
