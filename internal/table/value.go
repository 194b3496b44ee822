// Package table provides the in-memory tabular structure the pipeline and
// explorer operate on: tri-state cell values, ordered columns, and read-only
// row views for filtering and aggregation.
package table

import (
	"math"
	"strconv"
	"strings"
)

type kind uint8

const (
	kindMissing kind = iota
	kindText
	kindNumber
)

// Value is a single cell. It is either missing, a text value, or a numeric
// value. Failed numeric coercion yields a missing value, never an error.
type Value struct {
	text string
	num  float64
	kind kind
}

// Missing returns the missing value.
func Missing() Value {
	return Value{kind: kindMissing}
}

// Text returns a text value. An empty or all-whitespace string is missing.
func Text(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Missing()
	}

	return Value{kind: kindText, text: s}
}

// Number returns a numeric value. NaN is treated as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}

	return Value{kind: kindNumber, num: f}
}

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

// Float coerces the value to a number. Text values are parsed; a parse
// failure or a missing value reports ok=false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// String renders the value for display. Missing values render empty.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return v.text
	default:
		return ""
	}
}

// Equal reports whether two values are the same, with missing equal only to
// missing. Grouping relies on this so rows with missing keys still group.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case kindNumber:
		return v.num == o.num
	case kindText:
		return v.text == o.text
	default:
		return true
	}
}

// GroupToken returns a string token usable as part of a composite grouping
// key. Missing values get a token distinct from any real value.
func (v Value) GroupToken() string {
	switch v.kind {
	case kindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindText:
		return "t:" + v.text
	default:
		return "~missing~"
	}
}
