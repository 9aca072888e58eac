package coinmon

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NA is how a missing value is displayed.
const NA = "NA"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Number is an exact numeric value that may be missing.
//
// The zero Number is missing, it displays as NA.
type Number struct {
	value decimal.Decimal
	valid bool
}

// N returns a valid Number, zero included.
func N[T float64 | int | int64 | decimal.Decimal](value T) Number {
	return Number{value: newDecimal(value), valid: true}
}

// ParseNumber converts a raw API value into a Number.
//
// Only present, non-null, numeric and non-zero values are kept: 0, "0", null,
// "", booleans and unparseable strings are all missing.
func ParseNumber(raw any) Number {
	var d decimal.Decimal
	switch v := raw.(type) {
	case json.Number:
		x, err := decimal.NewFromString(v.String())
		if err != nil {
			return Number{}
		}
		d = x
	case string:
		x, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return Number{}
		}
		d = x
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Number{}
		}
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	default:
		return Number{}
	}
	if d.IsZero() {
		return Number{}
	}
	return Number{value: d, valid: true}
}

func (n Number) IsNA() bool               { return !n.valid }
func (n Number) Decimal() decimal.Decimal { return n.value }

// Sign returns -1, 0 or +1. Missing numbers have no sign.
func (n Number) Sign() int {
	if !n.valid {
		return 0
	}
	return n.value.Sign()
}

// Mul returns n*m, missing if either is.
func (n Number) Mul(m Number) Number {
	if !n.valid || !m.valid {
		return Number{}
	}
	return Number{value: n.value.Mul(m.value), valid: true}
}

// Add returns n+m ignoring missing operands.
func (n Number) Add(m Number) Number {
	switch {
	case !m.valid:
		return n
	case !n.valid:
		return m
	}
	return Number{value: n.value.Add(m.value), valid: true}
}

// Cmp compares two numbers, a missing number is lower than any other.
func (n Number) Cmp(m Number) int {
	switch {
	case !n.valid && !m.valid:
		return 0
	case !n.valid:
		return -1
	case !m.valid:
		return 1
	}
	return n.value.Cmp(m.value)
}

func (n Number) String() string {
	if !n.valid {
		return NA
	}
	return n.value.String()
}

// Fixed formats n with exactly places decimals.
func (n Number) Fixed(places int32) string {
	if !n.valid {
		return NA
	}
	return n.value.StringFixed(places)
}

// Percent formats n as a percentage, like "-1.5%".
func (n Number) Percent() string {
	if !n.valid {
		return NA
	}
	return n.value.String() + "%"
}

var compactUnits = []string{"", "K", "M", "B", "T"}

// Compact formats n with 3 significant digits and a magnitude suffix, like
// "1.23M" for 1234567.
func (n Number) Compact() string {
	if !n.valid {
		return NA
	}
	const digits = 3
	thousand := decimal.NewFromInt(1000)

	v := n.value.Abs()
	unit := 0
	for v.GreaterThanOrEqual(thousand) && unit < len(compactUnits)-1 {
		v = v.Div(thousand)
		unit++
	}
	v = v.Round(compactPlaces(v, digits))
	// rounding may carry into the next unit, as 999999 -> 1000K.
	if v.GreaterThanOrEqual(thousand) && unit < len(compactUnits)-1 {
		v = v.Div(thousand)
		unit++
	}
	places := compactPlaces(v, digits)
	v = v.Round(places)
	s := v.StringFixed(places) + compactUnits[unit]
	if n.value.IsNegative() {
		s = "-" + s
	}
	return s
}

// compactPlaces returns the number of decimal places that keep digits
// significant digits of the non negative v.
func compactPlaces(v decimal.Decimal, digits int) int32 {
	if v.IsZero() {
		return int32(digits - 1)
	}
	// position of the leading digit, 0 for units, -1 for tenths.
	lead := int(v.NumDigits()) + int(v.Exponent()) - 1
	return int32(max(digits-1-lead, 0))
}
