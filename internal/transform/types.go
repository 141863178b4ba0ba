package transform

import (
	"strconv"
	"time"
)

// Family is the top-level transformation category.
type Family string

const (
	FamilyName    Family = "name"
	FamilyDate    Family = "date"
	FamilyState   Family = "state"
	FamilyNumeric Family = "numeric"
)

// Type is the specific transformation within a family.
type Type string

const (
	// Shared across the date, state and numeric families.
	TypeStandardize Type = "standardize"

	// name family
	TypeTitle      Type = "title"
	TypeUpper      Type = "upper"
	TypeLower      Type = "lower"
	TypeCapitalize Type = "capitalize"

	// date family output formats
	TypeDateISO      Type = "yyyy-mm-dd"
	TypeDateUS       Type = "mm/dd/yyyy"
	TypeDateEU       Type = "dd/mm/yyyy"
	TypeDateYMDSlash Type = "yyyy/mm/dd"
	TypeDateDMYDash  Type = "dd-mm-yyyy"

	// state family
	TypeStateName Type = "state_name"
	TypeStateCode Type = "state_code"

	// numeric family
	TypeFormat     Type = "format"
	TypePercentage Type = "percentage"
	TypeMoney      Type = "money"
	TypePhone      Type = "phone"
	TypeID         Type = "id"
)

// Options carries the tunable parameters shared by the transformation
// functions. The zero value is usable; withDefaults fills the gaps.
type Options struct {
	// CurrencySymbol prefixes money-formatted values. Defaults to "$".
	CurrencySymbol string
	// SampleSize bounds how many non-null values the numeric applicability
	// check parses before allowing a numeric transform. Defaults to 10.
	SampleSize int
}

func (o Options) withDefaults() Options {
	if o.CurrencySymbol == "" {
		o.CurrencySymbol = "$"
	}
	if o.SampleSize <= 0 {
		o.SampleSize = 10
	}
	return o
}

// renderLayout is the canonical text rendering of datetime values.
const renderLayout = "2006-01-02 15:04:05"

// Stringify renders a scalar column value as text. Nil must be handled by
// the caller; transformations pass nulls through untouched.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(renderLayout)
	default:
		return ""
	}
}

// toFloat coerces a scalar value to float64, falling back to the numeric
// standardize parse for text.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		return ParseNumeric(t)
	default:
		return 0, false
	}
}
