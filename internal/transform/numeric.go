package transform

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cleantab/pkg/contracts/domain"
)

var moneyPrinter = message.NewPrinter(language.English)

// ParseNumeric extracts a float from a text representation by stripping
// every character that is not a digit, decimal point or minus sign.
// "$1,000.50" parses to 1000.5. Multiple decimal points or an input with no
// digits at all are failures.
func ParseNumeric(s string) (float64, bool) {
	var b strings.Builder
	dots, digits := 0, 0
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == '.':
			dots++
			b.WriteRune(r)
		case r == '-':
			b.WriteRune(r)
		}
	}
	if digits == 0 || dots > 1 {
		return 0, false
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FixNumericValues transforms the numeric values of a column.
//
// Every type except phone first coerces each value through the standardize
// parse; values that cannot be coerced become null and count as failures.
// The phone type has no numeric precondition at all: it extracts digit
// characters from the raw text and prefixes "+", so an input with no digits
// still yields "+" (a documented permissive edge; see PhonePolicy for the
// opt-in validation layer).
func FixNumericValues(col *domain.Column, typ Type, opts Options) domain.Outcome {
	opts = opts.withDefaults()

	if typ == TypePhone {
		return fixPhoneValues(col)
	}

	var out domain.Outcome
	for i, v := range col.Values {
		if v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			col.Values[i] = nil
			out.Failed++
			continue
		}

		switch typ {
		case TypeStandardize:
			col.Values[i] = f
		case TypeFormat:
			col.Values[i] = math.Round(f*100) / 100
		case TypePercentage:
			// Fractions outside 0..1 are formatted as-is, no clamping.
			col.Values[i] = strconv.FormatFloat(f*100, 'f', 2, 64) + "%"
		case TypeMoney:
			col.Values[i] = moneyPrinter.Sprintf("%s%.2f", opts.CurrencySymbol, f)
		case TypeID:
			// Truncate toward zero, never round.
			col.Values[i] = int64(math.Trunc(f))
		}
		out.Updated++
	}

	switch typ {
	case TypeStandardize, TypeFormat:
		col.Kind = domain.KindFloat
	case TypeID:
		col.Kind = domain.KindInteger
	default:
		col.Kind = domain.KindText
	}
	return out
}

func fixPhoneValues(col *domain.Column) domain.Outcome {
	var out domain.Outcome
	for i, v := range col.Values {
		if v == nil {
			continue
		}
		var b strings.Builder
		b.WriteByte('+')
		for _, r := range Stringify(v) {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		col.Values[i] = b.String()
		out.Updated++
	}
	col.Kind = domain.KindText
	return out
}
