package transform

import (
	"regexp"
	"strings"
	"time"

	"cleantab/pkg/contracts/domain"
)

// exactLayouts are tried in priority order before the ambiguous numeric
// forms: ISO 8601 first, then textual month names.
var exactLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// numericDate matches d/m/y-style values with slash or dash separators.
var numericDate = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})([/-])(\d{4})$`)

// ParseDate parses a single date value against the accepted source
// patterns. Ambiguous numeric dates such as 01/02/2024 default to a
// month/day/year reading; only when the first component exceeds 12 is a
// day/month/year reading inferred. The heuristic cannot recover the writer's
// locale intent and is documented rather than fixed.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range exactLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if m := numericDate.FindStringSubmatch(s); m != nil && m[2] == m[4] {
		sep := m[2]
		layout := "1" + sep + "2" + sep + "2006"
		if first := m[1]; len(first) > 0 && atoiSmall(first) > 12 {
			layout = "2" + sep + "1" + sep + "2006"
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func atoiSmall(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// dateOutputLayouts maps explicit-format transformation types to their
// rendering layouts.
var dateOutputLayouts = map[Type]string{
	TypeDateISO:      "2006-01-02",
	TypeDateUS:       "01/02/2006",
	TypeDateEU:       "02/01/2006",
	TypeDateYMDSlash: "2006/01/02",
	TypeDateDMYDash:  "02-01-2006",
}

// FixDateValues parses and optionally formats the date values of a column.
//
// For TypeStandardize each value is parsed independently, so values in the
// same column may use different source patterns; unparseable values become
// null and count as failures, and the column kind becomes datetime. For the
// explicit output formats the column is first standardized the same way and
// each parsed value is rendered through the requested layout, leaving a
// text column.
func FixDateValues(col *domain.Column, typ Type) domain.Outcome {
	var out domain.Outcome

	parsed := make([]any, len(col.Values))
	for i, v := range col.Values {
		switch t := v.(type) {
		case nil:
			parsed[i] = nil
		case time.Time:
			parsed[i] = t
			out.Updated++
		default:
			if ts, ok := ParseDate(Stringify(v)); ok {
				parsed[i] = ts
				out.Updated++
			} else {
				parsed[i] = nil
				out.Failed++
			}
		}
	}

	if typ == TypeStandardize {
		col.Values = parsed
		col.Kind = domain.KindDatetime
		return out
	}

	layout := dateOutputLayouts[typ]
	for i, v := range parsed {
		if v == nil {
			continue
		}
		parsed[i] = v.(time.Time).Format(layout)
	}
	col.Values = parsed
	col.Kind = domain.KindText
	return out
}
