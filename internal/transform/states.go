package transform

import (
	"strings"

	"cleantab/internal/states"
	"cleantab/pkg/contracts/domain"
)

// FixStateValues standardizes US state values in a column using the state
// registry. Lookup order per value: trim, try two-letter code, then
// case-insensitive full-name match. Values that match no known state are
// preserved unchanged and counted as unmatched rather than nulled; they may
// be non-US regions or free text.
//
// TypeStandardize and TypeStateName render the canonical full name;
// TypeStateCode renders the uppercase two-letter code.
func FixStateValues(col *domain.Column, typ Type) domain.Outcome {
	var out domain.Outcome

	for i, v := range col.Values {
		if v == nil {
			continue
		}
		raw := strings.TrimSpace(Stringify(v))
		if raw == "" {
			continue
		}

		s, ok := states.Lookup(raw)
		if !ok {
			out.Unmatched++
			continue
		}

		if typ == TypeStateCode {
			col.Values[i] = s.Code
		} else {
			col.Values[i] = s.Name
		}
		out.Updated++
	}

	col.Kind = domain.KindText
	return out
}
