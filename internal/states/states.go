// Package states holds the US state lookup registry used by the state
// transformation family: a bidirectional mapping between full state names
// and two-letter postal codes. Canonical casing is title case for names and
// uppercase for codes.
package states

import "strings"

// State pairs a full state name with its two-letter postal code.
type State struct {
	Name string
	Code string
}

// registry lists the 50 states, the District of Columbia, and the
// recognized territories, in alphabetical order.
var registry = []State{
	{"Alabama", "AL"},
	{"Alaska", "AK"},
	{"American Samoa", "AS"},
	{"Arizona", "AZ"},
	{"Arkansas", "AR"},
	{"California", "CA"},
	{"Colorado", "CO"},
	{"Connecticut", "CT"},
	{"Delaware", "DE"},
	{"District Of Columbia", "DC"},
	{"Florida", "FL"},
	{"Georgia", "GA"},
	{"Guam", "GU"},
	{"Hawaii", "HI"},
	{"Idaho", "ID"},
	{"Illinois", "IL"},
	{"Indiana", "IN"},
	{"Iowa", "IA"},
	{"Kansas", "KS"},
	{"Kentucky", "KY"},
	{"Louisiana", "LA"},
	{"Maine", "ME"},
	{"Maryland", "MD"},
	{"Massachusetts", "MA"},
	{"Michigan", "MI"},
	{"Minnesota", "MN"},
	{"Mississippi", "MS"},
	{"Missouri", "MO"},
	{"Montana", "MT"},
	{"Nebraska", "NE"},
	{"Nevada", "NV"},
	{"New Hampshire", "NH"},
	{"New Jersey", "NJ"},
	{"New Mexico", "NM"},
	{"New York", "NY"},
	{"North Carolina", "NC"},
	{"North Dakota", "ND"},
	{"Northern Mariana Islands", "MP"},
	{"Ohio", "OH"},
	{"Oklahoma", "OK"},
	{"Oregon", "OR"},
	{"Pennsylvania", "PA"},
	{"Puerto Rico", "PR"},
	{"Rhode Island", "RI"},
	{"South Carolina", "SC"},
	{"South Dakota", "SD"},
	{"Tennessee", "TN"},
	{"Texas", "TX"},
	{"Utah", "UT"},
	{"Vermont", "VT"},
	{"Virgin Islands", "VI"},
	{"Virginia", "VA"},
	{"Washington", "WA"},
	{"West Virginia", "WV"},
	{"Wisconsin", "WI"},
	{"Wyoming", "WY"},
}

var (
	byCode = make(map[string]State, len(registry))
	byName = make(map[string]State, len(registry))
)

func init() {
	for _, s := range registry {
		byCode[s.Code] = s
		byName[strings.ToUpper(s.Name)] = s
	}
}

// NameForCode returns the canonical full name for a two-letter code,
// matched case-insensitively.
func NameForCode(code string) (string, bool) {
	s, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return "", false
	}
	return s.Name, true
}

// CodeForName returns the two-letter code for a full state name, matched
// case-insensitively against the canonical names.
func CodeForName(name string) (string, bool) {
	s, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return s.Code, true
}

// Lookup resolves either representation. The input is trimmed; a two-letter
// code match is tried first, then a case-insensitive full-name match.
func Lookup(value string) (State, bool) {
	v := strings.TrimSpace(value)
	if len(v) == 2 {
		if s, ok := byCode[strings.ToUpper(v)]; ok {
			return s, true
		}
	}
	s, ok := byName[strings.ToUpper(v)]
	return s, ok
}

// All returns the registry entries in alphabetical order.
func All() []State {
	out := make([]State, len(registry))
	copy(out, registry)
	return out
}

// Count returns the number of registered states and territories.
func Count() int {
	return len(registry)
}
