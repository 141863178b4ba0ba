package transform

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cleantab/pkg/contracts/domain"
)

var titleCaser = cases.Title(language.English)

// FixTextValues applies a case transformation to every non-null value of a
// column. Values are trimmed of surrounding whitespace before the case
// change. Non-text columns are stringified first so a mistaken selection
// does not hard-fail, but the outcome carries a data-quality warning.
func FixTextValues(col *domain.Column, typ Type) domain.Outcome {
	var out domain.Outcome
	if col.Kind != domain.KindText && col.Kind != domain.KindCategorical && col.Kind != domain.KindRaw {
		out.Warning = fmt.Sprintf("column %q has kind %s; values were converted to text before the case transform", col.Name, col.Kind)
	}

	for i, v := range col.Values {
		if v == nil {
			continue
		}
		s := strings.TrimSpace(Stringify(v))
		switch typ {
		case TypeTitle:
			s = titleCaser.String(s)
		case TypeUpper:
			s = strings.ToUpper(s)
		case TypeLower:
			s = strings.ToLower(s)
		case TypeCapitalize:
			s = capitalize(s)
		}
		col.Values[i] = s
		out.Updated++
	}

	col.Kind = domain.KindText
	return out
}

// capitalize upcases the first letter and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
