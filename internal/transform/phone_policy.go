package transform

import (
	"fmt"
	"strings"
)

// PhonePolicy is an opt-in validation layer for phone-formatted values. The
// phone transform itself stays permissive — any digit sequence, including
// none, is accepted — so callers that need digit-count guarantees run this
// policy over the formatted output separately.
type PhonePolicy struct {
	// MinDigits is the minimum accepted digit count. Zero disables the bound.
	MinDigits int
	// MaxDigits is the maximum accepted digit count. Zero disables the bound.
	MaxDigits int
}

// Validate checks a "+"-prefixed phone value against the policy bounds.
func (p PhonePolicy) Validate(value string) error {
	digits := len(strings.TrimPrefix(value, "+"))
	if p.MinDigits > 0 && digits < p.MinDigits {
		return fmt.Errorf("phone value %q has %d digits, need at least %d", value, digits, p.MinDigits)
	}
	if p.MaxDigits > 0 && digits > p.MaxDigits {
		return fmt.Errorf("phone value %q has %d digits, allowed at most %d", value, digits, p.MaxDigits)
	}
	return nil
}

// ValidateColumn runs the policy over every non-null value of a
// phone-formatted column and returns the offending values.
func (p PhonePolicy) ValidateColumn(values []any) []string {
	var bad []string
	for _, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if err := p.Validate(s); err != nil {
			bad = append(bad, s)
		}
	}
	return bad
}
