package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonePolicyValidate(t *testing.T) {
	policy := PhonePolicy{MinDigits: 7, MaxDigits: 15}

	assert.NoError(t, policy.Validate("+1234567890"))
	assert.Error(t, policy.Validate("+"), "empty digit sequence rejected when a minimum is set")
	assert.Error(t, policy.Validate("+123"))
	assert.Error(t, policy.Validate("+1234567890123456"))
}

func TestPhonePolicyZeroValueIsPermissive(t *testing.T) {
	var policy PhonePolicy

	assert.NoError(t, policy.Validate("+"))
	assert.NoError(t, policy.Validate("+1"))
}

func TestPhonePolicyValidateColumn(t *testing.T) {
	policy := PhonePolicy{MinDigits: 10}
	values := []any{"+1234567890", "+", nil, "+555"}

	bad := policy.ValidateColumn(values)
	assert.Equal(t, []string{"+", "+555"}, bad)
}
