package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleantab/pkg/contracts/domain"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"$1,000.50", 1000.5, true},
		{"1000", 1000, true},
		{"-42.5", -42.5, true},
		{"  3.14  ", 3.14, true},
		{"$ 100,000", 100000, true},
		{"1.234.5", 0, false}, // multiple decimal points
		{"abc", 0, false},     // no digits
		{"", 0, false},
		{"-", 0, false},
		{"50%", 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumeric(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFixNumericValuesStandardize(t *testing.T) {
	col := textColumn("$1,000.50", "abc", "200", nil)

	out := FixNumericValues(col, TypeStandardize, Options{})

	assert.Equal(t, domain.KindFloat, col.Kind)
	assert.Equal(t, []any{1000.5, nil, 200.0, nil}, col.Values)
	assert.Equal(t, 2, out.Updated)
	assert.Equal(t, 1, out.Failed)
}

func TestFixNumericValuesFormat(t *testing.T) {
	col := &domain.Column{Name: "v", Kind: domain.KindFloat, Values: []any{100000.456, 1.005, 2.0}}

	out := FixNumericValues(col, TypeFormat, Options{})

	assert.Equal(t, domain.KindFloat, col.Kind)
	assert.InDelta(t, 100000.46, col.Values[0].(float64), 1e-9)
	assert.InDelta(t, 2.0, col.Values[2].(float64), 1e-9)
	assert.Equal(t, 3, out.Updated)
}

func TestFixNumericValuesPercentage(t *testing.T) {
	col := &domain.Column{Name: "v", Kind: domain.KindFloat, Values: []any{0.5, 1.25, 0.0, nil}}

	out := FixNumericValues(col, TypePercentage, Options{})

	assert.Equal(t, domain.KindText, col.Kind)
	// No clamping: fractions above 1 format as >100%.
	assert.Equal(t, []any{"50.00%", "125.00%", "0.00%", nil}, col.Values)
	assert.Equal(t, 3, out.Updated)
}

func TestFixNumericValuesMoney(t *testing.T) {
	col := &domain.Column{Name: "v", Kind: domain.KindFloat, Values: []any{100000.0, 1234.5, 0.5}}

	out := FixNumericValues(col, TypeMoney, Options{})

	assert.Equal(t, []any{"$100,000.00", "$1,234.50", "$0.50"}, col.Values)
	assert.Equal(t, 3, out.Updated)
}

func TestFixNumericValuesMoneyCustomSymbol(t *testing.T) {
	col := &domain.Column{Name: "v", Kind: domain.KindFloat, Values: []any{100000.0}}

	FixNumericValues(col, TypeMoney, Options{CurrencySymbol: "€"})

	assert.Equal(t, []any{"€100,000.00"}, col.Values)
}

func TestFixNumericValuesPhone(t *testing.T) {
	col := textColumn("(123) 456-7890", "+1 555 0100", "", "no digits here", nil)

	out := FixNumericValues(col, TypePhone, Options{})

	assert.Equal(t, domain.KindText, col.Kind)
	// Empty and digit-free inputs still get the "+" prefix; validation is
	// the opt-in PhonePolicy layer's job.
	assert.Equal(t, []any{"+1234567890", "+15550100", "+", "+", nil}, col.Values)
	assert.Equal(t, 4, out.Updated)
	assert.Zero(t, out.Failed, "phone has no numeric-parse precondition")
}

func TestFixNumericValuesID(t *testing.T) {
	col := &domain.Column{Name: "v", Kind: domain.KindFloat, Values: []any{123456.0, 1234.56, -7.9}}

	out := FixNumericValues(col, TypeID, Options{})

	assert.Equal(t, domain.KindInteger, col.Kind)
	// Truncation toward zero, not rounding.
	assert.Equal(t, []any{int64(123456), int64(1234), int64(-7)}, col.Values)
	assert.Equal(t, 3, out.Updated)
}

func TestFixNumericValuesPreservesRowCount(t *testing.T) {
	for _, typ := range []Type{TypeStandardize, TypeFormat, TypePercentage, TypeMoney, TypePhone, TypeID} {
		col := textColumn("1", "x", nil, "2.5")
		FixNumericValues(col, typ, Options{})
		assert.Equal(t, 4, col.Len(), "type %s changed row count", typ)
	}
}
