package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleantab/pkg/contracts/domain"
)

func col(kind domain.Kind, values ...any) *domain.Column {
	return &domain.Column{Name: "c", Kind: kind, Values: values}
}

func TestCoerceToInteger(t *testing.T) {
	c := col(domain.KindText, "42", " 7 ", "abc", "3.5", nil, true)

	res, err := Coerce(c, domain.KindInteger)
	require.NoError(t, err)

	assert.Equal(t, domain.KindInteger, c.Kind)
	assert.Equal(t, []any{int64(42), int64(7), nil, nil, nil, int64(1)}, c.Values)
	assert.Equal(t, 3, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
}

func TestCoerceToFloat(t *testing.T) {
	c := col(domain.KindText, "3.14", " 2.5 ", "x", nil, int64(4))

	res, err := Coerce(c, domain.KindFloat)
	require.NoError(t, err)

	assert.Equal(t, []any{3.14, 2.5, nil, nil, 4.0}, c.Values)
	assert.Equal(t, 3, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}

func TestCoerceDoesNotStripCurrency(t *testing.T) {
	// Symbol stripping is the numeric standardize transform's job, not the
	// generic coercion layer's.
	c := col(domain.KindText, "$1,000.50")

	res, err := Coerce(c, domain.KindFloat)
	require.NoError(t, err)

	assert.Equal(t, []any{nil}, c.Values)
	assert.Equal(t, 1, res.Failed)
}

func TestCoerceToText(t *testing.T) {
	c := col(domain.KindRaw, int64(5), 2.5, true, "s", nil)

	res, err := Coerce(c, domain.KindText)
	require.NoError(t, err)

	assert.Equal(t, []any{"5", "2.5", "true", "s", nil}, c.Values)
	assert.Equal(t, 4, res.Succeeded)
	assert.Zero(t, res.Failed)
}

func TestCoerceToCategoricalNeverFails(t *testing.T) {
	c := col(domain.KindRaw, int64(1), "label", 2.75, true, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	res, err := Coerce(c, domain.KindCategorical)
	require.NoError(t, err)

	assert.Equal(t, domain.KindCategorical, c.Kind)
	assert.Zero(t, res.Failed)
	assert.Equal(t, 5, res.Succeeded)
}

func TestCoerceToDatetime(t *testing.T) {
	c := col(domain.KindText, "12/25/2024", "nope", nil)

	res, err := Coerce(c, domain.KindDatetime)
	require.NoError(t, err)

	assert.Equal(t, domain.KindDatetime, c.Kind)
	ts, ok := c.Values[0].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), ts)
	assert.Nil(t, c.Values[1])
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}

func TestCoerceToBoolean(t *testing.T) {
	c := col(domain.KindText, "true", "No", " YES ", "0", "2", int64(1), 7.5, nil)

	res, err := Coerce(c, domain.KindBoolean)
	require.NoError(t, err)

	assert.Equal(t, []any{true, false, true, false, nil, true, nil, nil}, c.Values)
	assert.Equal(t, 5, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
}

func TestCoerceUnknownKind(t *testing.T) {
	c := col(domain.KindText, "a")

	_, err := Coerce(c, domain.Kind("complex"))
	require.Error(t, err)
	assert.Equal(t, []any{"a"}, c.Values, "column untouched on programming error")
}

func TestCoercePreservesRowCount(t *testing.T) {
	for _, target := range domain.Kinds() {
		c := col(domain.KindText, "1", "x", nil, "true", "2024-01-01")
		_, err := Coerce(c, target)
		require.NoError(t, err)
		assert.Equal(t, 5, c.Len(), "target %s changed row count", target)
	}
}
