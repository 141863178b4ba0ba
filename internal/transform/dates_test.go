package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleantab/pkg/contracts/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{"2024-12-25", date(2024, 12, 25), true},
		{"2024/12/25", date(2024, 12, 25), true},
		{"12/25/2024", date(2024, 12, 25), true},
		{"1/2/2024", date(2024, 1, 2), true},       // ambiguous, month-first default
		{"01/02/2024", date(2024, 1, 2), true},     // ambiguous, month-first default
		{"13/02/2024", date(2024, 2, 13), true},    // day > 12, day-first inferred
		{"25-12-2024", date(2024, 12, 25), true},   // dash separated, day-first inferred
		{"December 25, 2024", date(2024, 12, 25), true},
		{"Dec 25, 2024", date(2024, 12, 25), true},
		{"25 December 2024", date(2024, 12, 25), true},
		{"  2024-12-25  ", date(2024, 12, 25), true},
		{"2024-12-25 13:45:00", time.Date(2024, 12, 25, 13, 45, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"32/13/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestFixDateValuesStandardize(t *testing.T) {
	col := &domain.Column{Name: "joined", Kind: domain.KindText, Values: []any{
		"2024-12-25", "12/25/2024", "garbage", nil, "25 December 2024",
	}}

	out := FixDateValues(col, TypeStandardize)

	assert.Equal(t, domain.KindDatetime, col.Kind)
	assert.Equal(t, 3, out.Updated)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, 5, col.Len(), "row count preserved")
	assert.Nil(t, col.Values[2], "unparseable value nulled")
	assert.Nil(t, col.Values[3], "null passes through")

	for _, i := range []int{0, 1, 4} {
		ts, ok := col.Values[i].(time.Time)
		require.True(t, ok)
		assert.True(t, date(2024, 12, 25).Equal(ts))
	}
}

func TestFixDateValuesMixedSourcePatterns(t *testing.T) {
	// Values in one column may use different source patterns.
	col := &domain.Column{Name: "d", Kind: domain.KindText, Values: []any{
		"2024-01-15", "01/16/2024", "17 January 2024",
	}}

	out := FixDateValues(col, TypeStandardize)
	assert.Equal(t, 3, out.Updated)
	assert.Zero(t, out.Failed)
}

func TestFixDateValuesExplicitFormats(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeDateISO, "2024-12-25"},
		{TypeDateUS, "12/25/2024"},
		{TypeDateEU, "25/12/2024"},
		{TypeDateYMDSlash, "2024/12/25"},
		{TypeDateDMYDash, "25-12-2024"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			col := &domain.Column{Name: "d", Kind: domain.KindText, Values: []any{"12/25/2024", nil}}
			out := FixDateValues(col, tt.typ)

			assert.Equal(t, domain.KindText, col.Kind)
			assert.Equal(t, []any{tt.want, nil}, col.Values)
			assert.Equal(t, 1, out.Updated)
		})
	}
}

func TestFixDateValuesOnDatetimeColumn(t *testing.T) {
	col := &domain.Column{Name: "d", Kind: domain.KindDatetime, Values: []any{date(2024, 12, 25)}}

	out := FixDateValues(col, TypeDateISO)
	assert.Equal(t, []any{"2024-12-25"}, col.Values)
	assert.Equal(t, 1, out.Updated)
	assert.Zero(t, out.Failed)
}
