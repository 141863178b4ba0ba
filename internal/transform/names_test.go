package transform

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"cleantab/pkg/contracts/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"First Name", "first_name"},
		{"  Trailing Space  ", "trailing_space"},
		{"Amount ($)", "amount"},
		{"e-mail!!address", "e_mail_address"},
		{"ALLCAPS", "allcaps"},
		{"already_snake", "already_snake"},
		{"__Weird___Runs__", "weird_runs"},
		{"2024 Revenue", "2024_revenue"},
		{"???", "column"},
		{"", "column"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestNormalizeNamesUnique(t *testing.T) {
	got := NormalizeNames([]string{"Amount", "amount", "AMOUNT!", "amount_2"})
	assert.Equal(t, []string{"amount", "amount_2", "amount_3", "amount_2_2"}, got)
}

func TestNormalizeNamesCharset(t *testing.T) {
	snake := regexp.MustCompile(`^[a-z0-9_]+$`)
	inputs := []string{"Name", "Zip/Postal Code", "£ price", "", "  ", "a b c", "a b c"}

	got := NormalizeNames(inputs)
	assert.Len(t, got, len(inputs))

	seen := make(map[string]bool)
	for _, n := range got {
		assert.Regexp(t, snake, n)
		assert.False(t, seen[n], "duplicate output name %q", n)
		seen[n] = true
	}
}

func TestNormalizeColumnNames(t *testing.T) {
	tbl := &domain.Table{Columns: []*domain.Column{
		{Name: "First Name", Kind: domain.KindText, Values: []any{"a"}},
		{Name: "first name", Kind: domain.KindText, Values: []any{"b"}},
	}}

	names := NormalizeColumnNames(tbl)
	assert.Equal(t, []string{"first_name", "first_name_2"}, names)
	assert.Equal(t, names, tbl.ColumnNames())
}
