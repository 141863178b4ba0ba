package states

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShape(t *testing.T) {
	// 50 states + DC + 5 territories.
	assert.Equal(t, 56, Count())

	seenNames := make(map[string]bool)
	seenCodes := make(map[string]bool)
	for _, s := range All() {
		assert.Len(t, s.Code, 2)
		assert.Equal(t, strings.ToUpper(s.Code), s.Code, "codes are uppercase")
		assert.False(t, seenNames[s.Name], "duplicate name %s", s.Name)
		assert.False(t, seenCodes[s.Code], "duplicate code %s", s.Code)
		seenNames[s.Name] = true
		seenCodes[s.Code] = true
	}
}

func TestBidirectionalLookup(t *testing.T) {
	for _, s := range All() {
		name, ok := NameForCode(s.Code)
		require.True(t, ok, s.Code)
		assert.Equal(t, s.Name, name)

		code, ok := CodeForName(s.Name)
		require.True(t, ok, s.Name)
		assert.Equal(t, s.Code, code)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantOK   bool
	}{
		{"ny", "New York", true},
		{"NY", "New York", true},
		{" ny ", "New York", true},
		{"new york", "New York", true},
		{"NEW YORK", "New York", true},
		{"district of columbia", "District Of Columbia", true},
		{"puerto rico", "Puerto Rico", true},
		{"Ontario", "", false},
		{"XX", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, ok := Lookup(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantName, s.Name)
			}
		})
	}
}
