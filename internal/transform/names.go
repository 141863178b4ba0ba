package transform

import (
	"fmt"
	"regexp"
	"strings"

	"cleantab/pkg/contracts/domain"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName converts a single header to lower snake_case: trim, replace
// non-alphanumeric runs with one underscore, lowercase, strip edge
// underscores. An input that normalizes to nothing becomes "column".
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = nonAlnumRun.ReplaceAllString(n, "_")
	n = strings.Trim(n, "_")
	if n == "" {
		return "column"
	}
	return n
}

// NormalizeNames normalizes a header sequence and guarantees uniqueness:
// when two inputs normalize identically, later occurrences get a
// deterministic _2, _3, ... suffix.
func NormalizeNames(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]int, len(names))
	for i, name := range names {
		n := NormalizeName(name)
		base := n
		for seq := 2; used[n] > 0; seq++ {
			n = fmt.Sprintf("%s_%d", base, seq)
		}
		used[n]++
		out[i] = n
	}
	return out
}

// NormalizeColumnNames rewrites a table's headers in place and returns the
// new names. It operates on metadata only and always succeeds.
func NormalizeColumnNames(t *domain.Table) []string {
	names := NormalizeNames(t.ColumnNames())
	for i, c := range t.Columns {
		c.Name = names[i]
	}
	return names
}
