// Package inspect produces per-column summaries of a loaded table for the
// caller's data preview: kind, null counts, distinct counts, and either
// basic statistics (numeric kinds) or sample values.
package inspect

import (
	"cleantab/internal/transform"
	"cleantab/pkg/contracts/domain"
)

// maxSamples bounds the sample values reported for non-numeric columns.
const maxSamples = 5

// ColumnSummary describes one column of a table.
type ColumnSummary struct {
	Name         string      `json:"name"`
	Kind         domain.Kind `json:"kind"`
	NullCount    int         `json:"null_count"`
	NonNullCount int         `json:"non_null_count"`
	UniqueCount  int         `json:"unique_count"`

	// Numeric columns only.
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Mean *float64 `json:"mean,omitempty"`

	// Non-numeric columns only: up to five distinct values in row order.
	Samples []string `json:"samples,omitempty"`
}

// Describe summarizes every column of the table in table order.
func Describe(t *domain.Table) []ColumnSummary {
	out := make([]ColumnSummary, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = describeColumn(col)
	}
	return out
}

func describeColumn(col *domain.Column) ColumnSummary {
	s := ColumnSummary{Name: col.Name, Kind: col.Kind}

	distinct := make(map[string]bool)
	var sum float64
	var min, max float64
	numeric := col.Kind.IsNumeric()
	first := true

	for _, v := range col.Values {
		if v == nil {
			s.NullCount++
			continue
		}
		s.NonNullCount++

		rendered := transform.Stringify(v)
		if !distinct[rendered] {
			distinct[rendered] = true
			if !numeric && len(s.Samples) < maxSamples {
				s.Samples = append(s.Samples, rendered)
			}
		}

		if numeric {
			f := asFloat(v)
			sum += f
			if first || f < min {
				min = f
			}
			if first || f > max {
				max = f
			}
			first = false
		}
	}

	s.UniqueCount = len(distinct)
	if numeric && s.NonNullCount > 0 {
		mean := sum / float64(s.NonNullCount)
		s.Min, s.Max, s.Mean = &min, &max, &mean
	}
	return s
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	default:
		return 0
	}
}
