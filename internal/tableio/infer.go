package tableio

import (
	"strconv"
	"strings"

	"cleantab/internal/transform"
	"cleantab/pkg/contracts/domain"
)

// buildColumns turns header names plus row-major string cells into typed
// columns. CSV and Excel carry no type information, so kinds are inferred
// per column: integer, then float, then boolean, falling back to text.
// Empty cells are null.
func buildColumns(headers []string, rows [][]string) []*domain.Column {
	cols := make([]*domain.Column, len(headers))
	for i, h := range headers {
		cells := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				cells[r] = row[i]
			}
		}
		kind, values := inferColumn(cells)
		cols[i] = &domain.Column{Name: h, Kind: kind, Values: values}
	}
	return cols
}

func inferColumn(cells []string) (domain.Kind, []any) {
	isInt, isFloat, isBool := true, true, true
	nonEmpty := 0
	for _, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseInt(c, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			isFloat = false
		}
		if !strings.EqualFold(c, "true") && !strings.EqualFold(c, "false") {
			isBool = false
		}
	}

	kind := domain.KindText
	if nonEmpty > 0 {
		switch {
		case isInt:
			kind = domain.KindInteger
		case isFloat:
			kind = domain.KindFloat
		case isBool:
			kind = domain.KindBoolean
		}
	}

	values := make([]any, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		switch kind {
		case domain.KindInteger:
			n, _ := strconv.ParseInt(c, 10, 64)
			values[i] = n
		case domain.KindFloat:
			f, _ := strconv.ParseFloat(c, 64)
			values[i] = f
		case domain.KindBoolean:
			values[i] = strings.EqualFold(c, "true")
		default:
			values[i] = cells[i]
		}
	}
	return kind, values
}

// renderCell renders a scalar value for a text-based output format.
// Nulls render as the empty string.
func renderCell(v any) string {
	if v == nil {
		return ""
	}
	return transform.Stringify(v)
}
