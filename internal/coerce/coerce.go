// Package coerce converts a column between declared value kinds. Per-value
// failures become null and are reported as counts so the caller can show
// "480 of 500 values converted" instead of failing the whole column.
//
// Generic coercion is deliberately stricter than the numeric standardize
// transform: text to integer/float tries a direct parse and then a
// whitespace-trimmed retry only. Stripping currency symbols and separators
// is the standardize transform's job.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cleantab/internal/transform"
	"cleantab/pkg/contracts/domain"
)

// Result reports per-value conversion counts for one coercion. Null values
// pass through and are counted in neither bucket.
type Result struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Coerce converts every value of the column to the target kind in place.
// Failures become null. Coercing to categorical never fails: any value
// becomes a category label. An unsupported target kind is a programming
// error and returns an error with the column untouched.
func Coerce(col *domain.Column, target domain.Kind) (Result, error) {
	var conv func(any) (any, bool)

	switch target {
	case domain.KindInteger:
		conv = toInteger
	case domain.KindFloat:
		conv = toFloatValue
	case domain.KindText, domain.KindCategorical:
		conv = toText
	case domain.KindDatetime:
		conv = toDatetime
	case domain.KindBoolean:
		conv = toBoolean
	case domain.KindRaw:
		conv = func(v any) (any, bool) { return v, true }
	default:
		return Result{}, fmt.Errorf("cannot coerce to unknown kind %q", target)
	}

	var res Result
	for i, v := range col.Values {
		if v == nil {
			continue
		}
		nv, ok := conv(v)
		if !ok {
			col.Values[i] = nil
			res.Failed++
			continue
		}
		col.Values[i] = nv
		res.Succeeded++
	}

	col.Kind = target
	return res, nil
}

func toInteger(v any) (any, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case bool:
		if t {
			return int64(1), true
		}
		return int64(0), true
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func toFloatValue(v any) (any, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case bool:
		if t {
			return 1.0, true
		}
		return 0.0, true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func toText(v any) (any, bool) {
	return transform.Stringify(v), true
}

func toDatetime(v any) (any, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if ts, ok := transform.ParseDate(t); ok {
			return ts, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func toBoolean(v any) (any, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case int64:
		switch t {
		case 0:
			return false, true
		case 1:
			return true, true
		}
		return nil, false
	case float64:
		switch t {
		case 0:
			return false, true
		case 1:
			return true, true
		}
		return nil, false
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
		return nil, false
	default:
		return nil, false
	}
}
