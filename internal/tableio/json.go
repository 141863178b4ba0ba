package tableio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"cleantab/internal/errors"
	"cleantab/pkg/contracts/domain"
)

// readJSON loads a record-oriented JSON array: [{"col": value, ...}, ...].
// Column order follows first appearance of each key across the records,
// recovered from the token stream since Go maps do not preserve it.
func readJSON(path string) (*domain.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindIOError, path, "cannot read file", err)
	}

	keys, err := orderedKeys(data)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "malformed JSON", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "expected an array of record objects", err)
	}

	cols := make([]*domain.Column, len(keys))
	for i, key := range keys {
		values := make([]any, len(records))
		for r, rec := range records {
			values[r] = rec[key] // missing keys stay null
		}
		kind, values := refineJSONColumn(values)
		cols[i] = &domain.Column{Name: key, Kind: kind, Values: values}
	}
	return &domain.Table{Columns: cols}, nil
}

// orderedKeys walks the token stream of a record array and collects object
// keys in first-appearance order.
func orderedKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("expected a top-level array, got %v", tok)
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("expected a record object, got %v", tok)
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected an object key, got %v", keyTok)
			}
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
	return nil
}

// refineJSONColumn assigns a kind to decoded JSON values. JSON numbers
// decode as float64; a column of integral floats becomes an integer column.
func refineJSONColumn(values []any) (domain.Kind, []any) {
	allInt, allFloat, allString, allBool := true, true, true, true
	nonNull := 0
	for _, v := range values {
		switch t := v.(type) {
		case nil:
			continue
		case float64:
			allString, allBool = false, false
			if t != float64(int64(t)) {
				allInt = false
			}
		case string:
			allInt, allFloat, allBool = false, false, false
		case bool:
			allInt, allFloat, allString = false, false, false
		default:
			allInt, allFloat, allString, allBool = false, false, false, false
		}
		nonNull++
	}

	if nonNull == 0 {
		return domain.KindText, values
	}

	switch {
	case allInt:
		for i, v := range values {
			if f, ok := v.(float64); ok {
				values[i] = int64(f)
			}
		}
		return domain.KindInteger, values
	case allFloat:
		return domain.KindFloat, values
	case allBool:
		return domain.KindBoolean, values
	case allString:
		return domain.KindText, values
	default:
		return domain.KindRaw, values
	}
}

func writeJSON(w io.Writer, tbl *domain.Table) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")

	rows := tbl.RowCount()
	for r := 0; r < rows; r++ {
		buf.WriteString("  {")
		for i, col := range tbl.Columns {
			if i > 0 {
				buf.WriteString(", ")
			}
			key, err := json.Marshal(col.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteString(": ")

			v := col.Values[r]
			if ts, ok := v.(time.Time); ok {
				v = ts.Format("2006-01-02 15:04:05")
			}
			val, err := json.Marshal(v)
			if err != nil {
				return err
			}
			buf.Write(val)
		}
		buf.WriteString("}")
		if r < rows-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}
