package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyPayload is returned by DecodeObject when the upstream sent nothing usable.
var ErrEmptyPayload = errors.New("empty payload")

// Record is one loosely-typed object as sent by the hospital backend.
type Record map[string]any

// Schema lists, for every canonical field, the upstream keys that may carry it
// in priority order. There is one Schema per upstream entity and it covers
// every backend version the kiosk talks to.
type Schema map[string][]string

// Field returns the first non-empty value among the keys Schema lists for name.
func (r Record) Field(s Schema, name string) string {
	return r.First(s[name]...)
}

// Fields returns every distinct non-empty value among the keys listed for name.
func (r Record) Fields(s Schema, name string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, key := range s[name] {
		v := stringify(r[key])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// First returns the first non-empty value among keys.
func (r Record) First(keys ...string) string {
	for _, key := range keys {
		if v := stringify(r[key]); v != "" {
			return v
		}
	}
	return ""
}

// Records returns the nested list stored under the first present key.
func (r Record) Records(keys ...string) []Record {
	for _, key := range keys {
		items, ok := r[key].([]any)
		if !ok {
			continue
		}
		out := make([]Record, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, Record(m))
			}
		}
		return out
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// DecodeList accepts both a bare JSON array and an object wrapping the array
// under "data".
func DecodeList(raw []byte) ([]Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var items []Record
		if err := decode(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	case '{':
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := decode(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("decode wrapped list: %w", err)
		}
		data := bytes.TrimSpace(wrapped.Data)
		if len(data) == 0 || data[0] != '[' {
			return nil, nil
		}
		var items []Record
		if err := decode(data, &items); err != nil {
			return nil, fmt.Errorf("decode data list: %w", err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("decode list: unexpected payload %q", truncate(raw, 40))
	}
}

// DecodeObject accepts a bare object, an object wrapped under "data", or a
// list whose first element is the object.
func DecodeObject(raw []byte) (Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrEmptyPayload
	}

	if raw[0] == '[' {
		items, err := DecodeList(raw)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, ErrEmptyPayload
		}
		return items[0], nil
	}

	var rec Record
	if err := decode(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	switch data := rec["data"].(type) {
	case map[string]any:
		return Record(data), nil
	case []any:
		for _, item := range data {
			if m, ok := item.(map[string]any); ok {
				return Record(m), nil
			}
		}
		return nil, ErrEmptyPayload
	}
	if len(rec) == 0 {
		return nil, ErrEmptyPayload
	}
	return rec, nil
}

func decode(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(out)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
