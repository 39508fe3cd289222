package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// AsString decodes a JSON scalar that may arrive as a string or a number.
// Returns "" for null, absent, or non-scalar values.
func AsString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// AsInt decodes a JSON scalar that may arrive as a number or a numeric
// string. Returns (0, false) when nothing usable is present.
func AsInt(raw json.RawMessage) (int, bool) {
	s := AsString(raw)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// ParseItems accepts both wire forms the deployed frontends post:
// the list form [{id, value}] and the legacy object form
// {item1: v, item2: v, ...}. Unusable entries are kept as raw strings;
// dropping them is the normalizer's decision, not the decoder's.
func ParseItems(raw json.RawMessage) []RawItem {
	if len(raw) == 0 {
		return nil
	}
	var list []struct {
		ID    json.RawMessage `json:"id"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]RawItem, 0, len(list))
		for _, e := range list {
			out = append(out, RawItem{ID: AsString(e.ID), Value: AsString(e.Value)})
		}
		return out
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]RawItem, 0, len(keys))
	for _, k := range keys {
		id := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(k)), "item")
		out = append(out, RawItem{ID: id, Value: AsString(obj[k])})
	}
	return out
}

// ParseStringMap decodes an object of enumerated preference answers,
// coercing scalar values to strings and skipping everything else.
func ParseStringMap(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if s := AsString(v); s != "" {
			out[strings.TrimSpace(k)] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
