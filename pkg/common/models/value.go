package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExternalValue wraps a single field of an upstream record whose type cannot
// be trusted. The zero value represents an absent field. Coercions are
// explicit and report failure instead of guessing: a field that does not
// coerce is a data quality problem for the caller to record, not an error.
type ExternalValue struct {
	raw     interface{}
	present bool
}

// ValueOf builds an ExternalValue around an already-decoded JSON value.
func ValueOf(raw interface{}) ExternalValue {
	return ExternalValue{raw: raw, present: true}
}

func (v *ExternalValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.raw = raw
	v.present = true
	return nil
}

func (v ExternalValue) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

// AsNumber coerces the value to a float64. JSON numbers pass through and
// numeric strings parse, matching how the upstream feed mixes both; anything
// else (absent, null, boolean, object, array, non-numeric string) fails.
func (v ExternalValue) AsNumber() (float64, bool) {
	switch raw := v.raw.(type) {
	case float64:
		return raw, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsString returns the value only when it is a JSON string.
func (v ExternalValue) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}
