package catalog

import (
	"encoding/json"
	"strings"
)

// Answer is the key for one question: either a single value or an unordered
// set of values (multi-select). The raw strings keep their original spelling;
// normalization is the matcher's job.
type Answer struct {
	multi  bool
	values []string
}

func SingleAnswer(v string) Answer {
	return Answer{values: []string{v}}
}

func MultiAnswer(vals []string) Answer {
	return Answer{multi: true, values: append([]string(nil), vals...)}
}

// ParseAnswer resolves the loosely-typed storage encoding once, at the
// catalog boundary. A raw value that parses as a JSON string array becomes a
// multi-select key; anything else, including a malformed serialization, is
// treated as a single value.
func ParseAnswer(raw string) Answer {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var vals []string
		if err := json.Unmarshal([]byte(trimmed), &vals); err == nil && len(vals) > 0 {
			return MultiAnswer(vals)
		}
	}
	return SingleAnswer(raw)
}

// IsMulti reports whether the key is a multi-select set.
func (a Answer) IsMulti() bool { return a.multi }

// Values returns the raw answer strings.
func (a Answer) Values() []string { return append([]string(nil), a.values...) }

// Display joins the original values for human-readable output.
func (a Answer) Display() string { return strings.Join(a.values, ", ") }

// IsZero reports an empty key, which a valid question never has.
func (a Answer) IsZero() bool {
	for _, v := range a.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Encode returns the storage form: the bare string for a single value, a
// JSON string array for a multi-select key.
func (a Answer) Encode() string {
	if !a.multi {
		if len(a.values) == 0 {
			return ""
		}
		return a.values[0]
	}
	buf, _ := json.Marshal(a.values)
	return string(buf)
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.values)
	}
	if len(a.values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.values[0])
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ParseAnswer(s)
		return nil
	}
	var vals []string
	if err := json.Unmarshal(data, &vals); err == nil {
		*a = MultiAnswer(vals)
		return nil
	}
	// anything else degrades to the raw text as a single value
	*a = SingleAnswer(strings.Trim(string(data), `"`))
	return nil
}
