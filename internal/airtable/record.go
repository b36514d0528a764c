package airtable

import (
	"math"
	"strconv"
	"strings"
)

// Record is a single Airtable row.
type Record struct {
	ID          string                 `json:"id"`
	CreatedTime string                 `json:"createdTime,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
}

// String returns the field as a string. Single-element arrays (lookup and
// link fields) are unwrapped.
func (r Record) String(field string) string {
	switch v := r.Fields[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// Float returns the numeric value of a field, or 0.
func (r Record) Float(field string) float64 {
	switch v := r.Fields[field].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f
		}
	case []interface{}:
		if len(v) > 0 {
			if f, ok := v[0].(float64); ok {
				return f
			}
		}
	}
	return 0
}

// Int returns Float truncated.
func (r Record) Int(field string) int {
	return int(r.Float(field))
}

func (r Record) Bool(field string) bool {
	switch v := r.Fields[field].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case float64:
		return v != 0
	}
	return false
}

// Strings returns a multi-valued field. Link fields come back as arrays of
// record ids; plain text fields are split on commas.
func (r Record) Strings(field string) []string {
	var out []string
	switch v := r.Fields[field].(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// IsEmpty reports whether a field is absent or holds no value. Airtable
// omits empty fields from responses, but blanks and empty arrays are
// treated the same way.
func (r Record) IsEmpty(field string) bool {
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

// Attachments returns the URLs of an attachment field.
func (r Record) Attachments(field string) []string {
	items, ok := r.Fields[field].([]interface{})
	if !ok {
		return nil
	}
	var urls []string
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if u, ok := m["url"].(string); ok && u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
