// Package validation collects field-level input violations.
package validation

import "strings"

// Violations maps a field name to the reason it was rejected.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Required flags the field when the value is blank.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// PositiveInt flags the field when the value is zero or negative.
func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}
