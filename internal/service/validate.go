package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationError reports an attribute set that does not match an
// entity schema. The message enumerates the offending field names.
type ValidationError struct {
	Missing []string
	Extra   []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "extra fields: "+strings.Join(e.Extra, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// fieldSchema is the declarative attribute schema of an entity, shared
// by create and update. Validation is a set difference: every required
// field must be present and no field outside the schema is permitted.
type fieldSchema struct {
	required []string
	optional []string
}

func (s fieldSchema) validate(attrs map[string]any) error {
	var missing []string
	for _, name := range s.required {
		if _, ok := attrs[name]; !ok {
			missing = append(missing, name)
		}
	}

	allowed := make(map[string]bool, len(s.required)+len(s.optional))
	for _, name := range s.required {
		allowed[name] = true
	}
	for _, name := range s.optional {
		allowed[name] = true
	}

	var extra []string
	for name := range attrs {
		if !allowed[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	if len(missing) > 0 || len(extra) > 0 {
		return &ValidationError{Missing: missing, Extra: extra}
	}
	return nil
}

// coercer normalizes wire attribute values into typed fields. Numeric
// coercion accepts both JSON numbers and numeric strings; fields that
// cannot be coerced are collected and reported together.
type coercer struct {
	invalid []string
}

func (c *coercer) str(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

func (c *coercer) float(name string, v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.invalid = append(c.invalid, name)
			return 0
		}
		return f
	default:
		c.invalid = append(c.invalid, name)
		return 0
	}
}

func (c *coercer) int(name string, v any) int {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	case string:
		i, err := strconv.Atoi(value)
		if err != nil {
			c.invalid = append(c.invalid, name)
			return 0
		}
		return i
	default:
		c.invalid = append(c.invalid, name)
		return 0
	}
}

func (c *coercer) err() error {
	if len(c.invalid) == 0 {
		return nil
	}
	sort.Strings(c.invalid)
	return &ValidationError{Invalid: c.invalid}
}
