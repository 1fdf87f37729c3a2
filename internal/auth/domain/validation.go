package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed or missing input, naming the offending
// fields. It is recovered at the HTTP boundary and translated to a 400 with
// per-field messages; it must never be conflated with credential errors.
type ValidationError struct {
	Fields map[string]string // field name -> message, source locale
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// validator accumulates field errors so callers get everything wrong with a
// request at once rather than one field per round trip.
type validator struct {
	fields map[string]string
}

func (v *validator) requireNotBlank(field, value string) {
	if strings.TrimSpace(value) == "" {
		if v.fields == nil {
			v.fields = make(map[string]string)
		}
		v.fields[field] = "es obligatorio"
	}
}

func (v *validator) addError(field, msg string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	v.fields[field] = msg
}

func (v *validator) err() *ValidationError {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
