// Package normalization maps loosely written configuration values onto
// canonical enum values.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// EnumNormalizer resolves case- and whitespace-insensitive aliases to values.
type EnumNormalizer[T comparable] struct {
	field        string
	values       map[string]T
	defaultValue T
	keys         []string
}

// NewEnumNormalizer builds a normalizer for field. Unknown input resolves to
// defaultValue.
func NewEnumNormalizer[T comparable](field string, aliases map[string]T, defaultValue T) *EnumNormalizer[T] {
	values := make(map[string]T, len(aliases))
	keys := make([]string, 0, len(aliases))
	for k, v := range aliases {
		key := clean(k)
		values[key] = v
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &EnumNormalizer[T]{field: field, values: values, defaultValue: defaultValue, keys: keys}
}

// Normalize returns the value for raw, or the default.
func (e *EnumNormalizer[T]) Normalize(raw string) T {
	if v, ok := e.values[clean(raw)]; ok {
		return v
	}
	return e.defaultValue
}

// NormalizeWithValidation is Normalize that rejects unknown input.
func (e *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	if v, ok := e.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", e.field, raw, e.keys)
}

// IsValid reports whether raw names a known alias.
func (e *EnumNormalizer[T]) IsValid(raw string) bool {
	_, ok := e.values[clean(raw)]
	return ok
}

// ValidValues lists the accepted aliases, sorted.
func (e *EnumNormalizer[T]) ValidValues() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
