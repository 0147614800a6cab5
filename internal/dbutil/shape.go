// Package dbutil provides the shared helpers between the repository layer
// and the API surface: snake_case/camelCase row shaping, dynamic WHERE
// construction for $N-placeholder SQL, pagination, and field validators.
//
// Everything in this package is a pure function; nothing here touches the
// database or holds state.
package dbutil

import "strings"

// ToSnakeCase converts a camelCase name to snake_case.
// A leading capital produces a leading underscore; consecutive capitals are
// not collapsed, so the conversion is not guaranteed to round-trip through
// ToCamelCase for such inputs.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamelCase converts a snake_case name to camelCase. Only an underscore
// followed by a lowercase ASCII letter is folded; anything else (trailing
// underscores, "_1") passes through unchanged.
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z' {
			b.WriteRune(runes[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// KeysToCamelCase returns a new map with every key converted to camelCase.
// Values are carried over unchanged and the input map is never mutated.
func KeysToCamelCase(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[ToCamelCase(k)] = v
	}
	return out
}

// KeysToSnakeCase returns a new map with every key converted to snake_case.
// Values are carried over unchanged and the input map is never mutated.
func KeysToSnakeCase(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[ToSnakeCase(k)] = v
	}
	return out
}
