package patch

import "strings"

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text trims an optional free-text field; nil and blank both read as "".
func Text(ptr *string) string {
	return strings.TrimSpace(Coalesce(ptr, ""))
}
