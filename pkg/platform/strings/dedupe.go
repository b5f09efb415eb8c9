// Package strings provides string slice utilities.
package strings

// Dedupe removes duplicate values, keeping the first occurrence. Values are
// compared verbatim and empty strings are kept. A nil input yields an empty,
// non-nil slice so callers can serialize it as [].
//
// Example:
//
//	Dedupe([]string{"foo", "bar", "foo"})
//	// Returns: []string{"foo", "bar"}
func Dedupe(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
