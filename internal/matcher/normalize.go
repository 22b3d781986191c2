package matcher

import "strings"

// Normalize lowercases and trims whitespace from a raw ingredient name.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSet normalizes every entry into a set. A blank entry becomes the
// empty string, which is a substring of every meal ingredient.
func NormalizeSet(ingredients []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		set[Normalize(ing)] = struct{}{}
	}
	return set
}
