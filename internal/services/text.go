package services

import "strings"

// NormalizeText collapses every whitespace run (unicode.IsSpace) into a single
// space and trims the ends. It is idempotent.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
