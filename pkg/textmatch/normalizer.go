package textmatch

import "strings"

// Normalize lower-cases text and collapses every whitespace run into a
// single space. Idempotent; empty input stays empty.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
