package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label renders a snake_case token as title-cased words, e.g. "two_handed" -> "Two Handed".
func Label[T ~string](token T) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(token), "_", " "))
}
