package sendmodal

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	// A Caser keeps state, so build one per call.
	return cases.Title(language.Und).String(s)
}
