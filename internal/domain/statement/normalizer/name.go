package normalizer

import (
	"regexp"
	"strings"
)

var (
	emailLabelRe = regexp.MustCompile(`(?is)\bE-?mail\b.*$`)
	honorificRe  = regexp.MustCompile(`(?i)^(?:MR|MRS|MS|DR)\.?\s+`)
)

// Name cleans a raw cardholder-name fragment: everything from a trailing
// "Email" label onward is dropped, e-mail-like tokens and honorific prefixes
// are stripped, whitespace runs collapse to single spaces, and the result is
// title-cased. Returns "" when nothing usable remains.
func Name(raw string) string {
	s := emailLabelRe.ReplaceAllString(raw, "")
	s = emailRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	s = honorificRe.ReplaceAllString(s, "")
	s = strings.TrimRight(s, " .,:;-")
	return titleCase(s)
}

// titleCase uppercases the first letter of each word and lowercases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
