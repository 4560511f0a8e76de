package board

import (
	"strings"
	"unicode/utf8"
)

var separators = strings.NewReplacer(".", " ", "_", " ", "-", " ")

// Initials derives the avatar text for a participant email.
//
// The local part (before the first @) has '.', '_' and '-' turned into
// spaces and is split on single spaces. The first two pieces contribute their
// first letter each; empty pieces contribute nothing. When that yields
// nothing, the email's first character is used.
func Initials(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.Split(separators.Replace(local), " ")
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		if r, size := utf8.DecodeRuneInString(w); size > 0 {
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		return strings.ToUpper(b.String())
	}

	if r, size := utf8.DecodeRuneInString(email); size > 0 {
		return strings.ToUpper(string(r))
	}
	return ""
}
