// Package textcase converts free-form names to the display casing the API returns.
package textcase

import (
	"fmt"
	"strings"
	"unicode"
)

// Title lower-cases s and upper-cases the first character of every word.
// A word is a maximal run of letters, digits and underscores. Whitespace is
// kept as is. Two fixes run afterwards: a character following a hyphen is
// lower-cased ("Test-string"), and so is a character following an apostrophe
// that sits between word characters ("It's").
func Title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))

	prevWord := false
	for i, c := range r {
		w := isWord(c)
		if w && !prevWord {
			r[i] = unicode.ToUpper(c)
		}
		prevWord = w
	}

	for i := 0; i+1 < len(r); i++ {
		if r[i] == '-' && isWord(r[i+1]) {
			r[i+1] = unicode.ToLower(r[i+1])
			i++
		}
	}

	// Matches do not overlap: "a'b'c" only fixes the first apostrophe.
	for i := 0; i+2 < len(r); {
		if isWord(r[i]) && r[i+1] == '\'' && isWord(r[i+2]) {
			r[i+2] = unicode.ToLower(r[i+2])
			i += 3
			continue
		}
		i++
	}

	return string(r)
}

// TitlePtr keeps nil as nil so nullable columns stay null in responses.
func TitlePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Title(*s)
	return &out
}

// TitleValue accepts any value. nil is returned untouched; everything else is
// rendered to text first, so 123 becomes "123".
func TitleValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return Title(t)
	case *string:
		return TitlePtr(t)
	case fmt.Stringer:
		return Title(t.String())
	default:
		return Title(fmt.Sprint(t))
	}
}

func isWord(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
