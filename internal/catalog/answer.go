package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAnswer lowercases s and strips surrounding whitespace, including
// the byte order mark that some keyboards and clipboards leave behind.
func NormalizeAnswer(s string) string {
	return TrimAnswer(cases.Lower(language.Russian).String(s))
}

// TrimAnswer strips surrounding whitespace without changing case.
func TrimAnswer(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// MatchAnswer reports whether given matches correct. Comparison is
// case-insensitive and ignores leading and trailing whitespace; nothing else
// (inner spaces, punctuation, ё/е) is folded.
func MatchAnswer(given, correct string) bool {
	return NormalizeAnswer(given) == NormalizeAnswer(correct)
}

// IsCorrect checks a player's answer against the question's correct answer.
func (q Question) IsCorrect(given string) bool {
	return MatchAnswer(given, q.CorrectAnswer)
}
