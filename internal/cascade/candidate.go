package cascade

import (
	"strings"
	"unicode/utf8"
)

// IsCandidate reports whether a trimmed text fragment is shaped like a
// username: 1 to 49 characters, no space or newline, not only digits and
// not a stopword or structural label.
func IsCandidate(text string) bool {
	if !isCellCandidate(text) {
		return false
	}
	if strings.Contains(text, "\n") {
		return false
	}
	if digitsRegex.MatchString(text) {
		return false
	}
	return !structuralStopwords[text] && !structuralLabels[text]
}

// isCellCandidate is the relaxed shape check used for table cells and
// selector matches: non-empty, shorter than MaxCandidateLength and free of
// spaces.
func isCellCandidate(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > 0 && n < MaxCandidateLength && !strings.Contains(text, " ")
}

// IsStopword reports whether a free-text token is a stopword, ignoring case.
func IsStopword(token string) bool {
	return freeTextStopwords[strings.ToLower(token)]
}
