package service

import (
	"strings"
	"unicode"
)

// Deterministic validation of candidate words, run before any classifier
// call. Cheap checks that reject obvious garbage so it never costs an API
// token.

// commonEnglish is a stop-list of frequent English words that are near-certain
// signs the user pasted the wrong language.
var commonEnglish = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "are": {}, "hello": {}, "world": {},
	"computer": {}, "phone": {}, "email": {}, "internet": {}, "website": {},
	"password": {}, "you": {}, "your": {}, "this": {}, "that": {},
	"with": {}, "from": {}, "they": {},
}

// spanishSuffixes are endings strongly associated with Spanish verbs, nouns,
// adverbs and adjectives.
var spanishSuffixes = []string{"ar", "er", "ir", "ción", "dad", "mente", "oso", "osa"}

// spanishPhrasePrefixes mark multi-word expressions that start with a common
// Spanish preposition.
var spanishPhrasePrefixes = []string{"de ", "por ", "para "}

// keyboardMash are substrings that betray keyboard-row mashing or repeated
// filler characters.
var keyboardMash = []string{"zxc", "qwe", "asd", "fgh", "jkl", "xxx", "yyy", "zzz"}

// validateCandidate runs every deterministic check on one cleaned word.
// Returns ok=false with a user-facing reason on the first failure.
func validateCandidate(word string) (bool, string) {
	word = strings.TrimSpace(word)

	if word == "" {
		return false, "Word is empty"
	}
	if n := len([]rune(word)); n < 2 || n > 50 {
		return false, "Word too short or too long (must be 2-50 characters)"
	}
	if !containsValidCharacters(word) {
		return false, "Contains invalid characters (numbers or special characters not allowed)"
	}
	if !isLikelySpanish(word) {
		return false, "Does not appear to be Spanish"
	}

	return true, ""
}

// containsValidCharacters permits letters (including accented ones), spaces
// for phrases, the gender slash and inverted Spanish punctuation. Digits and
// symbols are rejected.
func containsValidCharacters(word string) bool {
	for _, r := range word {
		switch {
		case unicode.IsLetter(r):
		case r == ' ' || r == '/' || r == '¿' || r == '¡':
		default:
			return false
		}
	}
	return true
}

// isLikelySpanish is a heuristic, not a verdict: words it cannot place either
// way are allowed through so the classifier gets the final say.
func isLikelySpanish(word string) bool {
	lower := strings.ToLower(strings.TrimSpace(word))

	if strings.ContainsAny(lower, "ñáéíóúü¿¡") {
		return true
	}

	if _, english := commonEnglish[lower]; english {
		return false
	}

	for _, suffix := range spanishSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, prefix := range spanishPhrasePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	if isGibberish(lower) {
		return false
	}

	// no Spanish indicators, but a plausible word: let the classifier decide
	return len([]rune(lower)) >= 3
}

func isGibberish(lower string) bool {
	compact := strings.ReplaceAll(lower, " ", "")

	// low letter diversity (aaaa, xyxyxy)
	if len([]rune(lower)) > 5 {
		distinct := make(map[rune]struct{})
		for _, r := range compact {
			distinct[r] = struct{}{}
		}
		if len(distinct) <= 3 {
			return true
		}
	}

	for _, pattern := range keyboardMash {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	// anything longer than a short function word needs a vowel
	if len([]rune(lower)) > 3 && !strings.ContainsAny(lower, "aeiouáéíóú") {
		return true
	}

	return false
}
