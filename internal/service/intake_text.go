package service

import (
	"strings"
	"unicode"
)

// ParseBulkInput turns raw textarea input into a clean, deduplicated list of
// candidate words and phrases.
//
// Commas and newlines both separate entries. Within an entry everything but
// letters, digits, spaces, the gender slash (lejo/a) and inverted Spanish
// punctuation is stripped, runs of spaces are collapsed, and later
// case-insensitive repeats of an earlier entry are dropped.
func ParseBulkInput(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(raw, ",", "\n"), "\n")

	seen := make(map[string]struct{}, len(lines))
	var words []string
	for _, line := range lines {
		word := cleanWord(line)
		if word == "" {
			continue
		}

		key := strings.ToLower(word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, word)
	}

	return words
}

func cleanWord(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '/' || r == '_' || r == '¿' || r == '¡':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// truncateBatch caps the candidate list for cost control. Returns the kept
// prefix and how many entries were dropped.
func truncateBatch(words []string, max int) ([]string, int) {
	if len(words) <= max {
		return words, 0
	}
	return words[:max], len(words) - max
}
