package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mtorres/palabras/models"
)

// stripCodeFence removes a surrounding markdown code fence from model output.
// Models sometimes wrap JSON in ```json blocks despite instructions not to.
func stripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}

	parts := strings.Split(clean, "```")
	if len(parts) < 2 {
		return clean
	}

	clean = parts[1]
	clean = strings.TrimPrefix(clean, "json")
	return strings.TrimSpace(clean)
}

func parseVerdicts(content string) ([]models.WordVerdict, error) {
	var verdicts []models.WordVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &verdicts); err != nil {
		return nil, fmt.Errorf("decoding verdicts: %w", err)
	}
	return verdicts, nil
}

// parseClassifiedWords decodes and validates classifier output. Records that
// fail structural validation are dropped; out-of-set word types and themes
// are healed to the default category instead.
func parseClassifiedWords(content string) ([]models.ClassifiedWord, error) {
	var raw []models.ClassifiedWord
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &raw); err != nil {
		return nil, fmt.Errorf("decoding classified words: %w", err)
	}

	var validated []models.ClassifiedWord
	for _, word := range raw {
		healed, ok := healClassifiedWord(word)
		if !ok {
			continue
		}
		validated = append(validated, healed)
	}

	return validated, nil
}

// healClassifiedWord enforces the structural contract on one classifier
// record. Spanish equal to English signals a translation failure and drops
// the record; an invalid category only downgrades it to "other".
func healClassifiedWord(word models.ClassifiedWord) (models.ClassifiedWord, bool) {
	if word.Spanish == "" || word.English == "" {
		return models.ClassifiedWord{}, false
	}
	if strings.EqualFold(word.Spanish, word.English) {
		return models.ClassifiedWord{}, false
	}
	if len(word.Spanish) > 50 || len(word.English) > 200 {
		return models.ClassifiedWord{}, false
	}

	if !models.IsValidWordType(word.WordType) {
		word.WordType = models.DefaultCategory
	}

	if len(word.Themes) > 3 {
		word.Themes = word.Themes[:3]
	}
	var themes []string
	for _, theme := range word.Themes {
		if models.IsValidTheme(theme) {
			themes = append(themes, theme)
		}
	}
	if len(themes) == 0 {
		themes = []string{models.DefaultCategory}
	}
	word.Themes = themes

	return word, true
}
