package models

import (
	"strings"
	"time"
)

// WordTypes is the fixed set of grammatical categories a curated word may
// carry. Classifier output outside this set is self-healed to "other".
var WordTypes = []string{
	"verb",
	"noun",
	"adjective",
	"adverb",
	"phrase",
	"function_word",
	"number",
	"other",
}

// Themes is the fixed set of topical categories for curated words.
// Each word carries between one and three of them.
var Themes = []string{
	"weather",
	"food",
	"work",
	"travel",
	"family",
	"emotions",
	"sports",
	"home",
	"health",
	"other",
}

// DefaultCategory is substituted for any word type or theme the classifier
// returns that is not part of the fixed sets.
const DefaultCategory = "other"

// IsValidWordType reports whether wordType belongs to the fixed set.
func IsValidWordType(wordType string) bool {
	for _, t := range WordTypes {
		if t == wordType {
			return true
		}
	}
	return false
}

// IsValidTheme reports whether theme belongs to the fixed set.
func IsValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// CuratedWord is a user-curated vocabulary entry produced by the bulk intake
// flow. Owned exclusively by one account; Spanish is unique per account,
// case-insensitive.
type CuratedWord struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"-"`
	Spanish   string    `json:"spanish"`
	English   string    `json:"english"`
	WordType  string    `json:"word_type"`
	Themes    []string  `json:"themes"`
	Learned   bool      `json:"is_learned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the CuratedWord model.
func (w CuratedWord) TableName() string {
	return "curated_words"
}

// ThemesColumn renders the themes slice into the comma-joined form stored in
// the database.
func (w CuratedWord) ThemesColumn() string {
	return strings.Join(w.Themes, ",")
}

// SplitThemes parses a comma-joined themes column back into a slice.
func SplitThemes(column string) []string {
	if column == "" {
		return nil
	}
	return strings.Split(column, ",")
}

// ClassifiedWord is the strict intermediate shape for one record returned by
// the external classifier. Raw classifier JSON is parsed into this type by a
// validating step; malformed records are dropped or defaulted, never trusted.
type ClassifiedWord struct {
	Spanish  string   `json:"spanish"`
	English  string   `json:"english"`
	WordType string   `json:"word_type"`
	Themes   []string `json:"themes"`
}

// WordVerdict is the per-word result of the external semantic validation
// pass: accept or reject with a human-readable reason.
type WordVerdict struct {
	Word   string `json:"word"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// BulkResult is the response contract of the bulk intake operation. The
// operation is best-effort: counts and per-item errors are always returned,
// even on partial success. Only the final commit is all-or-nothing.
type BulkResult struct {
	Processed  int           `json:"processed"`
	Created    int           `json:"created"`
	Duplicates int           `json:"duplicates"`
	Failed     int           `json:"failed"`
	Rejected   int           `json:"rejected"`
	Words      []CuratedWord `json:"words"`
	Errors     []string      `json:"errors"`
}

// CuratedWordFilter narrows a curated-word listing. Zero values mean
// "no filter"; Learned is a pointer so false can be filtered explicitly.
type CuratedWordFilter struct {
	WordType string `json:"word_type,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Learned  *bool  `json:"is_learned,omitempty"`
	Search   string `json:"search,omitempty"`
}

// CuratedWordUpdate is a partial update of a curated word. Only non-nil
// fields are written.
type CuratedWordUpdate struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"-"`
	English   *string   `json:"english,omitempty"`
	WordType  *string   `json:"word_type,omitempty"`
	Themes    *[]string `json:"themes,omitempty"`
	Learned   *bool     `json:"is_learned,omitempty"`
}
