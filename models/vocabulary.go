package models

// PlaceholderToken is the single substitution slot every sentence template
// pattern must contain exactly once.
const PlaceholderToken = "{word}"

// VocabularyWord is a seeded reference word tagged by (theme, word_type).
// Rows are created at seed time and read-only thereafter.
type VocabularyWord struct {
	ID       int64  `json:"id"`
	Theme    string `json:"theme"`
	WordType string `json:"word_type"`
	Spanish  string `json:"spanish_word"`
	English  string `json:"english_translation"`
}

// TableName returns the name of the database table
// associated with the VocabularyWord model.
func (w VocabularyWord) TableName() string {
	return "vocabulary_words"
}

// SentenceTemplate is a seeded sentence pattern tagged by the same
// (theme, word_type) key space as VocabularyWord, with independent
// cardinality. Each pattern contains exactly one [PlaceholderToken].
type SentenceTemplate struct {
	ID             int64  `json:"id"`
	Theme          string `json:"theme"`
	WordType       string `json:"word_type"`
	SpanishPattern string `json:"spanish_template"`
	EnglishPattern string `json:"english_template"`
}

// TableName returns the name of the database table
// associated with the SentenceTemplate model.
func (t SentenceTemplate) TableName() string {
	return "sentence_templates"
}

// Sentence is one assembled practice sentence: a template with the
// vocabulary word substituted and highlighted in both languages.
type Sentence struct {
	Spanish   string `json:"spanish"`
	English   string `json:"english"`
	WordID    int64  `json:"word_id"`
	IsLearned bool   `json:"is_learned"`
}
