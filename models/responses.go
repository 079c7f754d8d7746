package models

// PracticeResponse is the response body of GET/POST /api/practice: the
// assembled sentence list plus refreshed statistics.
type PracticeResponse struct {
	Sentences []Sentence    `json:"sentences"`
	Stats     PracticeStats `json:"stats"`
}

// MarkLearnedResponse is the response body of POST /api/mark-learned.
type MarkLearnedResponse struct {
	Success       bool          `json:"success"`
	MarkedLearned bool          `json:"marked_learned"`
	Stats         PracticeStats `json:"stats"`
}

// BulkWordsResponse is the response body of POST /api/words/bulk.
type BulkWordsResponse struct {
	Success bool          `json:"success"`
	Words   []CuratedWord `json:"words"`
	Stats   BulkStats     `json:"stats"`
	Errors  []string      `json:"errors"`
}

// BulkStats is the counts block of [BulkWordsResponse].
type BulkStats struct {
	Processed  int `json:"processed"`
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
	Rejected   int `json:"rejected"`
}

// ErrorResponse is the generic JSON error payload.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
