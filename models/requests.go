package models

// Credentials is the request body for registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MarkLearnedRequest is the request body for POST /api/mark-learned.
// WordID is a pointer so a missing field can be told apart from zero.
type MarkLearnedRequest struct {
	WordID *int64 `json:"word_id"`
}

// BulkWordsRequest is the request body for POST /api/words/bulk.
type BulkWordsRequest struct {
	RawText string `json:"raw_text"`
}
