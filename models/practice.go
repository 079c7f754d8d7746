package models

import "time"

// PracticeRecord marks that a session has practiced a vocabulary word.
//
// Invariant: unique on (SessionToken, WordID). Recording practice for an
// already-practiced word inserts nothing, but the Learned flag may still be
// toggled by subsequent calls.
type PracticeRecord struct {
	ID           int64     `json:"-"`
	SessionToken string    `json:"-"`
	WordID       int64     `json:"word_id"`
	Theme        string    `json:"theme"`
	WordType     string    `json:"word_type"`
	Learned      bool      `json:"learned"`
	PracticedAt  time.Time `json:"practiced_at"`
}

// TableName returns the name of the database table
// associated with the PracticeRecord model.
func (p PracticeRecord) TableName() string {
	return "practice_records"
}

// PracticeStats aggregates a caller's practice history. For account
// identities the counts span every session ever linked to the account;
// for session identities they cover only that session's rows.
//
// ByTheme contains only themes with at least one practiced word. Zero-filling
// the full theme set for display is the caller's responsibility.
type PracticeStats struct {
	TotalPracticed int            `json:"total_practiced"`
	TotalLearned   int            `json:"total_learned"`
	ByTheme        map[string]int `json:"by_theme"`
}
