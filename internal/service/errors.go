package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNothingToPractice is returned by the toggle path when the word has
	// no practice record yet. A word must be practiced before it can be
	// marked learned.
	ErrNothingToPractice = errors.New("word has not been practiced")

	// ErrNoWordsAccepted is returned when bulk intake rejects every
	// submitted word before any classifier call is worth making.
	ErrNoWordsAccepted = errors.New("no valid words to process")

	// ErrEmptyInput is returned when bulk intake receives text that parses
	// to zero candidate words.
	ErrEmptyInput = errors.New("no words found in input")
)
