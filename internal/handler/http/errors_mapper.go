package http

import (
	"errors"
	"net/http"

	"github.com/mtorres/palabras/internal/service"
	"github.com/mtorres/palabras/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmptyInput:              http.StatusBadRequest,
	service.ErrNoWordsAccepted:         http.StatusBadRequest,
	service.ErrNothingToPractice:       http.StatusNotFound,

	store.ErrEmailAlreadyExists:       http.StatusConflict,
	store.ErrNoAccountWasFound:        http.StatusNotFound,
	store.ErrPracticeNotFound:         http.StatusNotFound,
	store.ErrCuratedWordNotFound:      http.StatusNotFound,
	store.ErrCuratedWordAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
