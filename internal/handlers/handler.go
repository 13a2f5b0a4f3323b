package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/clearbooks/backend/internal/ledger"
	"github.com/clearbooks/backend/internal/models"
	"github.com/clearbooks/backend/internal/services"
)

const maxRequestBytes = 1_048_576 // 1 MB

// decodeJSON reads a single JSON object into dst, rejecting unknown fields
// and trailing garbage.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must only contain a single JSON object")
	}
	return nil
}

// statusForError maps core ledger errors onto HTTP status codes: validation
// failures are 400, stale references 404, conflicts 409, engine defects 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrSelfParent),
		errors.Is(err, ledger.ErrEmptyTransaction),
		errors.Is(err, ledger.ErrInvalidEntry),
		errors.Is(err, ledger.ErrUnbalanced):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrUnknownParent),
		errors.Is(err, ledger.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateCode),
		errors.Is(err, ledger.ErrHasPostings):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func sendLedgerError(w http.ResponseWriter, err error) {
	services.SendErrorResponse(w, err.Error(), statusForError(err), nil)
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(r *http.Request, name string) (*models.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
