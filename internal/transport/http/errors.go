package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeTitleRequired      = "title_required"
	codeTitleTooLong       = "title_too_long"
	codeDescriptionTooLong = "description_too_long"
	codeLocationTooLong    = "location_too_long"
	codeTimesRequired      = "times_required"
	codeInvalidTimeRange   = "invalid_time_range"
	codeInvalidTimestamp   = "invalid_timestamp"
	codeInvalidViewMode    = "invalid_view_mode"
	codeWindowRequired     = "window_required"
	codeNoFieldsToUpdate   = "no_fields_to_update"
	codeInvalidID          = "invalid_id"
	codeEventNotFound      = "event_not_found"
	codeInvalidEmail       = "invalid_email"
	codeAdminExists        = "admin_already_exists"
	codeAdminNotFound      = "admin_not_found"
	codeForbidden          = "forbidden"
	codeEncodeFailed       = "encode_failed"
	codeStoreUnavailable   = "store_unavailable"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeEventValidationError maps the shared event validation sentinels.
// Returns false when the error was not one of them.
func writeEventValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
	case errors.Is(err, domain.ErrTitleTooLong):
		writeError(w, http.StatusBadRequest, codeTitleTooLong, err.Error())
	case errors.Is(err, domain.ErrDescriptionTooLong):
		writeError(w, http.StatusBadRequest, codeDescriptionTooLong, err.Error())
	case errors.Is(err, domain.ErrLocationTooLong):
		writeError(w, http.StatusBadRequest, codeLocationTooLong, err.Error())
	case errors.Is(err, domain.ErrTimesRequired):
		writeError(w, http.StatusBadRequest, codeTimesRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidTimeRange):
		writeError(w, http.StatusBadRequest, codeInvalidTimeRange, err.Error())
	default:
		return false
	}
	return true
}

// writeStoreError maps non-domain failures: unreachable store vs everything
// else. Store outages are retryable by the caller, so they get their own
// status.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "store unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
