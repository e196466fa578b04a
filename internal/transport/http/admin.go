package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// AllowlistManager is the minimal interface needed for the admin allowlist
// endpoints.
type AllowlistManager interface {
	Add(ctx context.Context, email string) error
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]string, error)
}

// HandleAdminAdd adds an email to the allowlist. The caller must already
// pass the gate; the very first admin is seeded directly in the store.
func HandleAdminAdd(svc AllowlistManager, authz Authorizer, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		if _, ok := requireAdmin(w, r, authz, logger); !ok {
			return
		}

		req, ok := decodeEmailRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Add(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, codeInvalidEmail, "valid email required")
			case errors.Is(err, domain.ErrAdminAlreadyExists):
				writeError(w, http.StatusConflict, codeAdminExists, err.Error())
			default:
				writeStoreError(w, err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statusResponse{OK: true})
	}
}

// HandleAdminRemove removes an email from the allowlist. Removing an
// absent entry reports not found; the next request from that identity is
// denied by the gate with no further bookkeeping.
func HandleAdminRemove(svc AllowlistManager, authz Authorizer, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		if _, ok := requireAdmin(w, r, authz, logger); !ok {
			return
		}

		req, ok := decodeEmailRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, codeInvalidEmail, "valid email required")
			case errors.Is(err, domain.ErrAdminNotFound):
				writeError(w, http.StatusNotFound, codeAdminNotFound, err.Error())
			default:
				writeStoreError(w, err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(statusResponse{OK: true})
	}
}

// HandleAdminList returns the allowlist in lexicographic order. Gated:
// admin emails are not public.
func HandleAdminList(svc AllowlistManager, authz Authorizer, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		if _, ok := requireAdmin(w, r, authz, logger); !ok {
			return
		}

		admins, err := svc.List(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if admins == nil {
			admins = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(adminListResponse{Admins: admins})
	}
}

type emailRequest struct {
	Email string `json:"email"`
}

type adminListResponse struct {
	Admins []string `json:"admins"`
}

func decodeEmailRequest(w http.ResponseWriter, r *http.Request) (emailRequest, bool) {
	var req emailRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return emailRequest{}, false
	}
	return req, true
}
