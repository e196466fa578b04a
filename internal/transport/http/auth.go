package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/MiguelPimienta19/mcc-web/internal/app"
)

// AdminEmailHeader carries the caller's claimed identity. Cookie or session
// plumbing stays client-side; the gate only ever sees this explicit value.
const AdminEmailHeader = "X-Admin-Email"

// Authorizer is the gate consulted before every privileged operation.
type Authorizer interface {
	Authorize(ctx context.Context, claimedEmail string) (app.Decision, error)
}

// requireAdmin runs the authorization gate for the request and writes the
// response on failure. Denials get one generic body regardless of reason so
// the endpoint can't be used to probe the allowlist; the reason is logged
// for audit.
func requireAdmin(w http.ResponseWriter, r *http.Request, authz Authorizer, logger *log.Logger) (app.Decision, bool) {
	decision, err := authz.Authorize(r.Context(), r.Header.Get(AdminEmailHeader))
	if err != nil {
		writeStoreError(w, err)
		return app.Decision{}, false
	}
	if !decision.Allowed {
		if logger != nil {
			logger.Printf("authorization denied method=%s path=%s reason=%s", r.Method, r.URL.Path, decision.Reason)
		}
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
		return app.Decision{}, false
	}
	return decision, true
}

// HandleAuthCheck reports whether a claimed email is currently an admin.
// The allowlist is read on every call; nothing is cached. A store failure
// is surfaced as an error, never as isAdmin=false.
func HandleAuthCheck(authz Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req authCheckRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		decision, err := authz.Authorize(r.Context(), req.Email)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(authCheckResponse{
			IsAdmin: decision.Allowed,
			Email:   decision.Email,
		})
	}
}

type authCheckRequest struct {
	Email string `json:"email"`
}

type authCheckResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Email   string `json:"email,omitempty"`
}
