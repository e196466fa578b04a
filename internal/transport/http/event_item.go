package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MiguelPimienta19/mcc-web/internal/app"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// EventItemService covers single-event reads and admin-only mutations.
type EventItemService interface {
	Get(ctx context.Context, id string) (domain.Event, error)
	Update(ctx context.Context, id string, in app.UpdateEventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// Exporter renders an event for external calendars.
type Exporter interface {
	ICS(event domain.Event) ([]byte, error)
	GoogleURL(event domain.Event) string
}

// HandleEventByID routes /events/{id}, /events/{id}/ics and
// /events/{id}/google.
func HandleEventByID(events EventItemService, exporter Exporter, authz Authorizer, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, sub, ok := parseEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch sub {
		case "":
			switch r.Method {
			case http.MethodPut:
				updateEvent(w, r, events, authz, logger, id)
			case http.MethodDelete:
				deleteEvent(w, r, events, authz, logger, id)
			default:
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			}
		case "ics":
			serveICS(w, r, events, exporter, id)
		case "google":
			serveGoogleRedirect(w, r, events, exporter, id)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func parseEventPath(path string) (id, sub string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "events" || parts[1] == "" {
		return "", "", false
	}
	if len(parts) == 3 {
		return parts[1], parts[2], true
	}
	return parts[1], "", true
}

func updateEvent(w http.ResponseWriter, r *http.Request, events EventItemService, authz Authorizer, logger *log.Logger, id string) {
	if _, ok := requireAdmin(w, r, authz, logger); !ok {
		return
	}

	// Unknown fields are rejected: the patch enumerates the mutable set
	// and nothing else reaches storage.
	var req updateEventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	in := app.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.StartsAt != nil {
		t, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid starts_at format")
			return
		}
		in.StartsAt = &t
	}
	if req.EndsAt != nil {
		t, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid ends_at format")
			return
		}
		in.EndsAt = &t
	}

	event, err := events.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case writeEventValidationError(w, err):
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			writeError(w, http.StatusBadRequest, codeNoFieldsToUpdate, err.Error())
		case errors.Is(err, domain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
		case errors.Is(err, domain.ErrEventNotFound):
			writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
		default:
			writeStoreError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toEventResponse(event))
}

func deleteEvent(w http.ResponseWriter, r *http.Request, events EventItemService, authz Authorizer, logger *log.Logger, id string) {
	if _, ok := requireAdmin(w, r, authz, logger); !ok {
		return
	}

	if err := events.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
		case errors.Is(err, domain.ErrEventNotFound):
			// Deletion is permanent, so a second delete lands here.
			writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
		default:
			writeStoreError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statusResponse{OK: true})
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartsAt    *string `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
}

type statusResponse struct {
	OK bool `json:"ok"`
}
