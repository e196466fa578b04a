package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/MiguelPimienta19/mcc-web/internal/app"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// ScheduleService is the read side backing calendar views.
type ScheduleService interface {
	ListWindow(ctx context.Context, mode app.ViewMode, anchor time.Time) ([]domain.Event, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.Event, error)
}

// EventCreator is the minimal interface needed to create an event.
type EventCreator interface {
	Create(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
}

// HandleEvents serves the events collection: windowed listing and creation.
// When openCreation is false, POST requires the authorization gate like
// every other mutation.
func HandleEvents(schedule ScheduleService, events EventCreator, authz Authorizer, openCreation bool, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listEvents(w, r, schedule)
		case http.MethodPost:
			createEvent(w, r, events, authz, openCreation, logger)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func listEvents(w http.ResponseWriter, r *http.Request, schedule ScheduleService) {
	q := r.URL.Query()

	var (
		events []domain.Event
		err    error
	)
	if view := q.Get("view"); view != "" {
		mode, perr := app.ParseViewMode(view)
		if perr != nil {
			writeError(w, http.StatusBadRequest, codeInvalidViewMode, perr.Error())
			return
		}
		anchor, perr := parseAnchor(q.Get("anchor"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid anchor")
			return
		}
		events, err = schedule.ListWindow(r.Context(), mode, anchor)
	} else {
		startRaw, endRaw := q.Get("start"), q.Get("end")
		if startRaw == "" || endRaw == "" {
			writeError(w, http.StatusBadRequest, codeWindowRequired, "start and end (or view and anchor) are required")
			return
		}
		var start, end time.Time
		if start, err = time.Parse(time.RFC3339, startRaw); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid start")
			return
		}
		if end, err = time.Parse(time.RFC3339, endRaw); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid end")
			return
		}
		events, err = schedule.ListRange(r.Context(), start, end)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			writeError(w, http.StatusBadRequest, codeInvalidTimeRange, err.Error())
			return
		}
		writeStoreError(w, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toEventResponse(event))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// parseAnchor accepts a bare date or a full RFC3339 timestamp; an empty
// anchor means "today".
func parseAnchor(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func createEvent(w http.ResponseWriter, r *http.Request, events EventCreator, authz Authorizer, openCreation bool, logger *log.Logger) {
	var createdBy string
	if !openCreation {
		decision, ok := requireAdmin(w, r, authz, logger)
		if !ok {
			return
		}
		createdBy = decision.Email
	} else if claimed := r.Header.Get(AdminEmailHeader); claimed != "" {
		// Creation is open, but a recognized admin still gets attributed.
		decision, err := authz.Authorize(r.Context(), claimed)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if decision.Allowed {
			createdBy = decision.Email
		}
	}

	var req createEventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	in := app.CreateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		RecurrenceRule: req.RecurrenceRule,
		CreatedBy:      createdBy,
	}
	if req.StartsAt != "" {
		t, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid starts_at format")
			return
		}
		in.StartsAt = t
	}
	if req.EndsAt != "" {
		t, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid ends_at format")
			return
		}
		in.EndsAt = t
	}

	event, err := events.Create(r.Context(), in)
	if err != nil {
		if writeEventValidationError(w, err) {
			return
		}
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toEventResponse(event))
}

type createEventRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	StartsAt       string `json:"starts_at"`
	EndsAt         string `json:"ends_at"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type eventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	RecurrenceRule string    `json:"recurrence_rule,omitempty"`
	CreatedBy      string    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toEventResponse(event domain.Event) eventResponse {
	return eventResponse{
		ID:             event.ID,
		Title:          event.Title,
		Description:    event.Description,
		Location:       event.Location,
		StartsAt:       event.StartsAt,
		EndsAt:         event.EndsAt,
		RecurrenceRule: event.RecurrenceRule,
		CreatedBy:      event.CreatedBy,
		CreatedAt:      event.CreatedAt,
	}
}
