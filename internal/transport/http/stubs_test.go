package http

import (
	"context"
	"fmt"
	"time"

	"github.com/MiguelPimienta19/mcc-web/internal/app"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// stubAuthorizer replays a canned gate decision; when admins is set it
// behaves like the real gate over an in-memory allowlist.
type stubAuthorizer struct {
	admins map[string]bool
	err    error
}

func allowAll() *stubAuthorizer {
	return &stubAuthorizer{admins: nil}
}

func allowOnly(emails ...string) *stubAuthorizer {
	s := &stubAuthorizer{admins: make(map[string]bool)}
	for _, e := range emails {
		s.admins[e] = true
	}
	return s
}

func (s *stubAuthorizer) Authorize(_ context.Context, claimedEmail string) (app.Decision, error) {
	if s.err != nil {
		return app.Decision{}, s.err
	}
	email := domain.NormalizeEmail(claimedEmail)
	if !domain.ValidEmail(email) {
		return app.Decision{Reason: app.DenyInvalidIdentity}, nil
	}
	if s.admins != nil && !s.admins[email] {
		return app.Decision{Reason: app.DenyNotAllowlisted}, nil
	}
	return app.Decision{Allowed: true, Email: email}, nil
}

type stubSchedule struct {
	events []domain.Event
	err    error

	gotMode   app.ViewMode
	gotAnchor time.Time
	gotStart  time.Time
	gotEnd    time.Time
}

func (s *stubSchedule) ListWindow(_ context.Context, mode app.ViewMode, anchor time.Time) ([]domain.Event, error) {
	s.gotMode, s.gotAnchor = mode, anchor
	return s.events, s.err
}

func (s *stubSchedule) ListRange(_ context.Context, start, end time.Time) ([]domain.Event, error) {
	s.gotStart, s.gotEnd = start, end
	if s.err != nil {
		return nil, s.err
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidTimeRange
	}
	return s.events, nil
}

// stubEventService backs both the collection and the item handlers.
type stubEventService struct {
	event domain.Event

	createErr error
	getErr    error
	updateErr error
	deleteErr error

	gotCreate app.CreateEventInput
	gotUpdate app.UpdateEventInput
	gotID     string
}

func (s *stubEventService) Create(_ context.Context, in app.CreateEventInput) (domain.Event, error) {
	s.gotCreate = in
	if s.createErr != nil {
		return domain.Event{}, s.createErr
	}
	event := s.event
	event.Title = in.Title
	event.CreatedBy = in.CreatedBy
	return event, nil
}

func (s *stubEventService) Get(_ context.Context, id string) (domain.Event, error) {
	s.gotID = id
	if s.getErr != nil {
		return domain.Event{}, s.getErr
	}
	return s.event, nil
}

func (s *stubEventService) Update(_ context.Context, id string, in app.UpdateEventInput) (domain.Event, error) {
	s.gotID, s.gotUpdate = id, in
	if s.updateErr != nil {
		return domain.Event{}, s.updateErr
	}
	event := s.event
	if in.Title != nil {
		event.Title = *in.Title
	}
	return event, nil
}

func (s *stubEventService) Delete(_ context.Context, id string) error {
	s.gotID = id
	return s.deleteErr
}

type stubExporter struct {
	icsErr error
}

func (s *stubExporter) ICS(event domain.Event) ([]byte, error) {
	if s.icsErr != nil {
		return nil, s.icsErr
	}
	return []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil
}

func (s *stubExporter) GoogleURL(event domain.Event) string {
	return fmt.Sprintf("https://calendar.google.com/calendar/render?action=TEMPLATE&text=%s", event.ID)
}

type stubAllowlistManager struct {
	admins    []string
	addErr    error
	removeErr error
	listErr   error

	gotEmail string
}

func (s *stubAllowlistManager) Add(_ context.Context, email string) error {
	s.gotEmail = email
	return s.addErr
}

func (s *stubAllowlistManager) Remove(_ context.Context, email string) error {
	s.gotEmail = email
	return s.removeErr
}

func (s *stubAllowlistManager) List(_ context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.admins, nil
}

func sampleEvent() domain.Event {
	return domain.Event{
		ID:        "5b9bff05-3e6e-4bfe-9619-4a4c4b7d52d1",
		Title:     "Community Potluck",
		StartsAt:  time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
