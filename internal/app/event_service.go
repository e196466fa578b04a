package app

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MiguelPimienta19/mcc-web/internal/clock"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

type EventRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateEvent(ctx context.Context, event domain.Event) error
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	GetEventForUpdate(ctx context.Context, id string) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type EventService struct {
	repo  EventRepository
	clock clock.Clock
}

func NewEventService(repo EventRepository, clk clock.Clock) *EventService {
	return &EventService{
		repo:  repo,
		clock: clk,
	}
}

type CreateEventInput struct {
	Title          string
	Description    string
	Location       string
	StartsAt       time.Time
	EndsAt         time.Time
	RecurrenceRule string
	// CreatedBy is the normalized identity of an authenticated creator,
	// empty for anonymous creation.
	CreatedBy string
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		return domain.Event{}, domain.ErrTimesRequired
	}

	event := domain.Event{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		StartsAt:       in.StartsAt,
		EndsAt:         in.EndsAt,
		RecurrenceRule: in.RecurrenceRule,
		CreatedBy:      in.CreatedBy,
		CreatedAt:      s.clock.Now(),
	}

	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrInvalidID
	}
	return s.repo.GetEvent(ctx, id)
}

// UpdateEventInput enumerates the mutable fields. Nil means "leave as is";
// anything outside this set is rejected at the transport layer.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
}

func (in UpdateEventInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.Location == nil &&
		in.StartsAt == nil && in.EndsAt == nil
}

// Update applies a partial patch inside a transaction so the merged record
// is validated against the row as it exists at write time, not at read time.
func (s *EventService) Update(ctx context.Context, id string, in UpdateEventInput) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrInvalidID
	}
	if in.empty() {
		return domain.Event{}, domain.ErrNoFieldsToUpdate
	}

	var updated domain.Event
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetEventForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if in.Title != nil {
			current.Title = *in.Title
		}
		if in.Description != nil {
			current.Description = *in.Description
		}
		if in.Location != nil {
			current.Location = *in.Location
		}
		if in.StartsAt != nil {
			current.StartsAt = *in.StartsAt
		}
		if in.EndsAt != nil {
			current.EndsAt = *in.EndsAt
		}

		if err := validateEvent(current); err != nil {
			return err
		}
		if err := s.repo.UpdateEvent(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	return updated, nil
}

// Delete removes the event permanently. Deleting an already-deleted id
// reports ErrEventNotFound; callers treat that as a normal outcome.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteEvent(ctx, id)
}

func validateEvent(e domain.Event) error {
	if e.Title == "" {
		return domain.ErrTitleRequired
	}
	if utf8.RuneCountInString(e.Title) > domain.MaxTitleLen {
		return domain.ErrTitleTooLong
	}
	if utf8.RuneCountInString(e.Description) > domain.MaxDescriptionLen {
		return domain.ErrDescriptionTooLong
	}
	if utf8.RuneCountInString(e.Location) > domain.MaxLocationLen {
		return domain.ErrLocationTooLong
	}
	if !e.EndsAt.After(e.StartsAt) {
		return domain.ErrInvalidTimeRange
	}
	return nil
}
