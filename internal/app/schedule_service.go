package app

import (
	"context"
	"strings"
	"time"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewDay:
		return ViewDay, nil
	case ViewWeek:
		return ViewWeek, nil
	case ViewMonth:
		return ViewMonth, nil
	}
	return "", domain.ErrInvalidViewMode
}

// EventLister is the read side of the event store used by calendar views.
type EventLister interface {
	ListEventsBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error)
}

// ScheduleService computes the inclusive time window behind each calendar
// view and lists the events that overlap it. Reads only; safe to call
// concurrently.
type ScheduleService struct {
	repo      EventLister
	weekStart time.Weekday
}

// NewScheduleService builds the range query engine. weekStart is the single
// configured first day of the week; it never varies per call.
func NewScheduleService(repo EventLister, weekStart time.Weekday) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		weekStart: weekStart,
	}
}

// Window returns the inclusive [start, end] window for a view anchored at
// the given date, computed in the anchor's location. End is the last whole
// second of the window.
func (s *ScheduleService) Window(mode ViewMode, anchor time.Time) (time.Time, time.Time, error) {
	switch mode {
	case ViewDay:
		start := startOfDay(anchor)
		return start, start.AddDate(0, 0, 1).Add(-time.Second), nil
	case ViewWeek:
		offset := (int(anchor.Weekday()) - int(s.weekStart) + 7) % 7
		start := startOfDay(anchor).AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7).Add(-time.Second), nil
	case ViewMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
	}
	return time.Time{}, time.Time{}, domain.ErrInvalidViewMode
}

// ListWindow lists events overlapping the window of the given view,
// ascending by starts_at.
func (s *ScheduleService) ListWindow(ctx context.Context, mode ViewMode, anchor time.Time) ([]domain.Event, error) {
	start, end, err := s.Window(mode, anchor)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEventsBetween(ctx, start, end)
}

// ListRange lists events overlapping an explicit inclusive window.
func (s *ScheduleService) ListRange(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidTimeRange
	}
	return s.repo.ListEventsBetween(ctx, start, end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
