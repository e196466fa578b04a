package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MiguelPimienta19/mcc-web/internal/clock"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

func testEvent() domain.Event {
	return domain.Event{
		ID:          "5b9bff05-3e6e-4bfe-9619-4a4c4b7d52d1",
		Title:       "Community Potluck",
		Description: "Bring a dish to share",
		Location:    "Main Hall",
		StartsAt:    time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC),
	}
}

func newTestEncoder() *Encoder {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewEncoder("https://mcc.example.org/", clock.NewFixed(stamp))
}

func TestEncoderICS(t *testing.T) {
	t.Parallel()

	data, err := newTestEncoder().ICS(testEvent())
	if err != nil {
		t.Fatalf("ics: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:5b9bff05-3e6e-4bfe-9619-4a4c4b7d52d1",
		"DTSTART:20240315T180000Z",
		"DTEND:20240315T200000Z",
		"SUMMARY:Community Potluck",
		"LOCATION:Main Hall",
		"STATUS:CONFIRMED",
		"URL:https://mcc.example.org/event/5b9bff05-3e6e-4bfe-9619-4a4c4b7d52d1",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestEncoderICS_NonUTCInstantsEmittedAsUTC(t *testing.T) {
	t.Parallel()

	// Stored in a fixed -05:00 zone; the wire format must still be the
	// equivalent UTC instant with a Z suffix.
	zone := time.FixedZone("UTC-5", -5*60*60)
	event := testEvent()
	event.StartsAt = time.Date(2024, 3, 15, 13, 0, 0, 0, zone)
	event.EndsAt = time.Date(2024, 3, 15, 15, 0, 0, 0, zone)

	data, err := newTestEncoder().ICS(event)
	if err != nil {
		t.Fatalf("ics: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "DTSTART:20240315T180000Z") {
		t.Fatalf("expected UTC DTSTART:\n%s", out)
	}
	if !strings.Contains(out, "DTEND:20240315T200000Z") {
		t.Fatalf("expected UTC DTEND:\n%s", out)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse serialized calendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected one VEVENT, got %d", len(events))
	}
	start, err := events[0].GetStartAt()
	if err != nil {
		t.Fatalf("get start: %v", err)
	}
	if !start.Equal(event.StartsAt) {
		t.Fatalf("round-trip start %v != %v", start, event.StartsAt)
	}
}

func TestEncoderICS_RecurrenceRule(t *testing.T) {
	t.Parallel()

	event := testEvent()
	event.RecurrenceRule = "FREQ=WEEKLY;BYDAY=FR"

	data, err := newTestEncoder().ICS(event)
	if err != nil {
		t.Fatalf("ics: %v", err)
	}
	if !strings.Contains(string(data), "RRULE:FREQ=WEEKLY;BYDAY=FR") {
		t.Fatalf("expected RRULE line:\n%s", data)
	}
}

func TestEncoderICS_MalformedRecurrenceRule(t *testing.T) {
	t.Parallel()

	event := testEvent()
	event.RecurrenceRule = "FREQ=SOMETIMES"

	_, err := newTestEncoder().ICS(event)
	if !errors.Is(err, ErrMalformedRecurrenceRule) {
		t.Fatalf("expected ErrMalformedRecurrenceRule, got %v", err)
	}
}
