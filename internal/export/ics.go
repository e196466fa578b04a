package export

import (
	"errors"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/MiguelPimienta19/mcc-web/internal/clock"
	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

// ErrMalformedRecurrenceRule reports a stored RRULE that cannot be parsed.
// Export fails loudly instead of emitting a calendar file that drops the
// recurrence.
var ErrMalformedRecurrenceRule = errors.New("malformed recurrence rule")

// Encoder renders stored events as external calendar representations.
type Encoder struct {
	siteURL string
	clock   clock.Clock
}

// NewEncoder builds an encoder. siteURL is the public base used for the
// VEVENT URL property.
func NewEncoder(siteURL string, clk clock.Clock) *Encoder {
	return &Encoder{
		siteURL: strings.TrimRight(siteURL, "/"),
		clock:   clk,
	}
}

// ICS renders the event as an RFC5545 VCALENDAR with a single VEVENT.
// DTSTART and DTEND are always emitted as UTC instants with a Z suffix,
// whatever zone the server runs in: downstream calendar clients render
// timezones themselves, and mixing UTC for one field with local wall-clock
// components for the other shifts the entry by the server's UTC offset.
func (e *Encoder) ICS(event domain.Event) ([]byte, error) {
	if event.RecurrenceRule != "" {
		if _, err := rrule.StrToRRule(event.RecurrenceRule); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecurrenceRule, err)
		}
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//mcc-web//events//EN")

	ve := cal.AddEvent(event.ID)
	ve.SetDtStampTime(e.clock.Now().UTC())
	ve.SetStartAt(event.StartsAt.UTC())
	ve.SetEndAt(event.EndsAt.UTC())
	ve.SetSummary(event.Title)
	ve.SetDescription(event.Description)
	ve.SetLocation(event.Location)
	ve.SetStatus(ical.ObjectStatusConfirmed)
	ve.SetURL(fmt.Sprintf("%s/event/%s", e.siteURL, event.ID))
	if event.RecurrenceRule != "" {
		ve.AddRrule(event.RecurrenceRule)
	}

	return []byte(cal.Serialize()), nil
}
