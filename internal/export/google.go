package export

import (
	"net/url"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

const googleRenderURL = "https://calendar.google.com/calendar/render"

// Compact UTC basic format, the only dates format the render endpoint
// accepts.
const googleTimeLayout = "20060102T150405Z"

// GoogleURL builds a calendar.google.com deep-link that pre-fills an event
// template. Both instants are converted to UTC regardless of how they were
// stored.
func (e *Encoder) GoogleURL(event domain.Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", event.Title)
	q.Set("details", event.Description)
	q.Set("location", event.Location)
	q.Set("dates", event.StartsAt.UTC().Format(googleTimeLayout)+"/"+event.EndsAt.UTC().Format(googleTimeLayout))
	return googleRenderURL + "?" + q.Encode()
}
