package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
	"github.com/MiguelPimienta19/mcc-web/internal/export"
)

func serveICS(w http.ResponseWriter, r *http.Request, events EventItemService, exporter Exporter, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	event, ok := lookupExportEvent(w, r, events, id)
	if !ok {
		return
	}

	payload, err := exporter.ICS(event)
	if err != nil {
		// A malformed stored rule is a server-side defect; never ship an
		// empty or truncated calendar file instead.
		if errors.Is(err, export.ErrMalformedRecurrenceRule) {
			writeError(w, http.StatusInternalServerError, codeEncodeFailed, err.Error())
			return
		}
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, export.Filename(event.Title)))
	_, _ = w.Write(payload)
}

func serveGoogleRedirect(w http.ResponseWriter, r *http.Request, events EventItemService, exporter Exporter, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	event, ok := lookupExportEvent(w, r, events, id)
	if !ok {
		return
	}

	http.Redirect(w, r, exporter.GoogleURL(event), http.StatusFound)
}

// lookupExportEvent fetches the event for export endpoints. An id that is
// not a UUID can't name an event, so it gets the same 404 as an absent row.
func lookupExportEvent(w http.ResponseWriter, r *http.Request, events EventItemService, id string) (domain.Event, bool) {
	event, err := events.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrInvalidID):
			writeError(w, http.StatusNotFound, codeEventNotFound, "event not found")
		default:
			writeStoreError(w, err)
		}
		return domain.Event{}, false
	}
	return event, true
}
