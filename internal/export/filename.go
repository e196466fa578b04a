package export

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

const fallbackFilename = "event"

// Filename derives a download filename (without extension) from an event
// title: non-alphanumeric runs collapse to a single hyphen, lower-cased.
// A title with nothing usable left falls back to "event".
func Filename(title string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackFilename
	}
	return s
}
