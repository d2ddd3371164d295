// Package handler provides HTTP handlers for the ClimaSphere API.
package handler

import (
	"net/http"
	"strconv"
	"time"
)

// dateLayout is the only accepted date format on the wire.
const dateLayout = "2006-01-02"

// parseDate parses the date query parameter strictly as YYYY-MM-DD.
func parseDate(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// parseFloat parses a float query parameter, falling back to def when the
// parameter is missing. A present but malformed value fails.
func parseFloat(r *http.Request, name string, def float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
