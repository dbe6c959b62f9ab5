package handlers

import (
	nethttp "net/http"

	"football-schedule-service/internal/domain"
	"football-schedule-service/internal/logging"
	"football-schedule-service/internal/timeutil"
)

// Matches returns the merged match list for one calendar day. The default day
// is today in UTC; an explicit ?date=YYYY-MM-DD overrides it. The response is
// a bare JSON array so a source-less day serializes as [] rather than null.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}
	date := timeutil.ResolveDate(dateParam, h.now)

	matches := h.matches.Aggregate(r.Context(), domain.FixtureQuery{Date: date})
	if matches == nil {
		matches = []domain.Match{}
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served matches", logging.FieldDate, date, logging.FieldCount, len(matches))
	}
	writeJSON(w, nethttp.StatusOK, matches, h.logger)
}
