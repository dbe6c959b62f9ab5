// Package http assembles the public HTTP surface of the service.
package http

import (
	nethttp "net/http"

	"football-schedule-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The /matches alias serves
// the same feed as /api/get-matches for clients that prefer shorter paths.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/get-matches", handler.Matches)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/api/analyze", handler.Analyze)
	return mux
}
