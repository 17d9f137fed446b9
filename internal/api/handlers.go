package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/checkout"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/logging"
	"github.com/whiteboardproductions/site/go/internal/state"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError maps domain errors onto status codes and records the failure
// on the request's wide event.
func writeError(w http.ResponseWriter, r *http.Request, err error, stage string) {
	logging.EnrichError(r.Context(), err, stage)

	switch {
	case errors.Is(err, state.ErrSessionNotFound):
		http.Error(w, "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrUnknownOption), errors.Is(err, wizard.ErrUnanswered):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, wizard.ErrComplete),
		errors.Is(err, wizard.ErrNotStarted),
		errors.Is(err, checkout.ErrNotAtSummary):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, catalog.ErrUnknownTier):
		http.Error(w, "Unknown plan", http.StatusBadRequest)
	default:
		http.Error(w, internalServerError, http.StatusInternalServerError)
	}
}

// clientIP prefers the first X-Forwarded-For hop, which is the browser when
// the service runs behind the site's edge.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func hintsFrom(r *http.Request, language, timeZone string) currency.Hints {
	if language == "" {
		language = r.Header.Get("Accept-Language")
	}
	if timeZone == "" {
		timeZone = r.URL.Query().Get("tz")
	}
	return currency.Hints{Language: language, TimeZone: timeZone}
}
