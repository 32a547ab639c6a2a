package history

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// DefaultFailureWindow is how far back /api/viewer/history/failures looks
// when no since parameter is given.
const DefaultFailureWindow = 24 * time.Hour

// RegisterRoutes mounts the history endpoints under /api/viewer/history.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/viewer/history", handleRecent(store))
	r.Get("/api/viewer/history/failures", handleFailures(store))
}

func handleRecent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		attempts, err := store.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if attempts == nil {
			attempts = []Attempt{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(attempts)
	}
}

// failureCounts is the body of the failures endpoint.
type failureCounts struct {
	Since  time.Time      `json:"since"`
	Counts map[string]int `json:"counts"`
}

// handleFailures counts failed loads per document. since is an RFC 3339
// time or a duration back from now ("1h").
func handleFailures(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since, err := parseSince(r.URL.Query().Get("since"), store.now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		counts, err := store.Failures(r.Context(), since)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(failureCounts{Since: since.UTC(), Counts: counts})
	}
}

func parseSince(v string, now time.Time) (time.Time, error) {
	if v == "" {
		return now.Add(-DefaultFailureWindow), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return time.Time{}, fmt.Errorf("invalid since %q: want an RFC 3339 time or a positive duration", v)
	}
	return now.Add(-d), nil
}
