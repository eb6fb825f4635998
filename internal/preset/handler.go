package preset

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// List returns every stored preset keyed by name.
func List(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.All())
	}
}

// Get returns one preset or 404.
func Get(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		p, ok := store.Get(name)
		if !ok {
			http.Error(w, "preset not found: "+name, http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// Put creates or replaces a preset from a JSON body.
func Put(store *Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if name == "" {
			http.Error(w, "preset name required", http.StatusBadRequest)
			return
		}
		var p Settings
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "bad preset body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Upsert(name, p); err != nil {
			logger.Error().Err(err).Str("preset", name).Msg("save preset")
			http.Error(w, "failed to save preset", http.StatusInternalServerError)
			return
		}
		logger.Info().Str("preset", name).Msg("preset saved")
		writeJSON(w, http.StatusOK, map[string]string{"saved": name})
	}
}

// Delete removes a preset, 404 when it does not exist.
func Delete(store *Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		ok, err := store.Delete(name)
		if err != nil {
			logger.Error().Err(err).Str("preset", name).Msg("delete preset")
			http.Error(w, "failed to delete preset", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "preset not found: "+name, http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": name})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
