// Package api — configuration endpoints.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/newslyhq/newsly/internal/config"
)

// configMu serialises updates to the running config.
var configMu sync.Mutex

// handleGetConfig returns the current (running) configuration.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.cfg,
	})
}

// handleUpdateConfig merges the provided partial configuration into the
// running config and returns it. Changes apply to new requests only and
// are not persisted to disk.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var incoming config.Config
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	configMu.Lock()
	mergeConfig(s.cfg, &incoming)
	configMu.Unlock()

	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.cfg,
	})
}

// mergeConfig copies non-zero/non-empty values from src into dst.
// The feed endpoint and listen address are deliberately not updatable
// at runtime.
func mergeConfig(dst, src *config.Config) {
	if src.Results.MaxArticles != 0 {
		dst.Results.MaxArticles = src.Results.MaxArticles
	}
	if src.Results.SortBy != "" {
		dst.Results.SortBy = src.Results.SortBy
	}
	if len(src.Results.ShowOnly) > 0 {
		dst.Results.ShowOnly = src.Results.ShowOnly
	}

	if src.Insights.TopKeywords != 0 {
		dst.Insights.TopKeywords = src.Insights.TopKeywords
	}

	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
}
