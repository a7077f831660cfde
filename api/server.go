// Package api provides the HTTP server for Newsly.
//
// It exposes endpoints for headline search, the chat assistant,
// headline insights, the HTML dashboard, and WebSocket chat streaming.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/newslyhq/newsly/internal/chat"
	"github.com/newslyhq/newsly/internal/config"
	"github.com/newslyhq/newsly/internal/insights"
	"github.com/newslyhq/newsly/internal/pipeline"
	"github.com/newslyhq/newsly/internal/report"
	"github.com/newslyhq/newsly/pkg/models"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	news     *pipeline.Service
	chat     *chat.Service
	sessions *chat.Store
	wsHub    *WSHub
	log      *slog.Logger
	version  string
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	news := pipeline.NewService(cfg.Feed, logger)

	srv := &Server{
		cfg:      cfg,
		news:     news,
		chat:     chat.NewService(news, cfg.Chat.MaxResults, logger),
		sessions: chat.NewStore(),
		wsHub:    NewWSHub(),
		log:      logger,
		version:  version,
	}

	srv.router = srv.buildRouter()
	go srv.wsHub.Run()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()
	s.log.Info("listening", "addr", addr)

	<-done
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/search", s.handleSearch)
		r.Post("/chat", s.handleChat)
		r.Post("/insights", s.handleInsights)

		r.Get("/config", s.handleGetConfig)
		r.Post("/config", s.handleUpdateConfig)

		r.Get("/ws/chat", s.handleChatWS)
	})

	r.Get("/dashboard", s.handleDashboard)

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SearchRequest is the body for POST /api/v1/search.
type SearchRequest struct {
	Keywords    []string `json:"keywords"`
	MaxArticles int      `json:"max_articles,omitempty"`
	SortBy      string   `json:"sort_by,omitempty"`
	ShowOnly    []string `json:"show_only,omitempty"`
}

// ChatRequest is the body for POST /api/v1/chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse is the reply payload for POST /api/v1/chat.
type ChatResponse struct {
	SessionID string       `json:"session_id"`
	Reply     chat.Message `json:"reply"`
}

// InsightsRequest is the body for POST /api/v1/insights.
type InsightsRequest struct {
	Keywords    []string `json:"keywords"`
	MaxArticles int      `json:"max_articles,omitempty"`
}

// InsightsResponse pairs the computed summary with the search it ran over.
type InsightsResponse struct {
	Summary  insights.Summary        `json:"summary"`
	Keywords []string                `json:"keywords"`
	Warnings []models.KeywordWarning `json:"warnings,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":     "ok",
			"version":    s.version,
			"time":       time.Now().UTC().Format(time.RFC3339),
			"ws_clients": s.wsHub.ClientCount(),
		},
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Keywords) == 0 {
		s.writeError(w, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	result, err := s.news.Search(r.Context(), req.Keywords, s.searchOptions(req))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.wsHub.Broadcast(WSMessage{Type: "search_completed", Data: map[string]interface{}{
		"keywords": result.Keywords,
		"articles": len(result.Articles),
	}})

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	reply := s.chat.Reply(r.Context(), sess, req.Message)

	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: ChatResponse{
		SessionID: sess.ID,
		Reply:     reply,
	}})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req InsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Keywords) == 0 {
		s.writeError(w, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	result, err := s.news.Search(r.Context(), req.Keywords, s.searchOptions(SearchRequest{
		MaxArticles: req.MaxArticles,
	}))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := insights.Summarize(result.Articles, s.cfg.Insights.TopKeywords)
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: InsightsResponse{
		Summary:  summary,
		Keywords: result.Keywords,
		Warnings: result.Warnings,
	}})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var keywords []string
	for _, part := range strings.Split(q.Get("q"), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	result := &models.SearchResult{Articles: []models.Article{}}
	if len(keywords) > 0 {
		opts := s.searchOptions(SearchRequest{SortBy: q.Get("sort")})
		var err error
		result, err = s.news.Search(r.Context(), keywords, opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	summary := insights.Summarize(result.Articles, s.cfg.Insights.TopKeywords)
	page, err := report.RenderHTML(*result, summary, report.DefaultDashboardConfig())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page)) //nolint:errcheck
}

// searchOptions resolves request parameters against the configured
// defaults and clamps them to the allowed ranges.
func (s *Server) searchOptions(req SearchRequest) models.SearchOptions {
	opts := models.SearchOptions{
		MaxArticles: s.cfg.Results.MaxArticles,
		SortBy:      models.SortBy(s.cfg.Results.SortBy),
	}
	for _, label := range s.cfg.Results.ShowOnly {
		opts.ShowOnly = append(opts.ShowOnly, models.Sentiment(label))
	}

	if req.MaxArticles > 0 {
		opts.MaxArticles = req.MaxArticles
	}
	if req.SortBy != "" {
		opts.SortBy = models.SortBy(req.SortBy)
	}
	if len(req.ShowOnly) > 0 {
		opts.ShowOnly = nil
		for _, label := range req.ShowOnly {
			opts.ShowOnly = append(opts.ShowOnly, models.Sentiment(label))
		}
	}

	return opts.Normalized()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to write JSON response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
