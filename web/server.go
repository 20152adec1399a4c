// Package web serves the read-only dashboard API: guild leaderboards,
// warning histories and the prisoner list, plus health and metrics
// endpoints.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noasueur88-blip/lounge-senpai-3/logging"
	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/utils/database"
)

// Server exposes bot data over HTTP. It never mutates anything.
type Server struct {
	store *database.Store
	addr  string
	http  *http.Server
}

func NewServer(store *database.Store, addr string) *Server {
	s := &Server{store: store, addr: addr}
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://localhost:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/guilds/{guildID}", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/warnings/{userID}", s.handleWarnings)
		r.Get("/prison", s.handlePrison)
	})
	return r
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.L().Infow("dashboard listening", "addr", s.addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	guildID := chi.URLParam(r, "guildID")

	var (
		rows []model.UserProgress
		err  error
	)
	if r.URL.Query().Get("by") == "money" {
		rows, err = s.store.GetMoneyLeaderboard(guildID, 25)
	} else {
		rows, err = s.store.GetXPLeaderboard(guildID, 25)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleWarnings(w http.ResponseWriter, r *http.Request) {
	warnings, err := s.store.GetWarnings(chi.URLParam(r, "guildID"), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, warnings)
}

func (s *Server) handlePrison(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListPrisoners(chi.URLParam(r, "guildID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.L().Warnw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	logging.L().Errorw("dashboard query failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
