// Package server exposes the badge pipeline over HTTP. The main route is
// GET /api?username=..., which streams back a finished SVG; failures come
// back as a rendered error card so embedding READMEs degrade gracefully
// instead of showing a broken image.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/statscard/statscard/pkg/card"
	scerrors "github.com/statscard/statscard/pkg/errors"
	"github.com/statscard/statscard/pkg/integrations"
	"github.com/statscard/statscard/pkg/integrations/github"
	"github.com/statscard/statscard/pkg/pipeline"
)

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server around the given runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))

	r.Get("/api", s.handleCard)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := parseOptions(q)
	opts.Logger = s.logger

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeErrorCard(w, err, opts.Card)
		return
	}

	w.Header().Set("Cache-Control",
		fmt.Sprintf("max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
			cacheSeconds(q)/2, cacheSeconds(q), maxCacheSeconds))
	w.Write(result.SVG)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// writeErrorCard renders the failure as an SVG with a short cache life.
// The HTTP status stays 200: badge proxies refuse to display error
// statuses, which would leave a broken image in the README.
func (s *Server) writeErrorCard(w http.ResponseWriter, err error, opts card.Options) {
	s.logger.Warn("card request failed", "error", err)
	w.Header().Set("Cache-Control", "no-store")

	message, code := describeError(err)
	w.Write([]byte(card.RenderError(message, code, opts)))
}

// describeError maps pipeline failures onto user-facing text and a
// machine-readable code for the error card.
func describeError(err error) (message, code string) {
	switch {
	case errors.Is(err, github.ErrUserNotFound):
		return "Could not find a user with the requested username", string(scerrors.ErrCodeUserNotFound)
	case errors.Is(err, integrations.ErrRateLimited):
		return "The GitHub API rate limit is exhausted, try again later", string(scerrors.ErrCodeRateLimited)
	case errors.Is(err, integrations.ErrNotFound):
		return "The requested resource was not found", string(scerrors.ErrCodeNotFound)
	case errors.Is(err, integrations.ErrNetwork):
		return "Could not reach the GitHub API", string(scerrors.ErrCodeNetwork)
	case scerrors.IsConfiguration(err):
		return scerrors.UserMessage(err), string(scerrors.ErrCodeCardEmpty)
	}
	if c := scerrors.GetCode(err); c != "" {
		return scerrors.UserMessage(err), string(c)
	}
	return scerrors.UserMessage(err), string(scerrors.ErrCodeInternal)
}
