// Package server exposes a maze session over HTTP.
//
// The server owns exactly one [session.Session] at a time and serializes
// every request against it. Commands map one-to-one onto session commands;
// a command the current mode does not allow answers 409 Conflict.
//
// # Routes
//
//	GET  /healthz
//	GET  /maze                  stats, cell states and the current path
//	GET  /maze/text             plain-text drawing
//	GET  /maze/dot              Graphviz source
//	GET  /maze/svg              Graphviz drawing
//	GET  /maze/export           maze document (see package io)
//	POST /maze/heatmap?from=    switch the heat map (origin, destination, off)
//	                            and return the labelled distances
//	POST /maze/reset            replace the session with a fresh seed
//	POST /maze/step?n=          advance up to n steps (default 1)
//	POST /maze/skip             run the current animation to completion
//	POST /maze/search/{kind}    start a dfs or bfs search
//	POST /maze/manual           enter manual mode
//	POST /maze/move/{dir}       move the manual token
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mazewalk/pkg/buildinfo"
	"github.com/matzehuels/mazewalk/pkg/cache"
	"github.com/matzehuels/mazewalk/pkg/config"
	"github.com/matzehuels/mazewalk/pkg/errors"
	mazeio "github.com/matzehuels/mazewalk/pkg/io"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render/dot"
	"github.com/matzehuels/mazewalk/pkg/render/text"
	"github.com/matzehuels/mazewalk/pkg/session"
)

// maxStepsPerRequest caps the n parameter of POST /maze/step.
const maxStepsPerRequest = 10000

// svgCacheEntries bounds the number of rendered drawings kept in memory.
const svgCacheEntries = 64

// Server serves one maze session.
type Server struct {
	mu     sync.Mutex
	sess   *session.Session
	logger *log.Logger
	router chi.Router
	svgs   cache.Cache
}

// New returns a server for sess. A nil logger uses log.Default().
func New(sess *session.Session, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{sess: sess, logger: logger, svgs: cache.NewMemoryCache(svgCacheEntries)}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Session returns the current session.
func (s *Server) Session() *session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/maze", func(r chi.Router) {
		r.Get("/", s.handleState)
		r.Get("/text", s.handleText)
		r.Get("/dot", s.handleDOT)
		r.Get("/svg", s.handleSVG)
		r.Get("/export", s.handleExport)
		r.Post("/heatmap", s.handleHeatMap)
		r.Post("/reset", s.handleReset)
		r.Post("/step", s.handleStep)
		r.Post("/skip", s.handleSkip)
		r.Post("/search/{kind}", s.handleSearch)
		r.Post("/manual", s.handleManual)
		r.Post("/move/{dir}", s.handleMove)
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully and drops the rendered drawings.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	defer s.svgs.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Responses
// =============================================================================

type stateResponse struct {
	session.Stats
	Cells []maze.CellState `json:"cells"`
	Path  []maze.Pos       `json:"path"`
}

type commandResponse struct {
	OK    bool          `json:"ok"`
	Stats session.Stats `json:"stats"`
}

type moveResponse struct {
	Moved bool          `json:"moved"`
	Pos   maze.Pos      `json:"pos"`
	Stats session.Stats `json:"stats"`
}

type stepResponse struct {
	Advanced int           `json:"advanced"`
	Stats    session.Stats `json:"stats"`
}

type heatResponse struct {
	From      string  `json:"from"`
	Bound     int     `json:"bound"`
	Distances [][]int `json:"distances"`
}

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), errorResponse{Error: code, Message: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInvalidState):
		return http.StatusConflict
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// command runs fn under the lock and answers 409 when it reports false.
func (s *Server) command(w http.ResponseWriter, name string, fn func(*session.Session) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn(s.sess) {
		writeError(w, errors.New(errors.ErrCodeInvalidState, "%s not allowed while %s", name, s.sess.Mode()))
		return
	}
	writeJSON(w, http.StatusOK, commandResponse{OK: true, Stats: s.sess.Stats()})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, stateResponse{
		Stats: s.sess.Stats(),
		Cells: maze.Snapshot(s.sess.Grid()),
		Path:  s.sess.Path(),
	})
}

func (s *Server) handleText(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	_, bound := s.sess.Heat()
	out := text.Render(s.sess.Grid(), text.Options{CellWidth: 2, HeatBound: bound})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) dotSource() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, bound := s.sess.Heat()
	return dot.ToDOT(s.sess.Grid(), dot.Options{HeatBound: bound})
}

func (s *Server) handleDOT(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(s.dotSource()))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := dot.CachedSVG(r.Context(), s.svgs, s.dotSource())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleHeatMap(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		from = "origin"
	}
	src, err := session.ParseHeatSource(from)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bound := s.sess.HeatMap(src)
	g := s.sess.Grid()
	dist := make([][]int, g.Height())
	for row := range dist {
		dist[row] = make([]int, g.Width())
		for col := range dist[row] {
			dist[row][col] = g.State(maze.Pos{Col: col, Row: row}).Distance
		}
	}
	writeJSON(w, http.StatusOK, heatResponse{From: src.String(), Bound: bound, Distances: dist})
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, mazeio.FromSession(s.sess, false))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.sess.Reset()
	if err != nil {
		writeError(w, err)
		return
	}
	s.sess = next
	writeJSON(w, http.StatusOK, commandResponse{OK: true, Stats: s.sess.Stats()})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	n := 1
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > maxStepsPerRequest {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "n must be an integer in 1..%d", maxStepsPerRequest))
			return
		}
		n = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	advanced := 0
	for advanced < n && s.sess.Step() {
		advanced++
	}
	writeJSON(w, http.StatusOK, stepResponse{Advanced: advanced, Stats: s.sess.Stats()})
}

func (s *Server) handleSkip(w http.ResponseWriter, _ *http.Request) {
	s.command(w, "skip", (*session.Session).Skip)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	switch kind := chi.URLParam(r, "kind"); kind {
	case "dfs", "depth-first":
		s.command(w, "depth-first search", (*session.Session).StartDepthFirst)
	case "bfs", "breadth-first":
		s.command(w, "breadth-first search", (*session.Session).StartBreadthFirst)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown search %q (want dfs or bfs)", kind))
	}
}

func (s *Server) handleManual(w http.ResponseWriter, _ *http.Request) {
	s.command(w, "manual mode", (*session.Session).StartManual)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	d, err := maze.ParseDirection(chi.URLParam(r, "dir"))
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.Mode() != session.Manual {
		writeError(w, errors.New(errors.ErrCodeInvalidState, "move not allowed while %s", s.sess.Mode()))
		return
	}
	pos, moved := s.sess.Move(d)
	writeJSON(w, http.StatusOK, moveResponse{Moved: moved, Pos: pos, Stats: s.sess.Stats()})
}
