// Package server exposes the resolver over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/crates/{name}/biblatex?version=&branch=&filename=
//
// The biblatex route answers with a JSON array of {"origin", "biblatex"}
// objects in resolution order. filename may be repeated to override the
// candidate list. Every response carries an X-Request-ID header.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/jonaspleyer/crate2bib/pkg/biblatex"
	"github.com/jonaspleyer/crate2bib/pkg/buildinfo"
	"github.com/jonaspleyer/crate2bib/pkg/citation"
	cerrors "github.com/jonaspleyer/crate2bib/pkg/errors"
	"github.com/jonaspleyer/crate2bib/pkg/resolve"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 10 * time.Second

// Resolver resolves crates into citation entries. *resolve.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, req resolve.Request) ([]citation.Entry, error)
}

// Entry is one element of the biblatex response.
type Entry struct {
	Origin   citation.Origin `json:"origin"`
	BibLaTeX string          `json:"biblatex"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    cerrors.Code `json:"code"`
	Message string       `json:"message"`
}

// Server serves the HTTP API.
type Server struct {
	resolver  Resolver
	logger    *log.Logger
	filenames []string
	branch    string
}

// New creates a Server. filenames and branch are the defaults used when a
// request does not override them.
func New(resolver Resolver, logger *log.Logger, filenames []string, branch string) *Server {
	return &Server{resolver: resolver, logger: logger, filenames: filenames, branch: branch}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crates/{name}/biblatex", s.biblatex)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) biblatex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := resolve.Request{
		Crate:     chi.URLParam(r, "name"),
		Version:   q.Get("version"),
		Branch:    s.branch,
		Filenames: s.filenames,
	}
	if b := q.Get("branch"); b != "" {
		req.Branch = b
	}
	if files := q["filename"]; len(files) > 0 {
		req.Filenames = files
	}

	entries, err := s.resolver.Resolve(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Origin: e.Origin(), BibLaTeX: biblatex.Format(e)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := cerrors.GetCode(err)
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	msg := cerrors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", resolve.RequestID(r.Context()), "err", err)
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch {
	case cerrors.IsNotFound(err):
		return http.StatusNotFound
	case cerrors.IsInvalid(err):
		return http.StatusBadRequest
	case cerrors.IsNetwork(err), cerrors.Is(err, cerrors.ErrCodeParse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requestID reuses a well-formed incoming X-Request-ID or assigns a new
// UUID, echoes it in the response and stores it on the request context.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(resolve.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", resolve.RequestID(r.Context()),
		)
	})
}
