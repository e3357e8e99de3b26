// Package api serves the truth-table pipeline over HTTP.
//
//	GET  /api/health    liveness check
//	POST /api/evaluate  {"text": "..."} -> {"header": [...], "rows": [[...]]}
//	POST /api/dot       {"text": "..."} -> Graphviz DOT
//
// Formula errors are reported with status 422 as {"errors": ["line 1: ..."]}.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/bawdo/gotruth"
	"github.com/bawdo/gotruth/analysis"
	"github.com/bawdo/gotruth/visitors"
)

var log = logrus.WithField("component", "api")

// DefaultMaxVariables bounds the table size a single request can demand.
const DefaultMaxVariables = 16

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 64 << 10
)

// EvaluateRequest is the body of /api/evaluate and /api/dot.
type EvaluateRequest struct {
	Text string `json:"text"`
}

// Statement is the per-statement summary included with ?summary=true.
type Statement struct {
	Source     string `json:"source"`
	Column     int    `json:"column"`
	Satisfying int    `json:"satisfying"`
	Class      string `json:"class"`
}

// EvaluateResponse is a successful /api/evaluate result.
type EvaluateResponse struct {
	Header     []string    `json:"header"`
	Rows       [][]bool    `json:"rows"`
	Statements []Statement `json:"statements,omitempty"`
}

// ErrorsResponse lists formula errors.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Option configures a Server.
type Option func(*Server)

// WithMaxVariables sets the per-request variable limit.
func WithMaxVariables(n int) Option {
	return func(s *Server) {
		s.maxVariables = n
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.timeout = d
	}
}

// WithRequestLog enables chi's access log middleware.
func WithRequestLog() Option {
	return func(s *Server) {
		s.requestLog = true
	}
}

// Server is an http.Handler for the API. Requests share no state.
type Server struct {
	maxVariables int
	timeout      time.Duration
	requestLog   bool
	router       chi.Router
}

// New creates a Server with the given options applied.
func New(opts ...Option) *Server {
	s := &Server{maxVariables: DefaultMaxVariables, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	if s.requestLog {
		r.Use(middleware.Logger)
	}
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health())
		r.Post("/evaluate", s.evaluate())
		r.Post("/dot", s.dot())
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// readText decodes the request and reports a 400 on failure.
func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req EvaluateRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return "", false
	}
	return req.Text, true
}

// rejectFormula writes the messages of a pipeline error as a 422.
func rejectFormula(w http.ResponseWriter, r *http.Request, err error) {
	msgs := gotruth.Messages(err)
	log.WithField("errors", len(msgs)).Debug("Rejected formula.")
	writeJSON(w, r, http.StatusUnprocessableEntity, ErrorsResponse{Errors: msgs})
}

func (s *Server) evaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := boolFromQuery(r, "summary", false)
		if err != nil {
			writeJSON(w, r, http.StatusBadRequest, err)
			return
		}
		text, ok := s.readText(w, r)
		if !ok {
			return
		}

		table, prog, err := gotruth.Evaluate(text, gotruth.WithMaxVariables(s.maxVariables))
		if err != nil {
			rejectFormula(w, r, err)
			return
		}

		resp := EvaluateResponse{Header: table.Header, Rows: table.Rows}
		if summary {
			for _, st := range analysis.Classify(table, prog) {
				resp.Statements = append(resp.Statements, Statement{
					Source:     st.Source,
					Column:     st.Column,
					Satisfying: st.Satisfying,
					Class:      st.Class.String(),
				})
			}
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func (s *Server) dot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := s.readText(w, r)
		if !ok {
			return
		}
		prog, err := gotruth.Parse(text)
		if err != nil {
			rejectFormula(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(visitors.Dot(prog))); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
			log.WithError(err).Warn("Failed to write DOT response.")
		}
	}
}
