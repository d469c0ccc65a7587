package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gitowl/gitowl/internal/pipeline"
)

// Runner executes one pipeline invocation.
type Runner interface {
	Run(ctx context.Context) pipeline.Outcome
}

// Server exposes the pipeline as a one-shot HTTP trigger.
type Server struct {
	runner Runner
	addr   string
}

func New(addr string, runner Runner) *Server {
	return &Server{runner: runner, addr: addr}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) Start() error {
	log.Printf("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// handleRun runs one invocation and writes its outcome. Exactly one
// response per request, whatever the pipeline did.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	outcome := s.runner.Run(r.Context())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(outcome.Status)
	w.Write([]byte(outcome.Body))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
