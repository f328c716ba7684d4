package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ChicagoDave/buildingvalue/pkg/structure"
)

const maxRequestBodySize = 1 << 20

// Table is the structure table the server computes against.
// *structure.Table satisfies it.
type Table interface {
	Lookup(key structure.Type) (structure.Def, error)
	Defs() []structure.Def
}

// Server is the local JSON API over the valuation engine.
type Server struct {
	table   Table
	workers int
	log     *slog.Logger
}

// New creates a server. workers bounds concurrent scenario evaluation.
func New(table Table, workers int, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		table:   table,
		workers: workers,
		log:     log,
	}
}

// Handler returns the routed API with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/structures", s.handleStructures)
	mux.HandleFunc("GET /api/valuation", s.handleValuationQuery)
	mux.HandleFunc("POST /api/valuation", s.handleValuation)
	mux.HandleFunc("POST /api/scenarios", s.handleScenarios)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return s.logRequest(mux)
}

// Start listens on port until the server fails.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Server starting", "url", fmt.Sprintf("http://localhost%s", addr))
	return srv.ListenAndServe()
}
