// Package api exposes the query engine over HTTP/JSON for the dashboard.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/f4ah6o/hirelab-go/internal/compiler"
	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/store"
	"github.com/f4ah6o/hirelab-go/internal/validator"
)

// Version is reported by /health.
const Version = "0.1.0"

// Server serves compile, validate, source and saved-search endpoints.
type Server struct {
	compiler      *compiler.Compiler
	validator     *validator.Validator
	store         *store.Store
	defaultEngine query.Engine
}

// NewServer creates a Server. st may be nil, in which case the saved-search
// endpoints answer 503.
func NewServer(c *compiler.Compiler, st *store.Store, defaultEngine query.Engine) *Server {
	return &Server{
		compiler:      c,
		validator:     validator.New(c.Registry()),
		store:         st,
		defaultEngine: defaultEngine,
	}
}

// Handler returns the routed handler with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.HandleHealth)
	mux.HandleFunc("GET /sources", s.HandleListSources)
	mux.HandleFunc("POST /compile", s.HandleCompile)
	mux.HandleFunc("POST /validate", s.HandleValidate)
	mux.HandleFunc("GET /searches", s.HandleListSearches)
	mux.HandleFunc("POST /searches", s.HandleSaveSearch)
	mux.HandleFunc("GET /searches/{id}", s.HandleGetSearch)
	mux.HandleFunc("DELETE /searches/{id}", s.HandleDeleteSearch)
	mux.HandleFunc("GET /searches/{id}/query", s.HandleSearchQuery)
	return LoggingMiddleware(CorsMiddleware(mux))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: error, Message: message})
}

// CorsMiddleware allows the browser dashboard to call the API.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs method, path and duration of each request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}
