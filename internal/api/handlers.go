package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
	"github.com/f4ah6o/hirelab-go/internal/store"
	"github.com/f4ah6o/hirelab-go/internal/validator"
)

// maxBodyBytes bounds request bodies; search params are small.
const maxBodyBytes = 64 << 10

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: "hirelab", Version: Version})
}

func (s *Server) HandleListSources(w http.ResponseWriter, r *http.Request) {
	list := s.compiler.Registry().List()
	infos := make([]SourceInfo, 0, len(list))
	for _, src := range list {
		infos = append(infos, SourceInfo{
			Key:                src.Key,
			Label:              src.Label,
			Site:               src.Site,
			Enabled:            src.Enabled,
			Engines:            src.Engines,
			SupportsQualifiers: src.SupportsQualifiers(),
		})
	}
	s.writeJSON(w, http.StatusOK, ListSourcesResponse{Sources: infos, Count: len(infos)})
}

func (s *Server) HandleCompile(w http.ResponseWriter, r *http.Request) {
	var req CompileRequest
	if !s.decode(w, r, &req) {
		return
	}

	engine, err := s.engine(req.Engine)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid engine", err.Error())
		return
	}

	resp, err := s.compile(req.Source, req.Params, engine)
	if err != nil {
		s.writeCompileError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var params query.Params
	if !s.decode(w, r, &params) {
		return
	}
	s.writeJSON(w, http.StatusOK, ValidateResponse{Errors: validator.Validate(params)})
}

func (s *Server) HandleListSearches(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	list, err := s.store.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to list searches", err.Error())
		return
	}
	if list == nil {
		list = []store.SavedSearch{}
	}
	s.writeJSON(w, http.StatusOK, ListSearchesResponse{Searches: list, Count: len(list)})
}

func (s *Server) HandleSaveSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req SaveSearchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if _, err := s.compiler.Registry().Lookup(req.Source); err != nil {
		s.writeCompileError(w, err)
		return
	}

	saved, err := s.store.Save(store.SavedSearch{
		ID:        req.ID,
		UserID:    req.UserID,
		SourceKey: req.Source,
		Title:     req.Title,
		Params:    req.Params,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Search not found", err.Error())
		return
	case err != nil:
		s.writeError(w, http.StatusBadRequest, "Failed to save search", err.Error())
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, saved)
}

func (s *Server) HandleGetSearch(w http.ResponseWriter, r *http.Request) {
	saved, ok := s.lookupSearch(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) HandleDeleteSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id := r.PathValue("id")
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Search not found", err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, "Failed to delete search", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSearchQuery recompiles a saved search. ?engine= overrides the default.
func (s *Server) HandleSearchQuery(w http.ResponseWriter, r *http.Request) {
	saved, ok := s.lookupSearch(w, r)
	if !ok {
		return
	}

	engine, err := s.engine(query.Engine(r.URL.Query().Get("engine")))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid engine", err.Error())
		return
	}

	resp, err := s.compile(saved.SourceKey, saved.Params, engine)
	if err != nil {
		s.writeCompileError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) compile(key sources.Key, p query.Params, engine query.Engine) (CompileResponse, error) {
	q, err := s.compiler.Compile(key, p, engine)
	if err != nil {
		return CompileResponse{}, err
	}
	report := s.validator.Check(key, p)
	return CompileResponse{
		BooleanQuery: q,
		Source:       key,
		Engine:       engine,
		Errors:       report.Errors,
		Warnings:     report.Warnings,
	}, nil
}

func (s *Server) engine(e query.Engine) (query.Engine, error) {
	if e == "" {
		return s.defaultEngine, nil
	}
	return query.ParseEngine(string(e))
}

func (s *Server) writeCompileError(w http.ResponseWriter, err error) {
	if errors.Is(err, sources.ErrUnknownSource) {
		s.writeError(w, http.StatusNotFound, "Source not found", err.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, "Failed to compile query", err.Error())
}

func (s *Server) lookupSearch(w http.ResponseWriter, r *http.Request) (store.SavedSearch, bool) {
	if !s.requireStore(w) {
		return store.SavedSearch{}, false
	}
	saved, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "Search not found", err.Error())
		} else {
			s.writeError(w, http.StatusBadRequest, "Invalid search id", err.Error())
		}
		return store.SavedSearch{}, false
	}
	return saved, true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "Store disabled", "saved searches are not configured")
		return false
	}
	return true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", fmt.Sprintf("failed to decode JSON: %v", err))
		return false
	}
	return true
}
