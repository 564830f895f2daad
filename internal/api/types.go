package api

import (
	"github.com/f4ah6o/hirelab-go/internal/query"
	"github.com/f4ah6o/hirelab-go/internal/sources"
	"github.com/f4ah6o/hirelab-go/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type SourceInfo struct {
	Key                sources.Key    `json:"key"`
	Label              string         `json:"label"`
	Site               string         `json:"site"`
	Enabled            bool           `json:"enabled"`
	Engines            []query.Engine `json:"engines"`
	SupportsQualifiers bool           `json:"supportsQualifiers"`
}

type ListSourcesResponse struct {
	Sources []SourceInfo `json:"sources"`
	Count   int          `json:"count"`
}

type CompileRequest struct {
	Source sources.Key  `json:"source"`
	Engine query.Engine `json:"engine,omitempty"`
	Params query.Params `json:"params"`
}

type CompileResponse struct {
	query.BooleanQuery
	Source   sources.Key  `json:"source"`
	Engine   query.Engine `json:"engine"`
	Errors   []string     `json:"errors"`
	Warnings []string     `json:"warnings"`
}

type ValidateResponse struct {
	Errors []string `json:"errors"`
}

type SaveSearchRequest struct {
	ID     string       `json:"id,omitempty"`
	UserID string       `json:"user_id,omitempty"`
	Source sources.Key  `json:"source"`
	Title  string       `json:"title"`
	Params query.Params `json:"params"`
}

type ListSearchesResponse struct {
	Searches []store.SavedSearch `json:"searches"`
	Count    int                 `json:"count"`
}
