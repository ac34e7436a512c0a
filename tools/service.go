// Package tools implements the plugin's operations: library resolution,
// documentation queries and cache administration. Each operation is
// cache-first: a fresh entry short-circuits the upstream call, anything else
// refetches, and only fully successful results are written back.
package tools

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/hyper-mcp/context7-plugin/cache"
	"github.com/hyper-mcp/context7-plugin/context7"
)

// Tool names as exposed over MCP.
const (
	ToolResolveLibraryID = "resolve_library_id"
	ToolQueryDocs        = "query_docs"
	ToolClearCache       = "clear_cache"
)

// Service executes tool operations against the Context7 API with a shared
// on-disk result cache.
type Service struct {
	client *context7.Client
	store  *cache.Store
	log    zerolog.Logger
}

func NewService(client *context7.Client, store *cache.Store, log zerolog.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// lookup consults the cache and reports whether out was populated with a
// fresh entry.
func (s *Service) lookup(tool, key string, out *Result) bool {
	status := s.store.Get(tool, key, out)
	s.log.Debug().Str("tool", tool).Stringer("cache", status).Msg("cache lookup")
	return status == cache.Hit
}

// storeResult caches a successful result. A disabled cache is a no-op; any
// real write failure is returned to fail the operation.
func (s *Service) storeResult(tool, key string, result *Result) error {
	err := s.store.Put(tool, key, result)
	if errors.Is(err, cache.ErrNotEnabled) {
		return nil
	}
	return err
}
