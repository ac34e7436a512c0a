package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyper-mcp/context7-plugin/cache"
)

// ClearCache removes every cached entry and reports how many were deleted.
// A missing cache directory is reported as "not enabled", not as an error.
func (s *Service) ClearCache(ctx context.Context) (*Result, error) {
	removed, err := s.store.Clear()
	if errors.Is(err, cache.ErrNotEnabled) {
		return TextResult("Cache is not enabled (directory not mounted)"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear cache after removing %d entries: %w", removed, err)
	}
	return TextResult(fmt.Sprintf("Cache cleared successfully (%d entries removed)", removed)), nil
}
