package tools

import (
	"context"
	"errors"

	"github.com/hyper-mcp/context7-plugin/cache"
)

// ResolveArgs are the arguments for the resolve_library_id tool.
type ResolveArgs struct {
	LibraryName string `json:"libraryName"`
	Query       string `json:"query"`
}

// ResolveLibraryID searches Context7 for libraries matching the given name
// and returns the candidates: the raw response body as text plus the parsed
// listing as structured content.
func (s *Service) ResolveLibraryID(ctx context.Context, args ResolveArgs) (*Result, error) {
	if args.LibraryName == "" {
		return nil, errors.New("libraryName is required")
	}

	key, err := cache.Key(ToolResolveLibraryID, args)
	if err != nil {
		return nil, err
	}
	var cached Result
	if s.lookup(ToolResolveLibraryID, key, &cached) {
		return &cached, nil
	}

	body, parsed, err := s.client.SearchLibraries(ctx, args.LibraryName, args.Query)
	if err != nil {
		return nil, err
	}
	structured, err := structuredObject(parsed)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Content:           []Content{{Type: "text", Text: string(body)}},
		StructuredContent: structured,
	}
	if err := s.storeResult(ToolResolveLibraryID, key, result); err != nil {
		return nil, err
	}
	return result, nil
}
