package tools

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hyper-mcp/context7-plugin/cache"
	"github.com/hyper-mcp/context7-plugin/context7"
)

// QueryArgs are the arguments for the query_docs tool.
type QueryArgs struct {
	LibraryID string `json:"libraryId"`
	Query     string `json:"query"`
}

// QueryDocs fetches the text and structured renderings of one documentation
// query concurrently and merges them into a single result. Both fetches must
// succeed; if either fails the operation fails and nothing is cached, so a
// cached entry always carries both halves.
func (s *Service) QueryDocs(ctx context.Context, args QueryArgs) (*Result, error) {
	if args.LibraryID == "" {
		return nil, errors.New("libraryId is required")
	}

	key, err := cache.Key(ToolQueryDocs, args)
	if err != nil {
		return nil, err
	}
	var cached Result
	if s.lookup(ToolQueryDocs, key, &cached) {
		return &cached, nil
	}

	var (
		text string
		docs *context7.DocsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.client.DocsText(gctx, args.LibraryID, args.Query)
		if err != nil {
			return fmt.Errorf("text request failed: %w", err)
		}
		text = t
		return nil
	})
	g.Go(func() error {
		d, err := s.client.DocsJSON(gctx, args.LibraryID, args.Query)
		if err != nil {
			return fmt.Errorf("JSON request failed: %w", err)
		}
		docs = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	structured, err := structuredObject(docs)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Content:           []Content{{Type: "text", Text: text}},
		StructuredContent: structured,
	}
	if err := s.storeResult(ToolQueryDocs, key, result); err != nil {
		return nil, err
	}
	return result, nil
}
