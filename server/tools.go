package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hyper-mcp/context7-plugin/tools"
)

const queryDocsDescription = `Retrieves and queries up-to-date documentation and code examples from Context7 for any programming library or framework.

You must call 'resolve_library_id' first to obtain the exact Context7-compatible library ID required to use this tool, UNLESS the user explicitly provides a library ID in the format '/org/project' or '/org/project/version' in their query.

IMPORTANT: Do not call this tool more than 3 times per question. If you cannot find what you need after 3 calls, use the best information you have.`

const resolveLibraryIDDescription = `Resolves a package/product name to a Context7-compatible library ID and returns matching libraries.

You MUST call this function before 'query_docs' to obtain a valid Context7-compatible library ID UNLESS the user explicitly provides a library ID in the format '/org/project' or '/org/project/version' in their query.

Selection Process:
1. Analyze the query to understand what library/package the user is looking for
2. Return the most relevant match based on:
- Name similarity to the query (exact matches prioritized)
- Description relevance to the query's intent
- Documentation coverage (prioritize libraries with higher Code Snippet counts)
- Source reputation (consider libraries with High or Medium reputation more authoritative)
- Benchmark Score: Quality indicator (100 is the highest score)

Response Format:
- Return the selected library ID in a clearly marked section
- Provide a brief explanation for why this library was chosen
- If multiple good matches exist, acknowledge this but proceed with the most relevant one
- If no good matches exist, clearly state this and suggest query refinements

For ambiguous queries, request clarification before proceeding with a best-guess match.

IMPORTANT: Do not call this tool more than 3 times per question. If you cannot find what you need after 3 calls, use the best result you have.`

const queryDescription = "The question or task you need help with. Be specific and include relevant details. " +
	"The query is sent to the Context7 API for processing. Do not include any sensitive or confidential " +
	"information such as API keys, passwords, credentials, personal data, or proprietary code in your query."

// Mount registers the plugin's three tools on the server, wired to svc.
func Mount(s *Server, svc *tools.Service) {
	s.Register(mcp.Tool{
		Name:        tools.ToolQueryDocs,
		Description: queryDocsDescription,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"libraryId": map[string]any{
					"type": "string",
					"description": "Exact Context7-compatible library ID (e.g., '/mongodb/docs', '/vercel/next.js', " +
						"'/vercel/next.js/v14.3.0-canary.87') retrieved from 'resolve_library_id' or directly from the " +
						"user query in the format '/org/project' or '/org/project/version'.",
				},
				"query": map[string]any{
					"type":        "string",
					"description": queryDescription,
				},
			},
			"required": []string{"libraryId", "query"},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:        "Query Documentation",
			ReadOnlyHint: true,
		},
	}, func(ctx context.Context, args map[string]any) (*tools.Result, error) {
		var qa tools.QueryArgs
		if err := decodeArgs(args, &qa); err != nil {
			return nil, err
		}
		return svc.QueryDocs(ctx, qa)
	})

	s.Register(mcp.Tool{
		Name:        tools.ToolResolveLibraryID,
		Description: resolveLibraryIDDescription,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"libraryName": map[string]any{
					"type":        "string",
					"description": "Library name to search for and retrieve a Context7-compatible library ID.",
				},
				"query": map[string]any{
					"type":        "string",
					"description": queryDescription,
				},
			},
			"required": []string{"libraryName", "query"},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:        "Resolve Context7 Library ID",
			ReadOnlyHint: true,
		},
	}, func(ctx context.Context, args map[string]any) (*tools.Result, error) {
		var ra tools.ResolveArgs
		if err := decodeArgs(args, &ra); err != nil {
			return nil, err
		}
		return svc.ResolveLibraryID(ctx, ra)
	})

	destructive := true
	s.Register(mcp.Tool{
		Name:        tools.ToolClearCache,
		Description: "Clears the local documentation cache. Use this when cached results appear stale or outdated.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:           "Clear Cache",
			DestructiveHint: &destructive,
		},
	}, func(ctx context.Context, _ map[string]any) (*tools.Result, error) {
		return svc.ClearCache(ctx)
	})
}

func decodeArgs(args map[string]any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
