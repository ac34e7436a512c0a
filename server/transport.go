package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ServeStdio runs the MCP loop over line-delimited JSON until in is closed
// or the context is cancelled. Notifications are consumed without a reply.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Documentation payloads can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := Response{
				JSONRPC: "2.0",
				Error:   &Error{Code: codeParseError, Message: err.Error()},
			}
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("encode error response: %w", err)
			}
			continue
		}

		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		if err := encoder.Encode(s.HandleRequest(ctx, req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	return nil
}

// HTTPHandler returns a handler for the HTTP transport: one POST with a
// JSON-RPC body per exchange.
func (s *Server) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = json.NewEncoder(w).Encode(Response{
				JSONRPC: "2.0",
				Error:   &Error{Code: codeParseError, Message: err.Error()},
			})
			return
		}

		_ = json.NewEncoder(w).Encode(s.HandleRequest(r.Context(), req))
	})
}
