// Package server exposes the plugin's tools as an MCP server speaking
// JSON-RPC 2.0 over stdio or HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/hyper-mcp/context7-plugin/tools"
)

const protocolVersion = "2025-06-18"

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Request is an incoming JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Handler executes one tool call.
type Handler func(ctx context.Context, args map[string]any) (*tools.Result, error)

// Server dispatches MCP requests to registered tools.
type Server struct {
	name     string
	version  string
	log      zerolog.Logger
	tools    []mcp.Tool
	handlers map[string]Handler
}

func New(name, version string, log zerolog.Logger) *Server {
	return &Server{
		name:     name,
		version:  version,
		log:      log,
		handlers: make(map[string]Handler),
	}
}

// Register adds a tool declaration and its handler. Tools are listed in
// registration order.
func (s *Server) Register(tool mcp.Tool, h Handler) {
	s.tools = append(s.tools, tool)
	s.handlers[tool.Name] = h
}

// HandleRequest processes one MCP request and returns its response.
func (s *Server) HandleRequest(ctx context.Context, req Request) Response {
	s.log.Debug().Str("method", req.Method).Msg("mcp request")
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "ping":
		return Response{JSONRPC: "2.0", ID: req.ID, Result: map[string]any{}}
	case "tools/list":
		return Response{JSONRPC: "2.0", ID: req.ID, Result: map[string]any{"tools": s.tools}}
	case "tools/call":
		return s.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &Error{
				Code:    codeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(id any) Response {
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    s.name,
				"version": s.version,
			},
		},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// handleToolsCall dispatches to the named tool. Tool failures come back as
// error-flagged results, never as JSON-RPC errors.
func (s *Server) handleToolsCall(ctx context.Context, id any, params json.RawMessage) Response {
	var call toolsCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &Error{Code: codeInvalidParams, Message: err.Error()},
		}
	}

	handler, ok := s.handlers[call.Name]
	if !ok {
		return s.toolResponse(id, tools.ErrorResult(fmt.Sprintf("Unknown tool: %s", call.Name)))
	}

	result, err := handler(ctx, call.Arguments)
	if err != nil {
		s.log.Debug().Str("tool", call.Name).Err(err).Msg("tool call failed")
		return s.toolResponse(id, tools.ErrorResult(err.Error()))
	}
	return s.toolResponse(id, result)
}

func (s *Server) toolResponse(id any, result *tools.Result) Response {
	return Response{JSONRPC: "2.0", ID: id, Result: result}
}
