// Package tools defines the MCP tools this server exposes and their
// handlers. Each tool composes parameter validation, request building,
// the remote client, and response shaping; failures come back to the
// host as an error-shaped ArticleResponse payload, never as a protocol
// error.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"newsapi-mcp/internal/newsapi"
)

// NewsClient is the slice of the newsapi client the tools use. Tests
// substitute a fake.
type NewsClient interface {
	Search(ctx context.Context, params newsapi.SearchParams) (*newsapi.Response, error)
	TopHeadlines(ctx context.Context, params newsapi.HeadlineParams) (*newsapi.Response, error)
}

// Tool pairs an MCP tool definition with its handler.
type Tool interface {
	// Definition returns the tool's schema, shown to the MCP host so it
	// understands the tool's name and arguments.
	Definition() mcp.Tool

	// Handler runs the tool. Validation and upstream failures are
	// encoded in the returned payload's status/message fields; the Go
	// error is reserved for failures of the handler itself.
	Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Register adds every tool to the server.
func Register(s *server.MCPServer, tools ...Tool) {
	for _, t := range tools {
		s.AddTool(t.Definition(), t.Handler)
	}
}

// newsResult marshals a Response into the tool result payload.
func newsResult(resp *newsapi.Response) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		// Response contains nothing unmarshalable; kept as a guard.
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorMessage converts a client error into the message placed on an
// error-shaped response. Validation messages are precise and pass
// through verbatim; transport and decode failures get a generic prefix
// so upstream details are not presented as caller mistakes.
func errorMessage(op string, err error) string {
	var apiErr *newsapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == newsapi.KindValidation {
			return apiErr.Message
		}
		return fmt.Sprintf("failed to %s: %s", op, apiErr.Message)
	}
	return fmt.Sprintf("failed to %s: %v", op, err)
}

// errorKind extracts the error kind for logging.
func errorKind(err error) string {
	var apiErr *newsapi.Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "unknown"
}

// positiveInt reads an optional integer argument that must be strictly
// positive when supplied. Returns 0 when the argument is absent, which
// the parameter structs treat as "use the default".
func positiveInt(req mcp.CallToolRequest, key string) (int, error) {
	if _, present := req.GetArguments()[key]; !present {
		return 0, nil
	}
	n := req.GetInt(key, 0)
	if n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}
