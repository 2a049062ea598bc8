package tools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"newsapi-mcp/internal/newsapi"
)

// FetchNewsTool exposes free-text article search over the upstream
// /everything endpoint.
type FetchNewsTool struct {
	client NewsClient
	logger *slog.Logger
}

// Statically verify that FetchNewsTool implements the Tool interface.
var _ Tool = (*FetchNewsTool)(nil)

// NewFetchNewsTool creates the fetch_news tool.
func NewFetchNewsTool(client NewsClient, logger *slog.Logger) *FetchNewsTool {
	return &FetchNewsTool{client: client, logger: logger}
}

// Definition describes the tool to the MCP host. Argument descriptions
// matter: the calling model relies on them to fill arguments correctly.
func (t *FetchNewsTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_news",
		mcp.WithDescription("Search news articles by keyword or phrase, with optional date range, language, and sort order."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keywords or phrases to search for, e.g. 'artificial intelligence'."),
		),
		mcp.WithString("from_date",
			mcp.Description("Optional start date in YYYY-MM-DD format."),
		),
		mcp.WithString("to_date",
			mcp.Description("Optional end date in YYYY-MM-DD format."),
		),
		mcp.WithString("language",
			mcp.Description("Two-letter language code (default: en)."),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort order: relevancy, popularity, or publishedAt (default: publishedAt)."),
			mcp.Enum(newsapi.SortOptions...),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 10, max: 100)."),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (default: 1)."),
		),
	)
}

// Handler runs one search. All validation and upstream failures are
// returned as an error-shaped response payload.
func (t *FetchNewsTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := t.logger.With("tool", "fetch_news", "call_id", uuid.NewString())

	query, err := req.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		log.Warn("rejected call", "error_kind", "validation", "message", "missing query")
		return newsResult(newsapi.ErrorResponse("query must be a non-empty string"))
	}

	pageSize, err := positiveInt(req, "page_size")
	if err != nil {
		log.Warn("rejected call", "error_kind", "validation", "message", err.Error())
		return newsResult(newsapi.ErrorResponse(err.Error()))
	}
	page, err := positiveInt(req, "page")
	if err != nil {
		log.Warn("rejected call", "error_kind", "validation", "message", err.Error())
		return newsResult(newsapi.ErrorResponse(err.Error()))
	}

	params := newsapi.SearchParams{
		Query:    query,
		From:     req.GetString("from_date", ""),
		To:       req.GetString("to_date", ""),
		Language: req.GetString("language", ""),
		SortBy:   req.GetString("sort_by", ""),
		PageSize: pageSize,
		Page:     page,
	}

	log.Info("searching news", "query", query)

	resp, err := t.client.Search(ctx, params)
	if err != nil {
		log.Warn("search failed", "error_kind", errorKind(err), "error", err.Error())
		return newsResult(newsapi.ErrorResponse(errorMessage("fetch news articles", err)))
	}

	log.Info("search complete", "total_results", resp.TotalResults)
	return newsResult(resp)
}
