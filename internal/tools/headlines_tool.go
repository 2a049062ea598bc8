package tools

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"newsapi-mcp/internal/newsapi"
)

// FetchTopHeadlinesTool exposes headline lookup over the upstream
// /top-headlines endpoint.
type FetchTopHeadlinesTool struct {
	client NewsClient
	logger *slog.Logger
}

var _ Tool = (*FetchTopHeadlinesTool)(nil)

// NewFetchTopHeadlinesTool creates the fetch_top_headlines tool.
func NewFetchTopHeadlinesTool(client NewsClient, logger *slog.Logger) *FetchTopHeadlinesTool {
	return &FetchTopHeadlinesTool{client: client, logger: logger}
}

// Definition describes the tool to the MCP host.
func (t *FetchTopHeadlinesTool) Definition() mcp.Tool {
	return mcp.NewTool(
		"fetch_top_headlines",
		mcp.WithDescription("Get current top headlines, optionally filtered by country, category, or keyword."),
		mcp.WithString("country",
			mcp.Description("Two-letter ISO 3166-1 country code (default: us)."),
		),
		mcp.WithString("category",
			mcp.Description("News category: business, entertainment, general, health, science, sports, or technology."),
			mcp.Enum(newsapi.Categories...),
		),
		mcp.WithString("query",
			mcp.Description("Optional keywords or phrases to search for."),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of results per page (default: 10, max: 100)."),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for pagination (default: 1)."),
		),
	)
}

// Handler runs one headlines lookup, with the same error-shaped result
// contract as fetch_news.
func (t *FetchTopHeadlinesTool) Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := t.logger.With("tool", "fetch_top_headlines", "call_id", uuid.NewString())

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

	params := newsapi.HeadlineParams{
		Country:  req.GetString("country", ""),
		Category: req.GetString("category", ""),
		Query:    req.GetString("query", ""),
		PageSize: pageSize,
		Page:     page,
	}

	log.Info("fetching top headlines", "country", params.Country, "category", params.Category)

	resp, err := t.client.TopHeadlines(ctx, params)
	if err != nil {
		log.Warn("headlines fetch failed", "error_kind", errorKind(err), "error", err.Error())
		return newsResult(newsapi.ErrorResponse(errorMessage("fetch top headlines", err)))
	}

	log.Info("headlines fetch complete", "total_results", resp.TotalResults)
	return newsResult(resp)
}
