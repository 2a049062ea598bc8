// Command newsapi-mcp is an MCP server exposing NewsAPI article search
// and top-headlines lookup as callable tools over stdio.
package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"

	"newsapi-mcp/internal/config"
	"newsapi-mcp/internal/logging"
	"newsapi-mcp/internal/newsapi"
	"newsapi-mcp/internal/tools"
	"newsapi-mcp/internal/version"
)

// main is the composition root: it loads configuration, builds the
// client, registers the tools, and hands the process over to the stdio
// transport. Configuration errors are fatal; everything after startup is
// per-call and surfaced inside tool results.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger("info").Error("configuration error", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Settings.LogLevel)
	build := version.GetBuildInfo()
	logger.Info("starting newsapi-mcp",
		"version", build.Version,
		"go_version", build.GoVersion,
		"platform", build.Platform,
	)

	client, err := newsapi.NewClient(cfg.BaseURL, cfg.APIKey,
		newsapi.WithTimeout(cfg.Settings.HTTPTimeout),
		newsapi.WithUserAgent(cfg.Settings.UserAgent),
	)
	if err != nil {
		logger.Error("failed to create news client", "error", err.Error())
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"newsapi-mcp",
		version.Version,
		server.WithToolCapabilities(false),
	)

	tools.Register(s,
		tools.NewFetchNewsTool(client, logger),
		tools.NewFetchTopHeadlinesTool(client, logger),
	)
	logger.Info("tools registered", "count", 2)

	if err := server.ServeStdio(s); err != nil {
		logger.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("server exited")
}
