// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/dynamo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Dealflow MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.StoreClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Dealflow Leaderboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: get_leaderboard ---
	s.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Rank analyzed startup repositories by their composite investment score."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of repositories returned.")),
		mcp.WithNumber("min_score", mcp.Description("Only include repositories scoring at least this value.")),
	), h.handleGetLeaderboard)

	// --- 2. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Aggregate statistics (count, average score, total stars, analyzed count) for the ranked repositories."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of repositories aggregated.")),
		mcp.WithNumber("min_score", mcp.Description("Only aggregate repositories scoring at least this value.")),
	), h.handleGetSummary)

	return s
}

// StartMCPServer starts the Dealflow MCP server over stdio.
func StartMCPServer(ctx context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	client, err := dynamo.NewClient(ctx, baseCfg)
	if err != nil {
		return err
	}
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
