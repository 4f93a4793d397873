package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dealflowhq/dealflow/core"
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.StoreClient
	mgr     contract.CacheManager
}

// requestConfig clones the base config and applies per-request overrides.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 && l <= contract.MaxResultLimit {
		cfg.ResultLimit = l
	}
	if m := request.GetFloat("min_score", 0); m > 0 {
		cfg.MinScore = m
	}
	return cfg
}

func (h *toolHandler) handleGetLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	board, err := core.BuildBoard(ctx, cfg, h.client, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("board build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(board.Records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	board, err := core.BuildBoard(ctx, cfg, h.client, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary build failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(board.Summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
