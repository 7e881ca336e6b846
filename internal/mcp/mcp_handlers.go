package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/source"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.SnapshotManager
}

func (h *toolHandler) handleGetFunnel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file := request.GetString("file", "")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}

	stages, err := source.LoadFunnel(file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load funnel: %v", err)), nil
	}

	result := core.BuildFunnel(stages)
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputFile = request.GetString("file", "")
	cfg.Key = request.GetString("key", "")
	if w := request.GetInt("window", 0); w > 0 {
		cfg.Window = w
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("file is required"), nil
	}

	data, err := core.GetTrendResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend formatting failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCohort(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file := request.GetString("file", "")
	if file == "" {
		return mcp.NewToolResultError("file is required"), nil
	}

	rows, err := source.LoadCohort(file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load cohort: %v", err)), nil
	}

	result := core.BuildCohort(rows)
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value := request.GetFloat("value", 0)
	table := request.GetString("table", "score")

	var bucket any
	switch table {
	case "retention":
		bucket = core.ClassifyRetention(value)
	default:
		bucket = core.ClassifyScore(value)
	}

	jsonData, _ := json.MarshalIndent(bucket, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
