// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pulseboard/pulseboard/internal/contract"
)

// NewMCPServer initializes and configures the Pulseboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.SnapshotManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Pulseboard Formatting Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_funnel ---
	s.AddTool(mcp.NewTool("get_funnel",
		mcp.WithDescription("Compute conversion rates, drop-off and percent-of-top for an ordered funnel stored as a JSON file."),
		mcp.WithString("file", mcp.Description("Path to the funnel JSON file (array of {name, value})."), mcp.Required()),
	), h.handleGetFunnel)

	// --- 2. Tool: get_trend ---
	s.AddTool(mcp.NewTool("get_trend",
		mcp.WithDescription("Compute cumulative sum, period-over-period growth and moving average for a metric series stored as a JSON file."),
		mcp.WithString("file", mcp.Description("Path to the series JSON file (array of {label, values})."), mcp.Required()),
		mcp.WithString("key", mcp.Description("Value field to read from each point."), mcp.Required()),
		mcp.WithNumber("window", mcp.Description("Moving-average period. Defaults to the configured window.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetTrend)

	// --- 3. Tool: get_cohort ---
	s.AddTool(mcp.NewTool("get_cohort",
		mcp.WithDescription("Compute cohort retention rates, per-cohort averages and the aggregate retention curve from a JSON file."),
		mcp.WithString("file", mcp.Description("Path to the cohort JSON file (array of {label, initial_users, active_counts})."), mcp.Required()),
	), h.handleGetCohort)

	// --- 4. Tool: classify_score ---
	s.AddTool(mcp.NewTool("classify_score",
		mcp.WithDescription("Classify a health score in [0,1] or a retention percentage in [0,100] into its labeled color bucket."),
		mcp.WithNumber("value", mcp.Description("The value to classify."), mcp.Required()),
		mcp.WithString("table", mcp.Description("Which classifier table to use. Defaults to 'score'."), mcp.Enum("score", "retention")),
	), h.handleClassifyScore)

	return s
}

// StartMCPServer starts the Pulseboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.SnapshotManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
