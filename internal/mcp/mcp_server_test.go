package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pulseboard/pulseboard/internal/contract"
	mcp_internal "github.com/pulseboard/pulseboard/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Window:      contract.DefaultWindow,
	}
}

func callTool(t *testing.T, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()

	// No snapshot manager; handlers must fall back to direct loads
	s := mcp_internal.NewMCPServer(baseConfig(), nil)
	tool := s.GetTool(req.Params.Name)
	require.NotNil(t, tool, "Tool %s should exist", req.Params.Name)

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	t.Run("get_funnel missing file", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_funnel",
				Arguments: map[string]any{"file": ""},
			},
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, textContent(t, res), "file is required")
	})

	t.Run("get_trend missing file", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_trend",
				Arguments: map[string]any{"file": "", "key": "revenue"},
			},
		})
		assert.True(t, res.IsError)
		assert.Contains(t, textContent(t, res), "file is required")
	})

	t.Run("get_trend missing key", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_trend",
				Arguments: map[string]any{"file": "series.json", "key": ""},
			},
		})
		assert.True(t, res.IsError)
		assert.Contains(t, textContent(t, res), "--key is required")
	})

	t.Run("get_cohort unreadable file", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_cohort",
				Arguments: map[string]any{"file": filepath.Join(t.TempDir(), "absent.json")},
			},
		})
		assert.True(t, res.IsError)
		assert.Contains(t, textContent(t, res), "failed to load cohort")
	})
}

func TestMCPServerHandlers_HappyPaths(t *testing.T) {
	t.Run("get_funnel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "funnel.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"name": "Visited", "value": 1000},
			{"name": "Signed up", "value": 400}
		]`), 0o644))

		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_funnel",
				Arguments: map[string]any{"file": path},
			},
		})
		require.False(t, res.IsError)
		text := textContent(t, res)
		assert.Contains(t, text, `"conversion_rate": 40`)
		assert.Contains(t, text, `"overall_conversion": 40`)
	})

	t.Run("get_trend with window and limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "series.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"label": "Jan", "values": {"revenue": 100}},
			{"label": "Feb", "values": {"revenue": 150}},
			{"label": "Mar", "values": {"revenue": 225}}
		]`), 0o644))

		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_trend",
				Arguments: map[string]any{
					"file":   path,
					"key":    "revenue",
					"window": 2.0,
					"limit":  2.0,
				},
			},
		})
		require.False(t, res.IsError)
		text := textContent(t, res)
		assert.Contains(t, text, `"cumulative": 250`)
		assert.NotContains(t, text, "Mar", "limit must truncate the results")
	})

	t.Run("classify_score default table", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "classify_score",
				Arguments: map[string]any{"value": 0.85},
			},
		})
		require.False(t, res.IsError)
		text := textContent(t, res)
		assert.Contains(t, text, `"label": "Excellent"`)
		assert.Contains(t, text, `"color": "#4CAF50"`)
	})

	t.Run("classify_score retention table", func(t *testing.T) {
		res := callTool(t, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "classify_score",
				Arguments: map[string]any{"value": 85.0, "table": "retention"},
			},
		})
		require.False(t, res.IsError)
		assert.Contains(t, textContent(t, res), `"label": "Outstanding"`)
	})
}
