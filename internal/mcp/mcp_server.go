// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the modelmeter MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Modelmeter Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: evaluate_metrics ---
	s.AddTool(mcp.NewTool("evaluate_metrics",
		mcp.WithDescription("Evaluate model performance metrics over a CSV of truth and estimate columns."),
		mcp.WithString("data_path", mcp.Description("Path to the prediction CSV file."), mcp.Required()),
		mcp.WithString("truth", mcp.Description("Ground-truth column name."), mcp.Required()),
		mcp.WithString("estimate", mcp.Description("Estimate column: numeric predictions or hard class labels."), mcp.Required()),
		mcp.WithString("metrics", mcp.Description("Comma-separated metric names (e.g. 'rmse,mae' or 'accuracy,gain_capture')."), mcp.Required()),
		mcp.WithString("scores", mcp.Description("Comma-separated probability score columns for class/probability metrics.")),
		mcp.WithString("group_by", mcp.Description("Comma-separated grouping columns.")),
		mcp.WithString("event_level", mcp.Description("Which truth level is the event of interest."), mcp.Enum("first", "second")),
	), h.handleEvaluateMetrics)

	// --- 2. Tool: gain_curve ---
	s.AddTool(mcp.NewTool("gain_curve",
		mcp.WithDescription("Compute a cumulative gain curve from ranked probability scores."),
		mcp.WithString("data_path", mcp.Description("Path to the prediction CSV file."), mcp.Required()),
		mcp.WithString("truth", mcp.Description("Ground-truth label column name."), mcp.Required()),
		mcp.WithString("scores", mcp.Description("Comma-separated score columns: one for binary, one per level for multiclass."), mcp.Required()),
		mcp.WithString("group_by", mcp.Description("Comma-separated grouping columns.")),
		mcp.WithString("event_level", mcp.Description("Which truth level is the event of interest."), mcp.Enum("first", "second")),
	), h.handleGainCurve)

	// --- 3. Tool: lift_curve ---
	s.AddTool(mcp.NewTool("lift_curve",
		mcp.WithDescription("Compute a lift curve from ranked probability scores."),
		mcp.WithString("data_path", mcp.Description("Path to the prediction CSV file."), mcp.Required()),
		mcp.WithString("truth", mcp.Description("Ground-truth label column name."), mcp.Required()),
		mcp.WithString("scores", mcp.Description("Comma-separated score columns: one for binary, one per level for multiclass."), mcp.Required()),
		mcp.WithString("group_by", mcp.Description("Comma-separated grouping columns.")),
		mcp.WithString("event_level", mcp.Description("Which truth level is the event of interest."), mcp.Enum("first", "second")),
	), h.handleLiftCurve)

	// --- 4. Tool: list_metrics ---
	s.AddTool(mcp.NewTool("list_metrics",
		mcp.WithDescription("List the built-in metrics with kind, direction and formula."),
	), h.handleListMetrics)

	return s
}

// StartMCPServer starts the modelmeter MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
