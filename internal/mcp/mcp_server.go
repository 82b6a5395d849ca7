// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/internal/dataset"
)

const (
	metricsDescription   = "Comma-separated active metrics (economic, military, diplomatic). Defaults to the configured selection."
	directionDescription = "Comma-separated direction overrides such as 'military=asc'. Ranking is descending by default."
)

// NewMCPServer initializes and configures the worldsys MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, ds dataset.Dataset) *server.MCPServer {
	s := server.NewMCPServer(
		"World-Systems Classification Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		ds:      ds,
	}

	// --- 1. Tool: classify ---
	s.AddTool(mcp.NewTool("classify",
		mcp.WithDescription("Rank every country by the active metrics and split the final rank into Core, Semi-Periphery and Periphery."),
		mcp.WithString("metrics", mcp.Description(metricsDescription)),
		mcp.WithString("direction", mcp.Description(directionDescription)),
		mcp.WithString("category", mcp.Description("Comma-separated categories to keep (core, semi-periphery, periphery).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of countries returned.")),
	), h.handleClassify)

	// --- 2. Tool: summarize ---
	s.AddTool(mcp.NewTool("summarize",
		mcp.WithDescription("Count the countries per category and describe each metric's distribution within each category."),
		mcp.WithString("metrics", mcp.Description(metricsDescription)),
		mcp.WithString("direction", mcp.Description(directionDescription)),
	), h.handleSummarize)

	// --- 3. Tool: compare ---
	s.AddTool(mcp.NewTool("compare",
		mcp.WithDescription("Classify under two metric selections and report which countries were promoted or demoted."),
		mcp.WithString("base_metrics", mcp.Description("Comma-separated metrics of the base selection."), mcp.Required()),
		mcp.WithString("target_metrics", mcp.Description("Comma-separated metrics of the target selection."), mcp.Required()),
		mcp.WithString("direction", mcp.Description(directionDescription)),
		mcp.WithNumber("limit", mcp.Description("Limit the number of countries returned.")),
	), h.handleCompare)

	return s
}

// StartMCPServer starts the worldsys MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, ds dataset.Dataset) error {
	s := NewMCPServer(baseCfg, ds)
	return server.ServeStdio(s)
}
