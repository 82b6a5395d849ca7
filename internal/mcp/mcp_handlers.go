package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/worldsys/worldsys/core"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/internal/dataset"
	"github.com/worldsys/worldsys/internal/outwriter"
	"github.com/worldsys/worldsys/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
// The dataset is read-only, so concurrent tool calls can share it.
type toolHandler struct {
	baseCfg *contract.Config
	ds      dataset.Dataset
}

func (h *toolHandler) handleClassify(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Output = schema.JSONOut

	sel, err := contract.RevalidateSelection(cfg.Selection, request.GetString("metrics", ""), request.GetString("direction", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}
	cfg.Selection = sel

	if c := request.GetString("category", ""); c != "" {
		categories, err := schema.ParseCategories(c)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid category: %v", err)), nil
		}
		cfg.Categories = categories
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	classification, err := core.Classify(h.ds, cfg.Selection)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}
	rows := core.Filter(classification, cfg.Categories, cfg.ResultLimit)

	var buf bytes.Buffer
	if err := outwriter.WriteClassification(&buf, classification, rows, cfg, 0); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (h *toolHandler) handleSummarize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel, err := contract.RevalidateSelection(h.baseCfg.Selection, request.GetString("metrics", ""), request.GetString("direction", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid selection: %v", err)), nil
	}

	classification, err := core.Classify(h.ds, sel)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(core.Summarize(classification), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompare(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	baseMetrics := request.GetString("base_metrics", "")
	targetMetrics := request.GetString("target_metrics", "")
	if strings.TrimSpace(baseMetrics) == "" || strings.TrimSpace(targetMetrics) == "" {
		return mcp.NewToolResultError("invalid comparison parameters: base_metrics and target_metrics are required"), nil
	}
	direction := request.GetString("direction", "")

	base, err := contract.RevalidateSelection(schema.Selection{}, baseMetrics, direction)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid base_metrics: %v", err)), nil
	}
	target, err := contract.RevalidateSelection(schema.Selection{}, targetMetrics, direction)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid target_metrics: %v", err)), nil
	}

	result, err := core.Compare(h.ds, base, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 && len(result.Details) > l {
		result.Details = result.Details[:l]
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
