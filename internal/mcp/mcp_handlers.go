package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/modelmeter/core"
	"github.com/huangsam/modelmeter/internal/contract"
	"github.com/huangsam/modelmeter/internal/dataio"
	"github.com/huangsam/modelmeter/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// requestConfig merges per-request arguments over the shared base config.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.DataPath = request.GetString("data_path", cfg.DataPath)
	if t := request.GetString("truth", ""); t != "" {
		cfg.TruthColumn = t
	}
	if e := request.GetString("estimate", ""); e != "" {
		cfg.EstimateCol = e
	}
	if s := request.GetString("scores", ""); s != "" {
		cfg.ScoreColumns = contract.SplitColumns(s)
	}
	if g := request.GetString("group_by", ""); g != "" {
		cfg.GroupColumns = contract.SplitColumns(g)
	}
	if m := request.GetString("metrics", ""); m != "" {
		cfg.MetricNames = contract.SplitColumns(m)
	}
	if l := request.GetString("event_level", ""); l != "" {
		cfg.EventLevel = schema.EventLevel(l)
	}
	return cfg
}

// loadFrame reads the request's CSV and applies any grouping columns.
func loadFrame(cfg *contract.Config) (*schema.Frame, error) {
	data, err := dataio.LoadCSV(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	if len(cfg.GroupColumns) > 0 {
		data, err = data.GroupBy(cfg.GroupColumns...)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func evalOptionsFromConfig(cfg *contract.Config) []core.EvalOption {
	opts := []core.EvalOption{core.WithEventLevel(cfg.EventLevel)}
	if cfg.KeepMissing {
		opts = append(opts, core.WithKeepMissing())
	}
	return opts
}

func (h *toolHandler) handleEvaluateMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if err := cfg.RequireEvaluationColumns(true); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid evaluation parameters: %v", err)), nil
	}
	if len(cfg.MetricNames) == 0 {
		return mcp.NewToolResultError("at least one metric name is required"), nil
	}

	metrics := make([]*core.Metric, 0, len(cfg.MetricNames))
	for _, name := range cfg.MetricNames {
		m, ok := core.LookupMetric(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown metric '%s'", name)), nil
		}
		metrics = append(metrics, m)
	}
	set, err := core.NewSet(metrics...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metric set: %v", err)), nil
	}

	data, err := loadFrame(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data loading failed: %v", err)), nil
	}

	var rows []schema.MetricRow
	opts := evalOptionsFromConfig(cfg)
	switch set.Kind() {
	case core.NumericSet:
		eval, err := set.NumericEvaluator()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		rows, err = eval(data, cfg.TruthColumn, cfg.EstimateCol, nil, opts...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
	default:
		eval, err := set.ClassEvaluator()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		rows, err = eval(data, cfg.TruthColumn, cfg.ScoreColumns, cfg.EstimateCol, opts...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGainCurve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if err := cfg.RequireEvaluationColumns(false); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid curve parameters: %v", err)), nil
	}

	data, err := loadFrame(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data loading failed: %v", err)), nil
	}

	points, err := core.GainCurve(data, cfg.TruthColumn, cfg.ScoreColumns, evalOptionsFromConfig(cfg)...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gain curve failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLiftCurve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if err := cfg.RequireEvaluationColumns(false); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid curve parameters: %v", err)), nil
	}

	data, err := loadFrame(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data loading failed: %v", err)), nil
	}

	points, err := core.LiftCurve(data, cfg.TruthColumn, cfg.ScoreColumns, evalOptionsFromConfig(cfg)...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lift curve failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListMetrics(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(core.CatalogInfo(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
