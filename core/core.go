// Package core has the ranking engine and the entry points behind each command.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/internal/dataset"
	"github.com/worldsys/worldsys/internal/outwriter"
	"github.com/worldsys/worldsys/schema"
	"go.uber.org/zap"
)

// ExecutorFunc defines the function signature for executing commands over a dataset.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, ds dataset.Dataset) error

// ExecuteClassify classifies the dataset and prints the ranked table.
// It serves as the main entry point for the 'classify' command.
func ExecuteClassify(ctx context.Context, cfg *contract.Config, ds dataset.Dataset) error {
	start := time.Now()
	logRunHeader(ctx, "classify", ds, cfg.Selection)

	classification, err := Classify(ds, cfg.Selection)
	if err != nil {
		return err
	}
	rows := Filter(classification, cfg.Categories, cfg.ResultLimit)
	return outwriter.PrintClassification(classification, rows, cfg, time.Since(start))
}

// ExecuteSummary classifies the dataset and prints category counts with
// per-metric distributions.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, ds dataset.Dataset) error {
	start := time.Now()
	logRunHeader(ctx, "summary", ds, cfg.Selection)

	classification, err := Classify(ds, cfg.Selection)
	if err != nil {
		return err
	}
	return outwriter.PrintSummary(Summarize(classification), cfg, time.Since(start))
}

// ExecuteCompare classifies the dataset under the base and target selections
// and prints the movement between them.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, ds dataset.Dataset) error {
	if !cfg.CompareMode {
		return errors.New("--base-metrics or --target-metrics is required")
	}
	start := time.Now()
	logRunHeader(ctx, "compare", ds, cfg.TargetSelection)

	result, err := Compare(ds, cfg.BaseSelection, cfg.TargetSelection)
	if err != nil {
		return err
	}
	if cfg.ResultLimit > 0 && len(result.Details) > cfg.ResultLimit {
		result.Details = result.Details[:cfg.ResultLimit]
	}
	return outwriter.PrintComparison(result, cfg, time.Since(start))
}

// ExecuteMetrics prints the indicator definitions for the current selection.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintMetrics(BuildMetricsModel(cfg.Selection), cfg)
}

// ExecuteCheck inspects the configured dataset file, or the embedded one, and
// prints its health report. It fails when the dataset has issues.
func ExecuteCheck(_ context.Context, cfg *contract.Config) error {
	var (
		source  = dataset.DefaultSource
		records []schema.Record
	)
	if cfg.DatasetPath != "" {
		source = cfg.DatasetPath
		parsed, err := dataset.ReadFile(cfg.DatasetPath)
		if err != nil {
			return err
		}
		records = parsed
	} else {
		ds, err := dataset.Default()
		if err != nil {
			return err
		}
		records = ds.Records()
	}

	result := CheckRecords(source, records)
	if err := outwriter.PrintCheck(result, cfg); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("dataset check failed: %d issue(s) found", len(result.Issues))
	}
	return nil
}

// logRunHeader logs what is about to be ranked.
func logRunHeader(ctx context.Context, command string, ds dataset.Dataset, sel schema.Selection) {
	fields := []zap.Field{
		zap.String("dataset", ds.Source()),
		zap.Int("records", ds.Len()),
		zap.String("metrics", sel.Label()),
	}
	if trigger := triggerFrom(ctx); trigger != "" {
		fields = append(fields, zap.String("trigger", trigger))
	}
	zap.L().Info(command, fields...)
}
