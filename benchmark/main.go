// Package main provides a performance benchmarking tool for the worldsys CLI.
// It measures execution times of each command against one or more datasets,
// running each command several times, treating the first successful run as
// cold and averaging the rest as warm, and writes the results as CSV.
//
// Prerequisites:
// - worldsys binary installed and available in PATH
//
// Usage: go run benchmark/main.go [dataset ...]
//
//	dataset: dataset files to benchmark; none means the embedded dataset
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Datasets []string
	Timeout  time.Duration
	Runs     int
	Commands map[string][]string
	Order    []string
}

func main() {
	datasets := os.Args[1:]
	if len(datasets) == 0 {
		datasets = []string{""}
	}

	config := BenchmarkConfig{
		Datasets: datasets,
		Timeout:  30 * time.Second,
		Runs:     5,
		Commands: map[string][]string{
			"classify": {"classify", "--output", "csv"},
			"summary":  {"summary", "--output", "json"},
			"compare":  {"compare", "--base-metrics", "economic,military,diplomatic", "--target-metrics", "economic", "--output", "csv"},
			"check":    {"check", "--output", "json"},
		},
		Order: []string{"classify", "summary", "compare", "check"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the worldsys binary and dataset files exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("worldsys"); err != nil {
		return fmt.Errorf("worldsys binary not found in PATH")
	}
	for _, ds := range config.Datasets {
		if ds == "" {
			continue
		}
		if _, err := os.Stat(ds); os.IsNotExist(err) {
			return fmt.Errorf("dataset not found at %s", ds)
		}
	}
	return nil
}

// runBenchmarks executes every command against every dataset
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs per command\n",
		len(config.Datasets), config.Timeout, config.Runs)

	for _, ds := range config.Datasets {
		name := datasetName(ds)
		fmt.Printf("Benchmarking %s\n", name)
		for _, command := range config.Order {
			results = append(results, runBenchmarkSuite(config, ds, command))
		}
	}
	return results
}

// runBenchmarkSuite runs one command repeatedly and summarizes its timings
func runBenchmarkSuite(config BenchmarkConfig, ds, command string) BenchmarkResult {
	args := append([]string{}, config.Commands[command]...)
	if ds != "" {
		args = append(args, "--dataset", ds)
	}
	args = append(args, "--log-level", "error")

	fmt.Printf("  %s (%d runs)\n", command, config.Runs)
	times := runBenchmark(config, args)

	result := BenchmarkResult{
		Dataset:  datasetName(ds),
		Command:  command,
		ColdTime: "FAILED",
		WarmTime: "FAILED",
	}
	if len(times) > 0 {
		result.ColdTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		result.WarmTime = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
	return result
}

// runBenchmark executes a worldsys command multiple times and returns the
// duration in seconds of each successful run
func runBenchmark(config BenchmarkConfig, args []string) []float64 {
	var times []float64
	for range config.Runs {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		cmd := exec.CommandContext(ctx, "worldsys", args...)
		err := cmd.Run()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil {
			times = append(times, elapsed)
		}
	}
	return times
}

// datasetName labels a dataset path for the report
func datasetName(ds string) string {
	if ds == "" {
		return "embedded"
	}
	return filepath.Base(ds)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("worldsys_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by command
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range config.Order {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command != command {
				continue
			}
			fmt.Printf("  %s: cold %s, warm %s\n", result.Dataset, result.ColdTime, result.WarmTime)
		}
	}
}
