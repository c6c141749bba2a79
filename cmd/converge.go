package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadlabs/quadpi/formatter"
	tt "github.com/quadlabs/quadpi/internal/types"
	"github.com/quadlabs/quadpi/quad"
)

var (
	countsFlag      string
	convergeJson    bool
	convergeOutPath string
)

var defaultCounts = []int64{10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000}

var convergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Sweep subinterval counts and report how the error shrinks",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		counts, err := parseCounts(countsFlag)
		if err != nil {
			logger.Fatal("Invalid counts", zap.Error(err))
		}

		estimator, config, err := quad.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize estimator", zap.Error(err))
		}

		points, err := quad.RunSeries(ctx, logger, estimator, counts)
		if err != nil {
			logger.Fatal("Convergence sweep failed", zap.Error(err))
		}

		printSeries(logger, points, config.Precision, convergeJson, convergeOutPath)
	},
}

func init() {
	convergeCmd.Flags().StringVar(&countsFlag, "counts", "", "Comma-separated subinterval counts (default 10,100,...,100000000)")
	convergeCmd.Flags().BoolVar(&convergeJson, "json", false, "Output the series in JSON format")
	convergeCmd.Flags().StringVarP(&convergeOutPath, "output", "o", "", "Output path (when using JSON)")
}

func parseCounts(raw string) ([]int64, error) {
	if raw == "" {
		return defaultCounts, nil
	}

	parts := strings.Split(raw, ",")
	counts := make([]int64, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing count %q: %w", part, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func printSeries(logger *zap.Logger, points []tt.SeriesPoint, precision int, isJson bool, jsonOutput string) {
	if isJson {
		d, err := json.Marshal(points)
		if err != nil {
			logger.Error("Error marshalling series to JSON", zap.Error(err))
			return
		}
		writeOut(logger, d, jsonOutput)
		return
	}

	fmt.Print(formatter.FormatSeries(points, precision))
}
