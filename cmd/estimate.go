package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadlabs/quadpi/formatter"
	"github.com/quadlabs/quadpi/internal/midpoint"
	tt "github.com/quadlabs/quadpi/internal/types"
	"github.com/quadlabs/quadpi/quad"
)

var (
	subintervals    int64
	kahan           bool
	verbose         bool
	estimateJson    bool
	estimateOutPath string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run one midpoint-rule estimation and print the result",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		estimator, config, err := quad.New(cfgFile, overrides(cmd)...)
		if err != nil {
			logger.Fatal("Failed to initialize estimator", zap.Error(err))
		}

		var result tt.Result
		runWithTimeout(ctx, func() {
			result, err = estimator.Estimate()
		})
		if err != nil {
			logger.Fatal("Estimation failed", zap.Error(err))
		}

		printResult(logger, result, config.Precision, estimateJson, estimateOutPath)
	},
}

func init() {
	estimateCmd.Flags().Int64VarP(&subintervals, "subintervals", "n", midpoint.DefaultSubintervals, "Number of subintervals of [0,1]")
	estimateCmd.Flags().BoolVar(&kahan, "kahan", false, "Use compensated (Kahan) summation")
	estimateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a detail block instead of the bare estimate")
	estimateCmd.Flags().BoolVar(&estimateJson, "json", false, "Output the result in JSON format")
	estimateCmd.Flags().StringVarP(&estimateOutPath, "output", "o", "", "Output path (when using JSON)")
}

// overrides translates explicitly set flags into estimator options, so
// flags win over the configuration file.
func overrides(cmd *cobra.Command) []midpoint.Option {
	var opts []midpoint.Option
	if cmd.Flags().Changed("subintervals") {
		opts = append(opts, midpoint.WithSubintervals(subintervals))
	}
	if cmd.Flags().Changed("kahan") {
		opts = append(opts, midpoint.WithCompensation(kahan))
	}
	return opts
}

func runWithTimeout(ctx context.Context, f func()) {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()

	select {
	case <-ctx.Done():
		logger.Fatal("Estimation timed out")
	case <-done:
	}
}

func printResult(logger *zap.Logger, result tt.Result, precision int, isJson bool, jsonOutput string) {
	if isJson {
		d, err := json.Marshal(result)
		if err != nil {
			logger.Error("Error marshalling result to JSON", zap.Error(err))
			return
		}
		writeOut(logger, d, jsonOutput)
		return
	}

	if verbose {
		fmt.Print(formatter.FormatResult(result, precision))
		return
	}

	// default output: a single line holding the estimate
	fmt.Println(formatter.FormatFloat(result.Estimate, precision))
}

func writeOut(logger *zap.Logger, d []byte, path string) {
	if path == "" {
		fmt.Println(string(d))
		return
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
