package quad

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/quadlabs/quadpi/internal/midpoint"
	tt "github.com/quadlabs/quadpi/internal/types"
)

// Estimator is the part of the midpoint engine the commands rely on.
type Estimator interface {
	Estimate() (tt.Result, error)
	EstimateN(n int64) (tt.Result, error)
}

// New builds an estimator from the configuration file at configPath,
// with opts applied on top of the configured values.
func New(configPath string, opts ...midpoint.Option) (*midpoint.Estimator, Config, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, config, fmt.Errorf("loading configuration: %w", err)
	}

	base := []midpoint.Option{
		midpoint.WithSubintervals(config.Subintervals),
		midpoint.WithCompensation(config.Compensated),
	}
	return midpoint.New(append(base, opts...)...), config, nil
}

// RunSeries estimates once per entry of counts and reports how the
// absolute error moves between steps. The steps run one after another so
// the accumulation order never depends on scheduling.
func RunSeries(ctx context.Context, logger *zap.Logger, estimator Estimator, counts []int64) ([]tt.SeriesPoint, error) {
	if len(counts) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(counts),
		progressbar.OptionSetDescription("converge"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	points := make([]tt.SeriesPoint, 0, len(counts))
	for _, n := range counts {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := estimator.EstimateN(n)
		if err != nil {
			if logger != nil {
				logger.Error("Error estimating", zap.Int64("subintervals", n), zap.Error(err))
			}
			return nil, err
		}

		point := tt.SeriesPoint{Result: result}
		if prev := len(points) - 1; prev >= 0 && result.AbsError > 0 {
			point.Ratio = points[prev].AbsError / result.AbsError
		}
		points = append(points, point)
		_ = bar.Add(1)
	}
	fmt.Println()

	return points, nil
}
