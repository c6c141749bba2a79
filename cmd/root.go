package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "quadpi",
	Short:            "quadpi - estimate pi with a midpoint Riemann sum",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// bare invocation behaves like the estimate subcommand
		estimateCmd.Run(estimateCmd, args)
	},
}

func Execute() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()
	logger = l

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for the run")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(convergeCmd)
}
