package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/i5heu/GoPoolQueue/internal/logger"
)

var (
	// Global flags
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the pool-backed queue against baseline FIFOs",
	Long: `bench runs a single-threaded fill/drain/edit workload over the
pool-backed slot queue and a set of baseline FIFOs, appends the results to a
JSON file and renders them as a markdown table.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Level: logLevel, JSON: logJSON})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "off", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
