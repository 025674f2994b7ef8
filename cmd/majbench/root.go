package main

import (
	"fmt"
	"os"
	"sync"

	"majbench/internal/config"
	"majbench/internal/majority"
	"majbench/internal/perf"
	"majbench/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// Shared state for all subcommands. The store lives for the whole process;
// results are discarded at exit.
var (
	store       = perf.NewStore()
	tracker     *perf.Tracker
	appMetrics  *telemetry.Metrics
	metricsOnce sync.Once
)

var rootCmd = &cobra.Command{
	Use:   "majbench",
	Short: "Boyer-Moore majority vote benchmark harness",
	Long: `majbench runs an instrumented Boyer-Moore majority vote engine against
synthetic sequences, aggregates per-trial metrics into summary statistics,
and exports them as CSV or a grouped report.`,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'majbench --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Default behavior: interactive menu
		return runCLI(cmd, args)
	}
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for data generation (0 seeds from the clock)")
	rootCmd.PersistentFlags().Int("metrics-port", 2112, "Prometheus metrics port (0 disables)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("metrics_port", rootCmd.PersistentFlags().Lookup("metrics-port"))
}

// initConfig reads configuration, validates it, and starts telemetry.
func initConfig() {
	config.Load(cfgFile)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if port := viper.GetInt("metrics_port"); port > 0 {
		metricsOnce.Do(func() {
			appMetrics = telemetry.NewMetrics(prometheus.DefaultRegisterer)
			go func() {
				if err := telemetry.StartMetricsServer(port); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to start metrics server: %v\n", err)
				}
			}()
		})
	}
}

// getTracker lazily builds the shared tracker with the configured seed.
func getTracker() *perf.Tracker {
	if tracker == nil {
		seed := viper.GetInt64("seed")
		var gen *majority.Generator
		if seed == 0 {
			gen = majority.NewRandomGenerator()
		} else {
			gen = majority.NewGenerator(seed)
		}
		tracker = perf.NewTracker(store, gen, appMetrics)
	}
	return tracker
}
