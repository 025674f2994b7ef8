// Package config wires viper defaults and validation for the benchmark
// harness. Values come from flags, a MAJBENCH_ env prefix, an optional
// config.yaml, and an optional .env file, in the usual viper precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes configuration from file and environment.
func Load(cfgFile string) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MAJBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	// A missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// SetDefaults registers the default values for every knob the harness
// reads.
func SetDefaults() {
	viper.SetDefault("runs", 10)
	viper.SetDefault("sizes", []int{100, 1000, 10000, 100000})
	viper.SetDefault("seed", int64(0)) // 0 means seed from the clock
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("parallel", false)
}

// Validate checks configuration values after viper has loaded them.
func Validate() error {
	var errs []string

	if runs := viper.GetInt("runs"); runs <= 0 {
		errs = append(errs, fmt.Sprintf("runs must be positive, got: %d", runs))
	}

	for _, size := range viper.GetIntSlice("sizes") {
		if size <= 0 {
			errs = append(errs, fmt.Sprintf("sizes must be positive, got: %d", size))
			break
		}
	}

	if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
		errs = append(errs, fmt.Sprintf("metrics_port must be in [0, 65535], got: %d", port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
