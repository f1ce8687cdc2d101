package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mchandra/offergen/internal/config"
)

var verbose bool
var noColor bool
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "offergen",
	Short: "Synthetic card transaction and merchant offer generator",
	Long: `A synthetic data generator for card transactions and merchant offers.

This tool produces realistic test datasets for payments and offer
personalization systems:

  generate   Card transaction history as CSV or XLSX files
  offers     Merchant promotions loaded into SQLite or MariaDB
  customers  Customer roster loaded into the same database
  target     Customer-offer assignments for personalization testing

Defaults are in internal/config/defaults.go; a config file named
offergen.yaml in the working directory overrides them.

Example usage:
  offergen generate --customers 5000 --days 365 --seed 42
  offergen offers --count 1000 --db offers.db
  offergen target --db offers.db`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./offergen.yaml)")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// initConfig loads the optional config file into viper
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("offergen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("OFFERGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; a broken one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config %s: %v\n", viper.ConfigFileUsed(), err)
		os.Exit(1)
	}
	if cfg.Verbose {
		verbose = true
	}
}

// Verbose returns whether verbose mode is enabled
func Verbose() bool {
	return verbose
}

// Exit with code
func Exit(code int) {
	os.Exit(code)
}
