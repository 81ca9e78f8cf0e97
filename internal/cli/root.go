// Package cli implements the csift command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvp-joe/csift/internal/config"
	"github.com/mvp-joe/csift/internal/extract"
	"github.com/mvp-joe/csift/internal/heuristic"
	"github.com/mvp-joe/csift/internal/precise"
)

var (
	cfgFile       string
	verbose       bool
	forceFallback bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csift",
	Short: "csift - structural summaries of C sources",
	Long: `csift extracts macro definitions, struct/enum typedefs, and function
declarations from C sources without a compiler front end. A tree-sitter
based strategy is used when it can parse the file; otherwise a regex/scan
heuristic engine takes over.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.csift.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&forceFallback, "heuristic", false, "skip the tree-sitter strategy and use the heuristic engine")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".csift" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csift")
	}

	viper.SetEnvPrefix("CSIFT")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// loadConfig materializes the effective configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// newExtractor builds the orchestrator. The precise strategy is omitted
// when --heuristic forces the fallback engine.
func newExtractor() *extract.Extractor {
	var preciseStrategy extract.Strategy
	if !forceFallback {
		preciseStrategy = precise.NewStrategy()
	}

	extractor := extract.NewExtractor(preciseStrategy, heuristic.NewEngine())
	extractor.SetVerbose(verbose)
	return extractor
}
