// Package cmd implements the typedunits CLI's subcommands. Structured on
// CalcMark-go-calcmark's cmd/calcmark/cmd package: a package-level *cobra.
// Command per subcommand, registered onto rootCmd from each file's init(),
// and an Execute() entry point that prints errors to stderr and exits 1.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "typedunits",
	Short: "A units-of-measurement calculator",
	Long: `typedunits parses, converts, and lists physical units backed by an
exact rational/float hybrid scale representation.

Examples:
  typedunits eval "kg*m/s^2"
  typedunits convert 100 km/h m/s
  typedunits units list`,
}

var cfgFile string

// Execute runs the root command, printing any error to stderr and exiting
// with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.typedunits.yaml)")
	rootCmd.PersistentFlags().Bool("auto-create-units", true, "treat unknown identifiers as new root units instead of raising an error")
	rootCmd.PersistentFlags().String("output", "text", "output format (bound into config; every subcommand prints plain text regardless)")

	_ = viper.BindPFlag("auto_create_units", rootCmd.PersistentFlags().Lookup("auto-create-units"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig loads configuration from flags, the TYPEDUNITS_* environment,
// and an optional $HOME/.typedunits.yaml, in descending priority per
// viper's usual precedence (flags beat env beat config file beat default).
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".typedunits")
		}
	}

	viper.SetEnvPrefix("TYPEDUNITS")
	viper.AutomaticEnv()

	// A missing config file is fine; a malformed one is reported so the
	// user notices a typo rather than silently falling back to defaults.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "typedunits: reading config: %v\n", err)
		}
	}
}
