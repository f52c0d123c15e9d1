// breaker is Binary Breaker, a binary/decimal conversion game, played in
// the terminal.
//
// Usage:
//
//	breaker play            - Play a game
//	breaker scores          - Show the high score and best sessions
//	breaker reset-scores    - Delete the high score and session history
//	breaker config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.breaker/config.yaml)
//	--db <path>         - High score storage path
//	--seed <value>      - Set RNG seed for reproducible task sequences
//	--log-file <path>   - Log file (default: ~/.breaker/breaker.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Binary Breaker - convert between binary and decimal against the clock",
	Long: `Binary Breaker is a 20-level game about binary numbers.

In CLASSIC mode a decimal number is shown and you set the four bits that
encode it. In REVERSE mode four bits are shown and you add up their values.
From level 7 the modes mix, and from level 13 every task has a countdown.

Available commands:
  play          - Play a game
  scores        - View the high score and best sessions
  reset-scores  - Delete all scores
  config        - Print the effective configuration

Settings come from the config file, then BREAKER_* environment variables
(a .env file in the working directory is loaded), then flags.`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to high score storage")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetScoresCmd)
	rootCmd.AddCommand(configCmd)
}
