// barista is a meditative coffee pouring game for the terminal.
//
// Usage:
//
//	barista play             - Brew a cup in the local terminal
//	barista serve            - Start SSH server for remote play
//	barista history          - Show the pour journal
//	barista fortune          - Read the fortune of a pour without playing
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set journal path (default: ~/.barista/pours.db, empty disables)
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barista",
	Short: "Zen Coffee - master the art of the pour in your terminal",
	Long: `Zen Coffee is a terminal pouring game. Tip the pot, fill the cup to
the gold ring without spilling, and discover your fortune in the grounds.

Available commands:
  play     - Brew a cup in the local terminal
  serve    - Start SSH server for remote play
  history  - Show the pour journal
  fortune  - Read the fortune of a pour without playing

The fortune is written by Gemini when GEMINI_API_KEY (or API_KEY) is set,
either in the environment or in a .env file. Without a key an offline
reading is used.

Examples:
  barista play
  barista serve --ssh :2222
  barista history --best
  barista fortune --fill 87.5 --time 4.2`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barista/pours.db", "Path to pour journal (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(fortuneCmd)
}
