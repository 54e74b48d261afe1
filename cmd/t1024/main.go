// t1024 is a sliding-tile merge game for the terminal.
//
// Usage:
//
//	t1024 play               - Play in this terminal
//	t1024 serve              - Start SSH server for remote play
//	t1024 stats              - Show finished games
//	t1024 settings show      - Print the active settings
//	t1024 settings set       - Change and save settings
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.t1024/settings.yaml)
//	--db <path>         - Statistics database (default: ~/.t1024/stats.db)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-1024/internal/config"
	"github.com/vovakirdan/tui-1024/internal/stats"
	"github.com/vovakirdan/tui-1024/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t1024",
	Short: "t1024 - slide and merge tiles in your terminal",
	Long: `t1024 is a sliding-tile merge game. Swipe the board, merge equal
tiles and reach the target tile before the board fills up.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  stats     - View finished games
  settings  - Show or change board size and target

Examples:
  t1024 play
  t1024 play --seed 42
  t1024 stats --sort score --desc
  t1024 settings set --board-size 5 --target 4096
  t1024 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML (default: ~/.t1024/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t1024/stats.db", "Path to statistics database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
}

// newLogger builds a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newSource returns a seeded random source for the engine.
func newSource() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// openRecorder opens the statistics database and loads past games into a
// recorder. Without a database, games are kept in memory only.
func openRecorder(logger *log.Logger) (*storage.Store, *stats.Recorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open statistics database", "path", flagDBPath, "error", err)
		return nil, stats.NewRecorder(nil, stats.WithLogger(logger))
	}

	existing, err := store.Records(stats.SortBySteps, stats.Ascending, 0)
	if err != nil {
		logger.Warn("could not load past games", "error", err)
	}
	return store, stats.NewRecorder(existing, stats.WithSink(store), stats.WithLogger(logger))
}

// loadSettings loads settings from --config or the default search path.
func loadSettings() config.Settings {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
