package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-1024/internal/config"
	"github.com/vovakirdan/tui-1024/internal/engine"
	"github.com/vovakirdan/tui-1024/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game with the saved settings.

Controls:
  Arrows/WASD/hjkl  - Swipe
  R                 - New game
  O                 - Settings (board size, target)
  T                 - Statistics
  ?                 - More keys
  Q/Ctrl+C          - Quit

Settings changed in the game are saved to the settings file.

Examples:
  t1024 play
  t1024 play --seed 42
  t1024 play --config ./settings.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.t1024/t1024.log", "Where to write logs while the board is on screen")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadSettings()

	// The board owns the terminal, so logs go to a file.
	logPath := config.ExpandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "t1024")

	store, recorder := openRecorder(logger)
	if store != nil {
		defer store.Close()
	}

	e, err := engine.New(cfg.Engine(), newSource(), engine.WithResultHandler(recorder.Handle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	save := func(es engine.Settings) error {
		return config.Save(flagConfig, config.FromEngine(es))
	}

	logger.Info("Game started", "board", cfg.BoardSize, "target", cfg.TargetScore)
	model := tui.NewModel(e, recorder, width, height,
		tui.WithSettingsSaver(save),
		tui.WithModelLogger(logger))

	if err := tui.Run(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
