package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-1024/internal/config"
)

var (
	flagBoardSize  int
	flagTarget     int
	flagFourChance float64
	flagDefaults   bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change game settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active settings as YAML",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change and save settings",
	Long: `Change board size, target score or four-tile chance and save them.

Board size must be between 3 and 7. Target must be 1024, 2048, 4096 or 8192.
Settings are written to --config, or ~/.t1024/settings.yaml by default.

Examples:
  t1024 settings set --board-size 5
  t1024 settings set --target 4096
  t1024 settings set --four-chance 0.1`,
	Args: cobra.NoArgs,
	Run:  runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().IntVar(&flagBoardSize, "board-size", 0, "Board side length (3-7)")
	settingsSetCmd.Flags().IntVar(&flagTarget, "target", 0, "Target tile (1024, 2048, 4096, 8192)")
	settingsSetCmd.Flags().Float64Var(&flagFourChance, "four-chance", 0, "Probability a new tile is a 4 (0-1)")

	settingsShowCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default settings file instead")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadSettings()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding settings: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runSettingsSet(cmd *cobra.Command, _ []string) {
	cfg := loadSettings()

	if cmd.Flags().Changed("board-size") {
		cfg.BoardSize = flagBoardSize
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetScore = flagTarget
	}
	if cmd.Flags().Changed("four-chance") {
		chance := flagFourChance
		cfg.FourChance = &chance
	}

	if err := config.Save(flagConfig, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	fmt.Printf("Saved %dx%d board, target %d to %s\n", cfg.BoardSize, cfg.BoardSize, cfg.TargetScore, path)
}
