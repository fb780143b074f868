package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagConfig  string
	flagPattern string
	flagSpeed   string
	flagWidth   int
	flagHeight  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive simulation",
	Long: `Start an interactive Game of Life session.

Controls:
  Click      - Toggle a cell
  Space      - Run/Pause
  N          - Advance one generation (while paused)
  G          - Scatter random cells
  C          - Clear the board and pause
  Q/Ctrl+C   - Quit

Speed options:
  slow   - One generation every 120 ticks (reference cadence)
  normal - One generation every 30 ticks
  fast   - One generation every 6 ticks
  fixed  - Keep the config's own cadence

Examples:
  life play
  life play --pattern glider
  life play --speed fast --width 60 --height 30
  life play --config ./my-life.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom session config YAML")
	playCmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern to place at board center (see 'life patterns')")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, fixed")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load session config: custom path, user dir, working dir, embedded default
	lifeCfg, err := config.LoadLife(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	config.ApplySpeedPreset(&lifeCfg, config.SpeedPreset(flagSpeed))
	if flagWidth > 0 {
		lifeCfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		lifeCfg.Grid.Height = flagHeight
	}
	if cmd.Flags().Changed("fps") {
		lifeCfg.Clock.TickRate = flagFPS
	}

	if err := lifeCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for board placement
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: lifeCfg.Clock.TickRate,
		Seed:     flagSeed,
	}

	s := sim.New(lifeCfg)

	// Optional starting pattern, centered on the board
	if flagPattern != "" {
		p, ok := patterns.Get(flagPattern)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", flagPattern)
			fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
			os.Exit(1)
		}
		s.SetSeed(p.ID, p.Centered(lifeCfg.Grid.Width, lifeCfg.Grid.Height))
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open sessions database, continuing without history", "err", err)
		store = nil
	}

	// Run the session
	runErr := tui.Run(s, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
