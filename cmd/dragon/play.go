package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Flappy Dragon on the main menu.

Controls:
  P          - Play
  H          - High score screen
  Q          - Quit (on menus)
  Space      - Flap
  W          - Nudge forward
  Q          - Nudge back (while playing)
  Ctrl+S     - Save a text screenshot to ~/.flappy-dragon/screenshots
  Ctrl+C     - Exit immediately

Examples:
  dragon play
  dragon play --seed 42
  dragon play --config ./my-dragon.yaml --log-file dragon.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := tuning.Field.Width, tuning.Field.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "terminal", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(tuning, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
