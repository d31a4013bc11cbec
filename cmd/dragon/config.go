package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way "play" does and print it as YAML.
The output is a complete file that can be edited and passed back with --config.

Search order:
  --config, $DRAGON_CONFIG, ~/.flappy-dragon/dragon.yaml,
  ./configs/dragon.yaml, built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(tuning)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
