package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/games/catch"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a new game would use, after the config file
and the difficulty preset have been applied.

The config file is looked up in this order:
  1. --config
  2. ~/.eggdrop/configs/catch.yaml
  3. built-in defaults

Examples:
  eggdrop config
  eggdrop config --difficulty hard
  eggdrop config --defaults > ~/.eggdrop/configs/catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML(catch.GameID))
		return
	}

	preset := mustPreset()
	if flagConfig != "" {
		if _, err := config.LoadCatch(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	catch.SetConfigPath(flagConfig)
	catch.SetDifficultyPreset(string(preset))

	data, err := config.MarshalCatch(catch.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
