// eggdrop is a terminal egg catching game.
//
// Usage:
//
//	eggdrop play              - Play a game
//	eggdrop menu              - Pick a difficulty interactively
//	eggdrop list              - List available games
//	eggdrop serve             - Start SSH server for remote play
//	eggdrop replays           - Browse recorded games
//	eggdrop replay <id>       - Watch or export a recorded game
//	eggdrop config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay journal path (default: ~/.eggdrop/replays.db)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
//
// Every global flag also reads its default from an EGGDROP_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/eggdrop/internal/games/catch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// settings holds the environment defaults for the flags.
var settings, settingsErr = config.LoadSettings()

func main() {
	if settingsErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", settingsErr)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggdrop",
	Short: "Egg Drop - catch falling eggs in your terminal",
	Long: `Egg Drop is a terminal arcade game. Eggs fall from the top of the
screen; move the basket to catch them before they hit the ground.
Every 20 points the eggs fall faster. Three broken eggs end the game.

Available commands:
  play     - Play a game directly
  menu     - Pick a difficulty, then play
  list     - Show all available games
  serve    - Start SSH server for remote play
  replays  - Browse recorded games
  replay   - Watch, verify or export a recorded game
  config   - Print the effective game configuration

Examples:
  eggdrop play
  eggdrop play --difficulty hard
  eggdrop menu
  eggdrop serve --ssh :2222
  eggdrop replay 12 --headless`,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", settings.DBPath, "Path to replay journal")
	pf.StringVar(&flagConfig, "config", settings.ConfigPath, "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", settings.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", settings.LogFile, "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
