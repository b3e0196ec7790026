package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/catch"
	"github.com/vovakirdan/eggdrop/internal/platform/tui"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game.
Tab opens the replay browser. After a game ends, press B to
return to the menu and play again.

Examples:
  eggdrop menu
  eggdrop menu --fps 30
  eggdrop menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset := mustPreset()
	catch.SetConfigPath(flagConfig)

	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsReplays {
			if !browseReplays(store, cfg, logger) {
				return
			}
			continue
		}

		preset = menuResult.Preset
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.Run(catch.NewWithPreset(preset), runCfg, tui.Options{
			Store:      store,
			Logger:     logger,
			Record:     store != nil,
			Difficulty: string(preset),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if final.IsQuitting() {
			reportRun(final)
			return
		}
	}
}

// browseReplays runs the replay browser until the user goes back.
// It returns false if the user quit.
func browseReplays(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) bool {
	for {
		res, err := tui.RunReplays(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if res.Watch == 0 {
			return res.GoBack
		}
		if err := watchRun(store, res.Watch, cfg, logger); err != nil {
			logger.Warn("could not play replay", "id", res.Watch, "error", err)
		}
	}
}
