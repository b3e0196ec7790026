package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/catch"
	"github.com/vovakirdan/eggdrop/internal/platform/tui"
	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to catch.

Controls:
  Left/A/H     - Move basket left
  Right/D/L    - Move basket right
  Mouse        - Basket follows the pointer
  P/Esc        - Pause
  R            - Restart
  Enter        - New game (after game over)
  B            - Back (while paused or after game over)
  Ctrl+S       - Screenshot
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower eggs, more time between drops
  normal - The classic pace
  hard   - Fast eggs from the first drop
  fixed  - Classic pace that never speeds up

Every game is recorded to the replay journal unless --no-record is given.

Examples:
  eggdrop play
  eggdrop play --difficulty easy
  eggdrop play --seed 42 --no-record
  eggdrop play --config ./my-catch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the game to the replay journal")
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// mustPreset validates --difficulty.
func mustPreset() config.DifficultyPreset {
	p, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

// openStore opens the replay journal. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay journal: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := catch.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eggdrop list' to see available games.")
		os.Exit(1)
	}

	preset := mustPreset()
	catch.SetConfigPath(flagConfig)
	catch.SetDifficultyPreset(string(preset))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	var store *storage.Store
	if !flagNoRecord {
		store = openStore()
	}

	final, runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Record:     store != nil,
		Difficulty: string(preset),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	reportRun(final)
}

// reportRun prints the final score and where the recording went.
func reportRun(m tui.Model) {
	st := m.State()
	fmt.Printf("Score: %d  Level: %d\n", st.Score, st.Level)
	if id := m.SavedRun(); id != 0 {
		fmt.Printf("Saved as replay %d. Watch it with: eggdrop replay %d\n", id, id)
	} else if err := m.SaveError(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
	}
}
