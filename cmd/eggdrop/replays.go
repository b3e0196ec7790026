package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/platform/tui"
	"github.com/vovakirdan/eggdrop/internal/replay"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

var (
	flagPlain    bool
	flagLimit    int
	flagHeadless bool
	flagExport   string
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded games",
	Long: `Browse the replay journal. Enter watches a game, D deletes it.

With --plain the newest games are printed as a table instead.

Examples:
  eggdrop replays
  eggdrop replays --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch, verify or export a recorded game",
	Long: `Play back a recorded game in the terminal.

--headless re-simulates the game without a terminal and prints the
final score, which makes it easy to check a recording.
--export writes the recording as YAML ("-" for stdout).

Examples:
  eggdrop replay 12
  eggdrop replay 12 --headless
  eggdrop replay 12 --export run12.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive browser")
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to print with --plain")

	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Re-simulate without a terminal and print the result")
	replayCmd.Flags().StringVar(&flagExport, "export", "", "Write the recording as YAML to this file")
}

// mustStore opens the replay journal or exits.
func mustStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay journal: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runReplays(_ *cobra.Command, _ []string) {
	store := mustStore()
	defer store.Close()

	if flagPlain {
		if err := printRuns(store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()
	browseReplays(store, terminalConfig(), logger)
}

// printRuns prints the newest runs as a table.
func printRuns(store *storage.Store, limit int) error {
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'eggdrop play' to record one.")
		return nil
	}

	fmt.Printf("  %-6s  %-16s  %-10s  %-6s  %s\n", "ID", "Date", "Difficulty", "Length", "Seed")
	fmt.Printf("  %-6s  %-16s  %-10s  %-6s  %s\n", "--", "----", "----------", "------", "----")
	for _, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "custom"
		}
		fmt.Printf("  %-6d  %-16s  %-10s  %-6s  %d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), difficulty, tui.FormatLength(r), r.Seed)
	}
	return nil
}

// loadLog reads a run from the journal as a replay log.
func loadLog(store *storage.Store, id int64) (replay.Log, error) {
	if store == nil {
		return replay.Log{}, errors.New("no replay journal")
	}
	run, err := store.Run(id)
	if err != nil {
		return replay.Log{}, err
	}
	return replay.FromRun(run)
}

// watchRun plays a recorded run in the terminal.
func watchRun(store *storage.Store, id int64, cfg core.RuntimeConfig, logger *log.Logger) error {
	l, err := loadLog(store, id)
	if err != nil {
		return err
	}
	return tui.RunReplay(l, cfg, tui.Options{Logger: logger})
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store := mustStore()
	l, err := loadLog(store, id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagExport != "":
		exportLog(l, flagExport)
	case flagHeadless:
		verifyLog(l)
	default:
		logger, closeLog := mustLogger(io.Discard)
		defer closeLog()
		if err := tui.RunReplay(l, terminalConfig(), tui.Options{Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
			os.Exit(1)
		}
	}
}

func exportLog(l replay.Log, path string) {
	data, err := replay.Encode(l)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding replay: %v\n", err)
		os.Exit(1)
	}
	if path == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d ticks, %d input changes)\n", path, l.Ticks, len(l.Frames))
}

func verifyLog(l replay.Log) {
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	res, err := replay.Play(l)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("replay finished", "ticks", res.Ticks, "events", res.Events)

	status := "running"
	if res.State.GameOver {
		status = "game over"
	}
	fmt.Printf("Score: %d  Level: %d  Lives: %d  Eggs caught: %d  (%s after %d ticks)\n",
		res.State.Score, res.State.Level, res.State.Lives, res.ObjectsCaught, status, res.Ticks)
}
