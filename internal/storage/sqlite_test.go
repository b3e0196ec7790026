package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "catch", TickRate: 60, Config: []byte("a"), Inputs: []byte("b")}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("runs after reopen = %d, expected 1", len(runs))
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	in := Run{
		GameID:     "catch",
		Seed:       -42,
		TickRate:   60,
		Difficulty: "hard",
		Config:     []byte("lives: 3\n"),
		Ticks:      5400,
		Inputs:     []byte("- tick: 1\n"),
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("SaveRun() id = %d, expected positive", id)
	}

	out, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if out.GameID != in.GameID || out.Seed != in.Seed || out.TickRate != in.TickRate ||
		out.Difficulty != in.Difficulty || out.Ticks != in.Ticks {
		t.Errorf("Run() = %+v, expected fields of %+v", out, in)
	}
	if string(out.Config) != string(in.Config) || string(out.Inputs) != string(in.Inputs) {
		t.Errorf("blobs differ: config %q inputs %q", out.Config, out.Inputs)
	}
	if out.Duration() != 90*time.Second {
		t.Errorf("Duration() = %s, expected 1m30s", out.Duration())
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{}); err == nil {
		t.Error("SaveRun() without game ID should fail")
	}
}

func TestStoreListRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveRun(Run{
			GameID:   "catch",
			Seed:     int64(i),
			TickRate: 60,
			Config:   []byte("cfg"),
			Inputs:   []byte("inputs"),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns(3) returned %d runs", len(runs))
	}

	// Newest first
	if runs[0].Seed != 4 || runs[2].Seed != 2 {
		t.Errorf("order = %d, %d, %d, expected 4, 3, 2", runs[0].Seed, runs[1].Seed, runs[2].Seed)
	}
	if runs[0].Inputs != nil || runs[0].Config != nil {
		t.Error("ListRuns should not load blobs")
	}

	// Default limit
	all, err := store.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("ListRuns(0) returned %d runs, expected 5", len(all))
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Run(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Run(999) error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteRun(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRun(999) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "catch", TickRate: 60, Config: []byte("c"), Inputs: []byte("i")})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.Run(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Run() after delete error = %v, expected ErrNotFound", err)
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time) = %v", got)
	}
	if got := parseTime("2024-03-01 12:30:00"); !got.Equal(now) {
		t.Errorf("parseTime(string) = %v, expected %v", got, now)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v, expected zero", got)
	}
}
