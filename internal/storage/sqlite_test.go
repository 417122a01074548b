package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{
		Difficulty:    "beginner",
		Outcome:       "won",
		DurationSecs:  42,
		CellsRevealed: 52,
		BoardSource:   SourceRandom,
	})
	if err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, want > 0", id)
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("RecentResults() returned %d rows, want 1", len(results))
	}

	r := results[0]
	if r.Difficulty != "beginner" || r.Outcome != "won" {
		t.Errorf("result = %q/%q, want beginner/won", r.Difficulty, r.Outcome)
	}
	if r.DurationSecs != 42 || r.CellsRevealed != 52 {
		t.Errorf("result duration/cells = %d/%d, want 42/52", r.DurationSecs, r.CellsRevealed)
	}
	if r.CreatedAt.IsZero() {
		t.Error("result CreatedAt should be set")
	}
}

func TestFastestWinsOrdering(t *testing.T) {
	store := openTestStore(t)

	durations := []int{90, 30, 60}
	for _, d := range durations {
		if _, err := store.SaveResult(Result{
			Difficulty:   "beginner",
			Outcome:      "won",
			DurationSecs: d,
			BoardSource:  SourceRandom,
		}); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}
	// Losses must not appear in the leaderboard.
	if _, err := store.SaveResult(Result{
		Difficulty:   "beginner",
		Outcome:      "lost",
		DurationSecs: 5,
		BoardSource:  SourceRandom,
	}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}

	wins, err := store.FastestWins("beginner", 10)
	if err != nil {
		t.Fatalf("FastestWins() error = %v", err)
	}
	if len(wins) != 3 {
		t.Fatalf("FastestWins() returned %d rows, want 3", len(wins))
	}
	want := []int{30, 60, 90}
	for i, w := range wins {
		if w.DurationSecs != want[i] {
			t.Errorf("wins[%d].DurationSecs = %d, want %d", i, w.DurationSecs, want[i])
		}
	}
}

func TestFastestWinsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{
			Difficulty:   "expert",
			Outcome:      "won",
			DurationSecs: 100 + i,
			BoardSource:  SourceRandom,
		}); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	wins, err := store.FastestWins("expert", 3)
	if err != nil {
		t.Fatalf("FastestWins() error = %v", err)
	}
	if len(wins) != 3 {
		t.Errorf("FastestWins(limit=3) returned %d rows", len(wins))
	}
}

func TestFastestWinsFiltersDifficulty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Difficulty: "beginner", Outcome: "won", DurationSecs: 10, BoardSource: SourceRandom}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if _, err := store.SaveResult(Result{Difficulty: "expert", Outcome: "won", DurationSecs: 20, BoardSource: SourceRandom}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}

	wins, err := store.FastestWins("expert", 10)
	if err != nil {
		t.Fatalf("FastestWins() error = %v", err)
	}
	if len(wins) != 1 || wins[0].Difficulty != "expert" {
		t.Errorf("FastestWins(expert) = %+v, want single expert row", wins)
	}
}

func TestDifficultyStats(t *testing.T) {
	store := openTestStore(t)

	entries := []Result{
		{Difficulty: "intermediate", Outcome: "won", DurationSecs: 120, BoardSource: SourceRandom},
		{Difficulty: "intermediate", Outcome: "won", DurationSecs: 80, BoardSource: SourceRandom},
		{Difficulty: "intermediate", Outcome: "lost", DurationSecs: 15, BoardSource: SourceRandom},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	stats, err := store.DifficultyStats("intermediate")
	if err != nil {
		t.Fatalf("DifficultyStats() error = %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, want 3", stats.Games)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.BestSecs != 80 {
		t.Errorf("BestSecs = %d, want 80", stats.BestSecs)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestDifficultyStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.DifficultyStats("beginner")
	if err != nil {
		t.Fatalf("DifficultyStats() error = %v", err)
	}
	if stats.Games != 0 || stats.Wins != 0 || stats.BestSecs != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be zero with no games")
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Difficulty: "beginner", Outcome: "won", DurationSecs: 10, BoardSource: SourceRandom}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if _, err := store.SaveResult(Result{Difficulty: "expert", Outcome: "won", DurationSecs: 20, BoardSource: SourceRandom}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}

	if err := store.ClearResults("beginner"); err != nil {
		t.Fatalf("ClearResults() error = %v", err)
	}

	if wins, _ := store.FastestWins("beginner", 10); len(wins) != 0 {
		t.Errorf("beginner wins after clear = %d, want 0", len(wins))
	}
	if wins, _ := store.FastestWins("expert", 10); len(wins) != 1 {
		t.Errorf("expert wins after clear = %d, want 1", len(wins))
	}
}
