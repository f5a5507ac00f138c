package storage

import (
	"os"
	"testing"

	"github.com/hailam/shogiplay/internal/shogi"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPositionLibrary(t *testing.T) {
	s := openTest(t)

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := s.SavePosition("start", shogi.StartSFEN); err != nil {
			t.Fatalf("SavePosition failed: %v", err)
		}

		sfen, err := s.LoadPosition("start")
		if err != nil {
			t.Fatalf("LoadPosition failed: %v", err)
		}
		if sfen != shogi.StartSFEN {
			t.Errorf("Loaded %q, want %q", sfen, shogi.StartSFEN)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		other := "4k4/9/9/9/9/9/9/9/4K4 b - 1"
		if err := s.SavePosition("start", other); err != nil {
			t.Fatalf("SavePosition failed: %v", err)
		}
		sfen, err := s.LoadPosition("start")
		if err != nil {
			t.Fatalf("LoadPosition failed: %v", err)
		}
		if sfen != other {
			t.Errorf("Loaded %q after overwrite, want %q", sfen, other)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := s.LoadPosition("nope"); err == nil {
			t.Error("Expected error for missing position")
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := s.SavePosition("endgame", "4k4/9/9/9/9/9/9/9/4K4 b P 1"); err != nil {
			t.Fatalf("SavePosition failed: %v", err)
		}
		positions, err := s.ListPositions()
		if err != nil {
			t.Fatalf("ListPositions failed: %v", err)
		}
		if len(positions) != 2 {
			t.Errorf("Listed %d positions, want 2", len(positions))
		}
		names := map[string]bool{}
		for _, p := range positions {
			names[p.Name] = true
			if p.SavedAt.IsZero() {
				t.Errorf("Position %q has zero SavedAt", p.Name)
			}
		}
		if !names["start"] || !names["endgame"] {
			t.Errorf("Missing expected names in %v", names)
		}
	})
}

func TestGameRecords(t *testing.T) {
	s := openTest(t)

	t.Run("RecordAndLoad", func(t *testing.T) {
		id, err := s.RecordGame(GameRecord{
			StartSFEN: shogi.StartSFEN,
			Moves:     []string{"7g7f", "3c3d", "8h2b+"},
			Result:    ResultSenteWin,
		})
		if err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
		if id == "" {
			t.Fatal("RecordGame returned empty ID")
		}

		rec, err := s.LoadGame(id)
		if err != nil {
			t.Fatalf("LoadGame failed: %v", err)
		}
		if rec.Result != ResultSenteWin {
			t.Errorf("Result = %q, want %q", rec.Result, ResultSenteWin)
		}
		if len(rec.Moves) != 3 {
			t.Errorf("Loaded %d moves, want 3", len(rec.Moves))
		}
		if rec.PlayedAt.IsZero() {
			t.Error("PlayedAt was not filled in")
		}
	})

	t.Run("UnknownResult", func(t *testing.T) {
		if _, err := s.RecordGame(GameRecord{Result: "jishogi"}); err == nil {
			t.Error("Expected error for unknown result")
		}
	})

	t.Run("MissingGame", func(t *testing.T) {
		if _, err := s.LoadGame("no-such-id"); err == nil {
			t.Error("Expected error for missing game")
		}
	})
}

func TestGameStats(t *testing.T) {
	s := openTest(t)

	// No games yet
	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Errorf("Expected 0 games played, got %d", stats.GamesPlayed)
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected 0 win rate, got %.2f", stats.WinRate())
	}

	games := []struct {
		result string
		moves  int
	}{
		{ResultSenteWin, 90},
		{ResultGoteWin, 110},
		{ResultSenteWin, 75},
		{ResultDraw, 256},
	}
	for _, g := range games {
		if _, err := s.RecordGame(GameRecord{
			StartSFEN: shogi.StartSFEN,
			Moves:     make([]string, g.moves),
			Result:    g.result,
		}); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
	}

	stats, err = s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, want 4", stats.GamesPlayed)
	}
	if stats.SenteWins != 2 || stats.GoteWins != 1 || stats.Draws != 1 {
		t.Errorf("Results = %d/%d/%d, want 2/1/1",
			stats.SenteWins, stats.GoteWins, stats.Draws)
	}
	if stats.TotalMoves != 90+110+75+256 {
		t.Errorf("TotalMoves = %d, want %d", stats.TotalMoves, 90+110+75+256)
	}
	if rate := stats.WinRate(); rate != 50 {
		t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
	}
}

func TestDataPaths(t *testing.T) {
	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
