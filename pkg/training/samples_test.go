package training

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/pkg/harness"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

func twoMoveGame() harness.GameResult {
	b0 := board.New().Place(0, 0, board.Token(1))
	b1 := b0.Move(board.Cell{Row: 0, Col: 0}, board.Cell{Row: 1, Col: 0})
	b2 := b1.Move(board.Cell{Row: 1, Col: 0}, board.Cell{Row: 4, Col: 4})

	return harness.GameResult{
		Winner:     rules.RedWins,
		Plies:      2,
		FinalBoard: b2,
		Snapshots:  []board.Board{b0, b1, b2},
		Moves: []harness.MoveRecord{
			{Move: rules.Move{From: board.Cell{Row: 0, Col: 0}, To: board.Cell{Row: 1, Col: 0}}, Player: board.Red, Die: 1},
			{Move: rules.Move{From: board.Cell{Row: 1, Col: 0}, To: board.Cell{Row: 4, Col: 4}}, Player: board.Red, Die: 5},
		},
	}
}

func TestExtractOneSamplePerNonFinalSnapshot(t *testing.T) {
	samples := Extract(twoMoveGame())

	if len(samples) != 2 {
		t.Fatalf("expected 2 samples (non-final snapshots only), got %d", len(samples))
	}
	for i, s := range samples {
		if s.MoveIndex != i {
			t.Fatalf("sample %d has move_index %d", i, s.MoveIndex)
		}
		if s.GameLength != 2 {
			t.Fatalf("sample %d has game_length %d, want 2", i, s.GameLength)
		}
		if s.Value != 1 {
			t.Fatalf("sample %d: mover is the Red winner, want value=1, got %d", i, s.Value)
		}
	}
}

func TestExtractBatchConcatenatesInOrder(t *testing.T) {
	g := twoMoveGame()
	all := ExtractBatch([]harness.GameResult{g, g})
	if len(all) != 4 {
		t.Fatalf("expected 4 samples across two identical 2-ply games, got %d", len(all))
	}
}

func TestWriteFileProducesPrettyJSONArray(t *testing.T) {
	samples := Extract(twoMoveGame())
	path := filepath.Join(t.TempDir(), "samples.json")

	if err := WriteFile(path, samples); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var roundTrip []Sample
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(roundTrip) != len(samples) {
		t.Fatalf("round-tripped %d samples, want %d", len(roundTrip), len(samples))
	}
}
