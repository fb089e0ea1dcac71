package harness

import (
	"testing"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

func TestSingleBattleProducesTerminalOrDrawResult(t *testing.T) {
	red := NewSearcherConfig("red", board.Red, 30)
	blue := NewSearcherConfig("blue", board.Blue, 30)

	result := SingleBattle(red, blue, nil, 200, 11)

	if len(result.Snapshots) == 0 {
		t.Fatalf("expected at least the initial snapshot")
	}
	if result.Winner != rules.Draw && !rules.Terminal(result.FinalBoard) {
		t.Fatalf("non-draw result must have a terminal final board, got %+v", result.FinalBoard)
	}
	if len(result.Moves)+1 != len(result.Snapshots) {
		t.Fatalf("snapshots (%d) should be exactly one more than moves (%d) when every ply applies a move", len(result.Snapshots), len(result.Moves))
	}
}

func TestSingleBattleIsDeterministicForFixedSeeds(t *testing.T) {
	red := NewSearcherConfig("red", board.Red, 20)
	blue := NewSearcherConfig("blue", board.Blue, 20)

	r1 := SingleBattle(red, blue, nil, 200, 99)
	r2 := SingleBattle(red, blue, nil, 200, 99)

	if r1.Winner != r2.Winner || r1.Plies != r2.Plies {
		t.Fatalf("same-seed battles diverged: (%v,%d) vs (%v,%d)", r1.Winner, r1.Plies, r2.Winner, r2.Plies)
	}
	if !r1.FinalBoard.Equal(r2.FinalBoard) {
		t.Fatalf("same-seed battles produced different final boards")
	}
}
