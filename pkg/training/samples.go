// Package training converts completed harness games into the JSON training
// samples a policy/value network would train on (spec §4.6). It only
// shapes data — no learning, no network, no persistence beyond the
// caller-specified output path (spec's Non-goals / OUT OF SCOPE list).
package training

import (
	"encoding/json"
	"os"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/pkg/harness"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

// Sample is one (board, to-move, terminal-value) training record (spec
// §4.6): `{ board_state, current_player, value, game_length, move_index }`.
type Sample struct {
	BoardState    [5][5]int `json:"board_state"`
	CurrentPlayer int       `json:"current_player"`
	Value         int       `json:"value"`
	GameLength    int       `json:"game_length"`
	MoveIndex     int       `json:"move_index"`
}

// Extract emits one sample per non-final board snapshot in result (spec
// §4.6): current_player is read from the move log entry at the same
// index — the player who moved away from that snapshot — and value is +1
// if current_player won the game, -1 if they lost, 0 on a draw.
func Extract(result harness.GameResult) []Sample {
	gameLength := len(result.Moves)
	samples := make([]Sample, 0, gameLength)

	for i := 0; i < gameLength; i++ {
		snapshot := result.Snapshots[i]
		mover := result.Moves[i].Player

		samples = append(samples, Sample{
			BoardState:    snapshot.Rows(),
			CurrentPlayer: int(mover),
			Value:         outcomeValue(result.Winner, mover),
			GameLength:    gameLength,
			MoveIndex:     i,
		})
	}

	return samples
}

func outcomeValue(winner rules.Outcome, mover board.Player) int {
	switch winner {
	case rules.RedWins:
		if mover == board.Red {
			return 1
		}
		return -1
	case rules.BlueWins:
		if mover == board.Blue {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// ExtractBatch flattens Extract across every game in results, in input
// order (spec §4.6/§5: "inside a game, moves are totally ordered ... across
// parallel games nothing is ordered" — batch order here is simply results'
// order, already whatever order the caller assembled it in).
func ExtractBatch(results []harness.GameResult) []Sample {
	var all []Sample
	for _, r := range results {
		all = append(all, Extract(r)...)
	}
	return all
}

// WriteFile pretty-prints samples as a UTF-8 JSON array to path (spec §6:
// "A batch writes an array of such records to a caller-specified path in
// UTF-8, pretty-printed").
func WriteFile(path string, samples []Sample) error {
	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
