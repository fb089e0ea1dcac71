package harness

import (
	"time"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/dice"
	"github.com/leo-luoson/einstein-pmcts/pkg/pmcts"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

// DefaultPlyCap is single_battle's default ply_cap (spec §4.5).
const DefaultPlyCap = 200

// MoveRecord is one (Move, Player, Die) triple from a game log (spec §3
// GameResult).
type MoveRecord struct {
	Move   rules.Move
	Player board.Player
	Die    int
}

// GameResult is the full record of a single played game (spec §3).
type GameResult struct {
	Winner      rules.Outcome
	Plies       int
	WallTime    time.Duration
	ThinkTime   map[board.Player]time.Duration
	FinalBoard  board.Board
	Moves       []MoveRecord
	Snapshots   []board.Board // every board traversed, including the initial
}

// SingleBattle implements spec §4.5 single_battle: plays one game between
// configRed and configBlue starting from initialBoard (or the default
// opening if nil), rolling die with diceSeed, capped at plyCap plies.
func SingleBattle(configRed, configBlue SearcherConfig, initialBoard *board.Board, plyCap int, diceSeed int64) GameResult {
	if plyCap <= 0 {
		plyCap = DefaultPlyCap
	}

	d := dice.New(diceSeed)
	var b board.Board
	if initialBoard != nil {
		b = *initialBoard
	} else {
		b = board.DefaultOpening(d.Rand())
	}

	result := GameResult{
		ThinkTime: map[board.Player]time.Duration{board.Red: 0, board.Blue: 0},
		Snapshots: []board.Board{b},
	}

	searchers := map[board.Player]*pmcts.Searcher{
		board.Red:  pmcts.NewSearcher(configRed.limits(), diceSeed+1),
		board.Blue: pmcts.NewSearcher(configBlue.limits(), diceSeed+2),
	}

	side := board.Red
	start := time.Now()

	for ply := 0; ply < plyCap; ply++ {
		if rules.Terminal(b) {
			break
		}

		die := d.Roll()
		legal := rules.LegalMoves(b, die, side)
		if len(legal) == 0 {
			side = side.Opponent()
			continue
		}

		thinkStart := time.Now()
		move, ok := searchers[side].Search(b, die, side)
		result.ThinkTime[side] += time.Since(thinkStart)
		if !ok {
			side = side.Opponent()
			continue
		}

		b = rules.Apply(b, move)
		result.Moves = append(result.Moves, MoveRecord{Move: move, Player: side, Die: die})
		result.Snapshots = append(result.Snapshots, b)
		result.Plies++
		side = side.Opponent()
	}

	result.WallTime = time.Since(start)
	result.FinalBoard = b

	if rules.Terminal(b) {
		result.Winner = rules.Winner(b)
	} else {
		result.Winner = rules.Draw
	}

	return result
}
