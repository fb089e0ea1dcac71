// Package rules implements EinStein würfelt nicht! legal-move generation,
// move application, terminal/winner detection, and a positional heuristic.
// Every function here is pure: a given (board, die, player) always yields
// the same answer, and nothing here mutates a board.Board in place.
package rules

import "github.com/leo-luoson/einstein-pmcts/board"

// Move is a single legal (or candidate) move, always tied to the specific
// (board, die, player) context it was generated under.
type Move struct {
	From, To board.Cell
}

// direction vectors per player, in generation order (used to break ties
// deterministically wherever move order matters, e.g. insertion order in
// the chance-MCTS tree).
var redDirs = []board.Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
var blueDirs = []board.Cell{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: -1}}

func directions(p board.Player) []board.Cell {
	if p == board.Red {
		return redDirs
	}
	return blueDirs
}

func pieceRange(p board.Player) (lo, hi int) {
	if p == board.Red {
		return 1, 6
	}
	return 7, 12
}

// MovablePieces applies the nearest-neighbours rule: the die-selected
// canonical token if present, else the nearest present tokens above and
// below it (in the player's own range), in that order.
func MovablePieces(b board.Board, die int, p board.Player) []board.Token {
	canonical := board.CanonicalToken(p, die)
	if b.Has(canonical) {
		return []board.Token{canonical}
	}

	lo, hi := pieceRange(p)
	var upper, lower board.Token
	for t := int(canonical) + 1; t <= hi; t++ {
		if b.Has(board.Token(t)) {
			upper = board.Token(t)
			break
		}
	}
	for t := int(canonical) - 1; t >= lo; t-- {
		if b.Has(board.Token(t)) {
			lower = board.Token(t)
			break
		}
	}

	var out []board.Token
	if upper != board.Empty {
		out = append(out, upper)
	}
	if lower != board.Empty {
		out = append(out, lower)
	}
	return out
}

// LegalMoves enumerates every legal move for (board, die, player).
// Destination occupants (own or enemy) are never filtered: capture-own and
// capture-enemy are both legal here, application handles the overwrite.
func LegalMoves(b board.Board, die int, p board.Player) []Move {
	pieces := MovablePieces(b, die, p)
	if len(pieces) == 0 {
		return nil
	}

	dirs := directions(p)
	moves := make([]Move, 0, len(pieces)*len(dirs))
	for _, piece := range pieces {
		from, ok := b.Find(piece)
		if !ok {
			continue
		}
		for _, d := range dirs {
			to := board.Cell{Row: from.Row + d.Row, Col: from.Col + d.Col}
			if to.InBounds() {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// Apply writes the moving token into the destination cell, clearing the
// source. Any pre-existing destination token is overwritten. Does not
// validate that m is legal; callers must pre-validate via LegalMoves.
func Apply(b board.Board, m Move) board.Board {
	return b.Move(m.From, m.To)
}

// Terminal reports whether b is a finished position: Red reached (4,4),
// Blue reached (0,0), or either side has zero tokens left.
func Terminal(b board.Board) bool {
	if t := b.At(board.Size-1, board.Size-1); t != board.Empty && t.Owner() == board.Red {
		return true
	}
	if t := b.At(0, 0); t != board.Empty && t.Owner() == board.Blue {
		return true
	}
	return b.Count(board.Red) == 0 || b.Count(board.Blue) == 0
}

// Winner result values.
type Outcome int

const (
	NoWinner Outcome = iota // non-terminal position
	RedWins
	BlueWins
	Draw
)

// Winner reports the winner of a terminal position. For a non-terminal
// position it returns NoWinner; callers that cap ply count should map that
// case to Draw themselves (spec §4.1).
func Winner(b board.Board) Outcome {
	if t := b.At(board.Size-1, board.Size-1); t != board.Empty && t.Owner() == board.Red {
		return RedWins
	}
	if t := b.At(0, 0); t != board.Empty && t.Owner() == board.Blue {
		return BlueWins
	}
	if b.Count(board.Red) == 0 {
		return BlueWins
	}
	if b.Count(board.Blue) == 0 {
		return RedWins
	}
	return NoWinner
}

// ImmediateWin scans the legal moves for (b, die, p) for one that ends the
// game in p's favor, returning it if found. Supplements the distilled
// spec with original_source/core/game_engine.py's check_immediate_win: not
// pondering, not an opening book, not a transposition table, so it isn't
// excluded by spec.md's Non-goals.
func ImmediateWin(b board.Board, die int, p board.Player) (Move, bool) {
	for _, m := range LegalMoves(b, die, p) {
		next := Apply(b, m)
		if Terminal(next) {
			switch Winner(next) {
			case RedWins:
				if p == board.Red {
					return m, true
				}
			case BlueWins:
				if p == board.Blue {
					return m, true
				}
			}
		}
	}
	return Move{}, false
}

// Evaluate is the optional positional heuristic from spec §4.1: material
// difference scaled by 10, plus a (10 - L1 distance-to-goal) contribution
// per on-board token, signed from p's perspective. PMCTS as specified uses
// pure-random rollouts and never calls this; it exists for callers that
// wire an off-by-default heuristic rollout policy (spec §9 "Heuristic
// dormant").
func Evaluate(b board.Board, p board.Player) float64 {
	score := float64(b.Count(p)-b.Count(p.Opponent())) * 10

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			t := b.At(r, c)
			if t == board.Empty {
				continue
			}

			var dist int
			if t.Owner() == board.Red {
				dist = abs(board.Size-1-r) + abs(board.Size-1-c)
			} else {
				dist = abs(r) + abs(c)
			}
			value := float64(10 - dist)

			if t.Owner() == p {
				score += value
			} else {
				score -= value
			}
		}
	}

	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
