package harness

import (
	"sort"

	"github.com/leo-luoson/einstein-pmcts/board"
)

// Scoring constants for a single match (spec §4.5 tournament): win=3,
// draw=1, loss=0.
const (
	MatchWin  = 3
	MatchDraw = 1
	MatchLoss = 0
)

// MatchResult is one unordered-pair match's outcome: i as Red, j as Blue,
// games_per_match games played, no colour swap (spec §4.5, §9(c)).
type MatchResult struct {
	NameI, NameJ         string
	IWins, JWins, Draws  int
	ScoreI, ScoreJ       int
}

// TournamentResult is the full round-robin output: every match played plus
// the final ranking by total score, highest first, ties broken by the
// configs' input order (stable sort).
type TournamentResult struct {
	Matches []MatchResult
	Scores  map[string]int
	Ranking []string
}

// Tournament implements spec §4.5 tournament: round-robin over unordered
// pairs (i<j); each pair plays gamesPerMatch games with i as Red and j as
// Blue. A match is won by whichever side has strictly more game wins; a
// tied match awards MatchDraw to both.
func Tournament(configs []SearcherConfig, gamesPerMatch int, baseSeed int64) TournamentResult {
	scores := make(map[string]int, len(configs))
	order := make([]string, 0, len(configs))
	for _, c := range configs {
		scores[c.Name] = 0
		order = append(order, c.Name)
	}

	var matches []MatchResult
	for i := 0; i < len(configs); i++ {
		for j := i + 1; j < len(configs); j++ {
			ci := configs[i]
			ci.Side = board.Red
			cj := configs[j]
			cj.Side = board.Blue

			seed := baseSeed ^ (int64(i) << 16) ^ int64(j)
			results := BatchBattle(ci, cj, gamesPerMatch, true, 4, nil, nil, seed)

			iWins, jWins, draws := CountOutcomes(results)
			m := MatchResult{NameI: ci.Name, NameJ: cj.Name, IWins: iWins, JWins: jWins, Draws: draws}

			switch {
			case iWins > jWins:
				m.ScoreI, m.ScoreJ = MatchWin, MatchLoss
			case jWins > iWins:
				m.ScoreI, m.ScoreJ = MatchLoss, MatchWin
			default:
				m.ScoreI, m.ScoreJ = MatchDraw, MatchDraw
			}

			scores[ci.Name] += m.ScoreI
			scores[cj.Name] += m.ScoreJ
			matches = append(matches, m)
		}
	}

	ranking := make([]string, len(order))
	copy(ranking, order)
	sort.SliceStable(ranking, func(a, b int) bool {
		return scores[ranking[a]] > scores[ranking[b]]
	})

	return TournamentResult{Matches: matches, Scores: scores, Ranking: ranking}
}
