package harness

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// ConsoleReporter prints batch and tournament progress to a terminal,
// colouring progress lines, game failures and the tournament leader.
// A simplified, single-line-at-a-time
// stand-in for the teacher's row-addressed ListenerLike/DefaultListener
// (pkg/bench/listener.go) — this harness has no concept of per-worker
// screen rows, so it reports a running line instead of redrawing a grid.
type ConsoleReporter struct {
	out *termenv.Output
}

// NewConsoleReporter wraps w (typically os.Stdout) with termenv's
// colour-profile detection.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: termenv.NewOutput(w)}
}

// OnProgress reports BatchBattle progress (spec §4.5 "Progress callbacks
// fire on every completed game").
func (r *ConsoleReporter) OnProgress(completed, total int) {
	style := r.out.String(fmt.Sprintf("  %d/%d games complete", completed, total))
	fmt.Fprintln(r.out, style.Foreground(r.out.Color("4")))
}

// OnFailure reports a recovered per-game panic (spec §7 WorkerFailure).
func (r *ConsoleReporter) OnFailure(gameIdx int, reason any) {
	style := r.out.String(fmt.Sprintf("  game %d failed: %v", gameIdx, reason))
	fmt.Fprintln(r.out, style.Foreground(r.out.Color("1")).Bold())
}

// OnBatchSummary prints aggregate win/draw counts and the imbalance
// statistic spec §8 scenario 5 checks.
func (r *ConsoleReporter) OnBatchSummary(results []GameResult) {
	redWins, blueWins, draws := CountOutcomes(results)
	fmt.Fprintln(r.out, r.out.String(fmt.Sprintf(
		"red %d - blue %d - draws %d (imbalance %.3f)",
		redWins, blueWins, draws, WinRateImbalance(results),
	)).Bold())
}

// OnMatch prints one round-robin match's line.
func (r *ConsoleReporter) OnMatch(m MatchResult) {
	fmt.Fprintln(r.out, r.out.String(fmt.Sprintf(
		"%s %d - %d %s (draws %d) -> %d:%d",
		m.NameI, m.IWins, m.JWins, m.NameJ, m.Draws, m.ScoreI, m.ScoreJ,
	)))
}

// OnTournament prints the final ranking, highest score first.
func (r *ConsoleReporter) OnTournament(result TournamentResult) {
	for i, name := range result.Ranking {
		line := fmt.Sprintf("%d. %s — %d", i+1, name, result.Scores[name])
		style := r.out.String(line)
		if i == 0 {
			style = style.Foreground(r.out.Color("2")).Bold()
		}
		fmt.Fprintln(r.out, style)
	}
}
