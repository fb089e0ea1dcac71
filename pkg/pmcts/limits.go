package pmcts

import "time"

// Limits bounds a single Search call. Trimmed from the teacher's
// depth/node/memory/thread budget (pkg/mcts/limits.go) down to the two
// caps spec §4.4/§4.5 actually names: a simulation count and an optional
// per-move wall-time cap. There is no depth limit, no transposition
// table, no iterative deepening (spec §1 Non-goals).
type Limits struct {
	Simulations      int
	Movetime         time.Duration // 0 means no wall-time cap
	ExplorationConst float64
}

// DefaultLimits returns the spec's default exploration constant (1.0,
// spec §4.5) with no movetime cap and a caller-supplied simulation budget
// of zero (callers must SetSimulations before searching).
func DefaultLimits() *Limits {
	return &Limits{ExplorationConst: 1.0}
}

// SetSimulations sets the fixed iteration budget (spec §4.4's
// simulation_budget parameter).
func (l *Limits) SetSimulations(n int) *Limits {
	l.Simulations = n
	return l
}

// SetMovetime sets a cooperative wall-time cap; the search loop checks it
// at iteration boundaries only (spec §4.5, §5 "Cancellation").
func (l *Limits) SetMovetime(d time.Duration) *Limits {
	l.Movetime = d
	return l
}

// SetExplorationConst sets the multiplicative scale on UCB1's
// exploration term (spec §4.5, default 1.0).
func (l *Limits) SetExplorationConst(c float64) *Limits {
	l.ExplorationConst = c
	return l
}

// limiter tracks a running search's elapsed time against Limits.Movetime.
// Mirrors the teacher's _Timer (pkg/mcts/timer.go), trimmed to the one
// thing this spec's budget needs: "has the cap elapsed yet".
type limiter struct {
	limits *Limits
	start  time.Time
}

func newLimiter(limits *Limits) *limiter {
	return &limiter{limits: limits, start: time.Now()}
}

// ok reports whether the search may run another iteration: the
// simulation budget hasn't been exhausted and, if a movetime cap is set,
// it hasn't elapsed. Checked only at iteration boundaries — an in-flight
// iteration always completes (spec §4.5 "Cancellation is cooperative").
func (lm *limiter) ok(completed int) bool {
	if completed >= lm.limits.Simulations {
		return false
	}
	if lm.limits.Movetime > 0 && time.Since(lm.start) >= lm.limits.Movetime {
		return false
	}
	return true
}
