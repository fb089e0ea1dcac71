// Package harness plays EinStein würfelt nicht! games between configured
// PMCTS searchers: single games, parallel batches, and round-robin
// tournaments. Grounded on the teacher's pkg/bench (VersusArena), trimmed
// from a generic two-agent benchmark down to this one game's battle
// contract (spec §4.5).
package harness

import (
	"time"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/pkg/pmcts"
)

// SearcherConfig bundles everything single_battle needs to run one side:
// display name, side, simulation budget, exploration constant (default
// 1.0), and an optional per-move wall-time cap (spec §4.5).
type SearcherConfig struct {
	Name             string
	Side             board.Player
	Simulations      int
	ExplorationConst float64
	Movetime         time.Duration // 0 means no cap
}

// NewSearcherConfig returns a config with the spec's default exploration
// constant already set.
func NewSearcherConfig(name string, side board.Player, simulations int) SearcherConfig {
	return SearcherConfig{
		Name:             name,
		Side:             side,
		Simulations:      simulations,
		ExplorationConst: 1.0,
	}
}

func (c SearcherConfig) limits() *pmcts.Limits {
	l := pmcts.DefaultLimits().SetSimulations(c.Simulations).SetExplorationConst(c.ExplorationConst)
	if c.Movetime > 0 {
		l.SetMovetime(c.Movetime)
	}
	return l
}
