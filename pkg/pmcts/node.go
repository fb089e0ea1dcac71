package pmcts

import (
	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

// DecisionNode is a Max/Min vertex: a concrete board, whose turn it is,
// and the statistics UCB1 selects on. Statistics live only here — chance
// nodes are pure routing/probability carriers (spec §3).
type DecisionNode struct {
	Board    board.Board
	Player   board.Player // side to move at this node
	Move     rules.Move   // move that produced this node; zero value at root
	IsRoot   bool
	terminal bool
	expanded bool

	visits int32
	value  Result // accumulated, signed

	// dice[d-1] is the chance-child for die d. Only meaningful once
	// expanded is true.
	dice [6]chanceIndex

	// parents lists every chance node this decision node is a child of
	// (a decision node may be shared across several dice once expanded,
	// spec §3/§4.3). Back-propagation always walks parents[0] — the
	// "first parent, stable insertion order" rule from spec §4.4/§9.
	parents []chanceIndex
}

// Expanded reports whether this node has all six chance children.
func (n *DecisionNode) Expanded() bool {
	return n.expanded
}

// Terminal reports whether the position at this node ends the game.
func (n *DecisionNode) Terminal() bool {
	return n.terminal
}

// Visits returns the number of times this node has been backed up through.
func (n *DecisionNode) Visits() int32 {
	return n.visits
}

// Value returns the accumulated (signed) backprop value.
func (n *DecisionNode) Value() Result {
	return n.value
}

// Mean returns the average value, or 0.5 if unvisited.
func (n *DecisionNode) Mean() Result {
	if n.visits == 0 {
		return 0.5
	}
	return n.value / Result(n.visits)
}

// ChanceNode carries the probability mass for one die face rolled at its
// parent decision node, and the decision-node children that die's legal
// moves lead to.
type ChanceNode struct {
	Die         int
	Probability float64
	Parent      decisionIndex
	Children    []decisionIndex
}
