package pmcts

import (
	"math/rand"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

const rolloutPlyCap = 200

// Searcher runs PMCTS searches with a fixed configuration. Each Search
// call builds and discards its own Tree — there is no state carried
// between calls beyond rng and limits (spec §3 "Lifecycle", §5).
type Searcher struct {
	Limits *Limits
	rng    *rand.Rand
}

// NewSearcher builds a Searcher seeded from seed, so that two Searchers
// built from the same seed and run on the same inputs are identical
// (spec §8 "Idempotence").
func NewSearcher(limits *Limits, seed int64) *Searcher {
	return &Searcher{Limits: limits, rng: rand.New(rand.NewSource(seed))}
}

// Search implements the public contract from spec §4.4:
// search(board, die, player, simulation_budget) -> Option<Move>. Before
// building a tree it checks rules.ImmediateWin, mirroring the original's
// priority-before-MCTS behavior.
func (s *Searcher) Search(b board.Board, die int, p board.Player) (rules.Move, bool) {
	legal := rules.LegalMoves(b, die, p)
	if len(legal) == 0 {
		return rules.Move{}, false
	}
	if len(legal) == 1 {
		return legal[0], true
	}
	if move, ok := rules.ImmediateWin(b, die, p); ok {
		return move, true
	}

	tree := newTree()
	tree.root = tree.newDecision(b, p, rules.Move{}, true)
	tree.expand(tree.root, die)

	lim := newLimiter(s.Limits)
	for i := 0; lim.ok(i); i++ {
		s.iterate(tree, die)
	}

	return s.bestMove(tree, die)
}

// iterate runs one selection/expansion/rollout/backprop cycle (spec §4.4).
func (s *Searcher) iterate(tree *Tree, rootDie int) {
	leaf := s.selection(tree)
	result := s.rollout(tree, leaf)
	s.backpropagate(tree, leaf, result)
}

// selection walks root -> leaf per spec §4.4 phase 1, expanding the leaf
// in place (phase 2) before returning it so the caller always rolls out
// from a just-expanded-or-already-leaf node.
func (s *Searcher) selection(tree *Tree) decisionIndex {
	idx := tree.root

	for {
		node := tree.decision(idx)
		if !node.Expanded() || node.Terminal() {
			break
		}

		ci := tree.selectChance(idx, s.rng)
		if len(tree.chance(ci).Children) == 0 {
			// No legal move under the sampled die at this state:
			// selection terminates here (spec §4.4 phase 1, last
			// sentence).
			return idx
		}

		next := selectUCB1(tree, idx, ci, s.Limits.ExplorationConst)
		if next == noDecision {
			return idx
		}
		idx = next
	}

	if !tree.decision(idx).Expanded() && !tree.decision(idx).Terminal() {
		tree.expand(idx, 0)
	}

	return idx
}

// rollout simulates random play from leaf to a terminal position or the
// 200-ply cap, returning a scalar from the perspective of leaf's player
// (spec §4.4 phase 3): 0.0 if that player wins, 1.0 if the opponent wins,
// 0.5 for a draw, capped rollout, or a step with no legal moves.
func (s *Searcher) rollout(tree *Tree, leaf decisionIndex) Result {
	node := tree.decision(leaf)
	b := node.Board
	side := node.Player
	origin := node.Player

	for ply := 0; ply < rolloutPlyCap && !rules.Terminal(b); ply++ {
		die := s.rng.Intn(6) + 1
		legal := rules.LegalMoves(b, die, side)
		if len(legal) == 0 {
			break
		}
		move := legal[s.rng.Intn(len(legal))]
		b = rules.Apply(b, move)
		side = side.Opponent()
	}

	if !rules.Terminal(b) {
		return 0.5
	}

	switch rules.Winner(b) {
	case rules.RedWins:
		if origin == board.Red {
			return 0.0
		}
		return 1.0
	case rules.BlueWins:
		if origin == board.Blue {
			return 0.0
		}
		return 1.0
	default:
		return 0.5
	}
}

// backpropagate updates leaf (visits+1, value+=result), then walks up the
// DAG via the first parent chance node (stable insertion order),
// inverting the scalar at every hop, stopping at the root (spec §4.4
// phase 4, §9).
func (s *Searcher) backpropagate(tree *Tree, leaf decisionIndex, result Result) {
	idx := leaf
	for {
		node := tree.decision(idx)
		node.visits++
		node.value += result

		if len(node.parents) == 0 {
			return
		}

		result = -result
		idx = tree.chance(node.parents[0]).Parent
	}
}

// bestMove implements spec §4.4 "Best-move extraction": among the
// root's children under the observed die's chance node, return the move
// of the child with the highest visit count, ties broken by insertion
// order.
func (s *Searcher) bestMove(tree *Tree, die int) (rules.Move, bool) {
	root := tree.decision(tree.root)
	ci := root.dice[die-1]
	children := tree.chance(ci).Children
	if len(children) == 0 {
		return rules.Move{}, false
	}

	best := children[0]
	for _, childIdx := range children[1:] {
		if tree.decision(childIdx).Visits() > tree.decision(best).Visits() {
			best = childIdx
		}
	}
	return tree.decision(best).Move, true
}
