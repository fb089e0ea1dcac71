// Package pmcts implements Probability-guided MCTS (PMCTS): a two-layer
// tree of decision nodes (Max/Min, one per side-to-move board state) and
// chance nodes (one per die face), searched with UCB1 at decision nodes
// and a probability-weighted random draw at chance nodes.
//
// A single Tree is owned exclusively by one Search call: it is built from
// scratch, searched to a simulation budget or movetime cap, and discarded.
// There is no sharing of trees across searches and no search-internal
// concurrency (spec §5) — parallelism lives one level up, in the
// harness package's worker-pooled batch/tournament play.
package pmcts

// Result is a rollout/backprop scalar. A rollout yields a value in [0,1]:
// 0.0 means the rollout's originating player won, 1.0 means they lost, 0.5
// is a draw or capped rollout (spec §4.4 phase 3); backprop negates it at
// every hop above the originating node. This inverted convention, combined with the
// sign flip applied at every backprop hop, is deliberate — see spec §9
// Open Question (a). Do not "fix" the orientation.
type Result float64

// decisionIndex and chanceIndex are arena handles: stable integer
// identities for nodes that may have more than one parent (a decision
// node can sit under several chance nodes of the same parent decision
// node, spec §3/§9), which a reallocating slice-of-structs with raw
// pointers (the teacher's approach) can't share as cheaply.
type decisionIndex int32
type chanceIndex int32

const noIndex = -1
