package pmcts

import (
	"math"
	"math/rand"
)

// selectChance draws a chance-node child of node by its probability
// distribution: at the root this deterministically returns the observed
// die (probability 1.0 on it, 0.0 elsewhere); at every other node it's
// uniform over the six dice (spec §4.4 phase 1).
func (t *Tree) selectChance(idx decisionIndex, rng *rand.Rand) chanceIndex {
	node := t.decision(idx)
	r := rng.Float64()
	var cumulative float64
	for d := 0; d < 6; d++ {
		ci := node.dice[d]
		cumulative += t.chance(ci).Probability
		if r < cumulative {
			return ci
		}
	}
	// Floating point fallback: return the last die with nonzero mass.
	for d := 5; d >= 0; d-- {
		if t.chance(node.dice[d]).Probability > 0 {
			return node.dice[d]
		}
	}
	return node.dice[5]
}

// selectUCB1 picks the decision-node child of a chance node that
// maximises UCB1 = mean + c*sqrt(2*ln(N_parent)/n_child). Any zero-visit
// child is chosen immediately; ties are broken by insertion order
// (spec §4.4 phase 1).
func selectUCB1(t *Tree, parent decisionIndex, ci chanceIndex, explorationConst float64) decisionIndex {
	chn := t.chance(ci)
	if len(chn.Children) == 0 {
		return noDecision
	}

	parentVisits := t.decision(parent).Visits()
	lnParent := math.Log(math.Max(1, float64(parentVisits)))

	best := noDecision
	bestScore := math.Inf(-1)
	for _, childIdx := range chn.Children {
		child := t.decision(childIdx)
		if child.Visits() == 0 {
			return childIdx
		}

		mean := float64(child.Mean())
		score := mean + explorationConst*math.Sqrt(2*lnParent/float64(child.Visits()))
		if score > bestScore {
			bestScore = score
			best = childIdx
		}
	}
	return best
}

const noDecision decisionIndex = -1
