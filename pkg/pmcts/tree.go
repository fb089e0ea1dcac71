package pmcts

import (
	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/rules"
)

// Tree owns one search's decision/chance node arenas. It is created fresh
// for each Search call and released when the call returns — there is no
// sharing of trees across searches (spec §3 "Lifecycle").
type Tree struct {
	decisions []DecisionNode
	chances   []ChanceNode
	root      decisionIndex
}

func newTree() *Tree {
	return &Tree{
		decisions: make([]DecisionNode, 0, 256),
		chances:   make([]ChanceNode, 0, 256),
	}
}

func (t *Tree) decision(i decisionIndex) *DecisionNode {
	return &t.decisions[i]
}

func (t *Tree) chance(i chanceIndex) *ChanceNode {
	return &t.chances[i]
}

func (t *Tree) newDecision(b board.Board, p board.Player, m rules.Move, isRoot bool) decisionIndex {
	idx := decisionIndex(len(t.decisions))
	t.decisions = append(t.decisions, DecisionNode{
		Board:    b,
		Player:   p,
		Move:     m,
		IsRoot:   isRoot,
		terminal: rules.Terminal(b),
	})
	return idx
}

func (t *Tree) newChance(die int, probability float64, parent decisionIndex) chanceIndex {
	idx := chanceIndex(len(t.chances))
	t.chances = append(t.chances, ChanceNode{
		Die:         die,
		Probability: probability,
		Parent:      parent,
	})
	return idx
}

// Root returns the root decision node.
func (t *Tree) Root() *DecisionNode {
	return t.decision(t.root)
}

// expand performs the one-shot expansion from spec §4.3/§4.4 phase 2: all
// six chance children are created at once (probability mass concentrated
// on rootDie if this is the root being expanded with a known die,
// uniform 1/6 otherwise), and one decision-node child is created per
// unique legal move across all six dice, linked under every chance node
// whose die actually admits it.
func (t *Tree) expand(idx decisionIndex, rootDie int) {
	nodeBoard := t.decision(idx).Board
	nodePlayer := t.decision(idx).Player
	nodeIsRoot := t.decision(idx).IsRoot
	if t.decision(idx).expanded || t.decision(idx).terminal {
		return
	}

	isRootExpansion := nodeIsRoot && rootDie != 0
	var chanceIdx [6]chanceIndex
	for d := 1; d <= 6; d++ {
		prob := 1.0 / 6.0
		if isRootExpansion {
			if d == rootDie {
				prob = 1.0
			} else {
				prob = 0.0
			}
		}
		ci := t.newChance(d, prob, idx)
		chanceIdx[d-1] = ci
		t.decision(idx).dice[d-1] = ci
	}

	legalByDie := make([][]rules.Move, 6)
	moveToChild := make(map[rules.Move]decisionIndex)
	for d := 1; d <= 6; d++ {
		legalByDie[d-1] = rules.LegalMoves(nodeBoard, d, nodePlayer)
	}

	for d := 1; d <= 6; d++ {
		for _, m := range legalByDie[d-1] {
			if _, ok := moveToChild[m]; ok {
				continue
			}
			nextBoard := rules.Apply(nodeBoard, m)
			childIdx := t.newDecision(nextBoard, nodePlayer.Opponent(), m, false)
			moveToChild[m] = childIdx
		}
	}

	for d := 1; d <= 6; d++ {
		ci := chanceIdx[d-1]
		seen := make(map[decisionIndex]bool, len(legalByDie[d-1]))
		for _, m := range legalByDie[d-1] {
			childIdx := moveToChild[m]
			if seen[childIdx] {
				continue
			}
			seen[childIdx] = true
			t.chance(ci).Children = append(t.chance(ci).Children, childIdx)
			t.decision(childIdx).parents = append(t.decision(childIdx).parents, ci)
		}
	}

	t.decision(idx).expanded = true
}
