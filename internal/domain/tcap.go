package domain

import (
	m "gooze.dev/pkg/subsume/internal/model"
)

// ScoreTCAP assigns every original mutant the test coverage adequacy of its
// node: 1 for dominators, otherwise the share of its detecting tests that also
// detect a dominator, and 0 for undetected nodes.
func ScoreTCAP(h *Hierarchy, dominators Dominators) []m.TCAPRow {
	var rows []m.TCAPRow

	for _, node := range h.Nodes() {
		score := nodeTCAP(node, dominators)

		for _, mutant := range node.Members {
			rows = append(rows, m.TCAPRow{Mutant: mutant, Score: score})
		}
	}

	return rows
}

func nodeTCAP(node *Node, dominators Dominators) float64 {
	if dominators.Contains(node) {
		return 1.0
	}

	if node.Tests.Empty() {
		return 0.0
	}

	covered := node.Tests.Intersect(dominators.Tests)

	return float64(covered.Len()) / float64(node.Tests.Len())
}
