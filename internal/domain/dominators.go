package domain

import (
	m "gooze.dev/pkg/subsume/internal/model"
)

// Dominators is the set of detected DAG roots and the union of their tests.
type Dominators struct {
	Nodes []*Node
	Tests m.TestSet
	Rows  []m.DominatorRow
}

// Contains reports whether n is one of the dominator nodes.
func (d Dominators) Contains(n *Node) bool {
	for _, node := range d.Nodes {
		if node == n {
			return true
		}
	}

	return false
}

// FindDominators returns every node without parents that is detected by at
// least one test.
func FindDominators(h *Hierarchy) Dominators {
	result := Dominators{
		Tests: m.NewTestSet(),
	}

	for _, node := range h.Nodes() {
		if node.InDegree() != 0 || !node.Detected() {
			continue
		}

		result.Nodes = append(result.Nodes, node)
		result.Tests.AddAll(node.Tests)
		result.Rows = append(result.Rows, m.DominatorRow{
			Node:    node.Name,
			Mutants: append([]m.MutantID(nil), node.Members...),
			Tests:   node.Tests.Sorted(),
		})
	}

	return result
}
