package domain

import (
	m "gooze.dev/pkg/subsume/internal/model"
)

// FindLowestLayer returns every detected node without children together with
// the tests that none of its parents needs. When the parents together already
// cover all of its tests, the full detecting set is reported instead so that a
// detected node never has an empty unique set.
func FindLowestLayer(h *Hierarchy) []m.LowestLayerRow {
	var rows []m.LowestLayerRow

	for _, node := range h.Nodes() {
		if node.OutDegree() != 0 || !node.Detected() {
			continue
		}

		unique := node.Tests.Clone()
		for _, parent := range h.Parents(node) {
			unique = unique.Difference(parent.Tests)
		}

		if unique.Empty() {
			unique = node.Tests.Clone()
		}

		node.Unique = unique

		rows = append(rows, m.LowestLayerRow{
			Node:        node.Name,
			Mutants:     append([]m.MutantID(nil), node.Members...),
			UniqueTests: unique.Sorted(),
			Tests:       node.Tests.Sorted(),
		})
	}

	return rows
}
