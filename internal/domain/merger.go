package domain

import (
	"fmt"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	m "gooze.dev/pkg/subsume/internal/model"
)

// MergeIndistinguishable collapses nodes with equal detecting tests into one
// node per equivalence class. The first node of each class survives and the
// survivors keep the order in which their class was first seen. Undetected
// nodes form a class of their own like any other equal set.
func MergeIndistinguishable(arena *Arena, nodes []*Node) []*Node {
	survivors := orderedmap.New[string, *Node]()

	for _, candidate := range nodes {
		key := coverageKey(candidate.Tests)

		survivor, found := survivors.Get(key)
		if !found {
			survivors.Set(key, candidate)
			continue
		}

		arena.Merge(survivor, candidate)
	}

	merged := make([]*Node, 0, survivors.Len())
	for pair := survivors.Oldest(); pair != nil; pair = pair.Next() {
		merged = append(merged, pair.Value)
	}

	slog.Debug("merged indistinguishable mutants", "before", len(nodes), "after", len(merged))

	return merged
}

// coverageKey is equal for two sets iff the sets are equal.
func coverageKey(tests m.TestSet) string {
	sorted := tests.Sorted()

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = string(id)
	}

	return strings.Join(parts, "\x00")
}

// PublicID renders the public identifier for enumeration index i.
func PublicID(i int) string {
	return fmt.Sprintf("X%02x", i)
}

// EnumeratePublicIDs renames nodes to dense public identifiers starting at
// counter start and returns the mapping back to the original mutants together
// with the next free counter value.
func EnumeratePublicIDs(nodes []*Node, start int) ([]m.NodeMapping, int) {
	mapping := make([]m.NodeMapping, 0, len(nodes))
	counter := start

	for _, node := range nodes {
		node.Name = PublicID(counter)
		counter++

		mapping = append(mapping, m.NodeMapping{
			Node:    node.Name,
			Mutants: append([]m.MutantID(nil), node.Members...),
			Weight:  node.Weight,
			Tests:   node.Tests.Sorted(),
		})
	}

	return mapping, counter
}
