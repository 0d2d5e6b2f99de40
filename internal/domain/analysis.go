package domain

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	m "gooze.dev/pkg/subsume/internal/model"
)

// Analysis holds everything derived from one snapshot of kill data.
type Analysis struct {
	Arena       *Arena
	Mutants     int
	Nodes       []*Node
	Mapping     []m.NodeMapping
	Hierarchy   *Hierarchy
	Dominators  Dominators
	LowestLayer []m.LowestLayerRow
	TCAP        []m.TCAPRow
}

// NewNodes creates one node per distinct mutant and assigns the killing tests.
// Kill data for a mutant that is not in the list fails with ErrUnknownMutant.
func NewNodes(arena *Arena, data m.KillData) ([]*Node, error) {
	byMutant := make(map[m.MutantID]*Node, len(data.Mutants))
	nodes := make([]*Node, 0, len(data.Mutants))

	for _, mutant := range data.Mutants {
		if _, ok := byMutant[mutant]; ok {
			continue
		}

		node := arena.NewNode(mutant)
		byMutant[mutant] = node
		nodes = append(nodes, node)
	}

	for _, mutant := range slices.Sorted(maps.Keys(data.Kills)) {
		node, ok := byMutant[mutant]
		if !ok {
			return nil, fmt.Errorf("%w: %q has kill data but is not in the mutant list", ErrUnknownMutant, mutant)
		}

		if err := node.AddTests(data.Kills[mutant].Sorted()...); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// Analyze runs the whole pipeline: node creation, merging, public naming,
// hierarchy construction and the three analyses.
func Analyze(data m.KillData) (*Analysis, error) {
	arena := NewArena()

	nodes, err := NewNodes(arena, data)
	if err != nil {
		return nil, fmt.Errorf("create nodes: %w", err)
	}

	merged := MergeIndistinguishable(arena, nodes)
	mapping, _ := EnumeratePublicIDs(merged, 0)

	hierarchy, err := BuildHierarchy(arena, merged)
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: %w", err)
	}

	dominators := FindDominators(hierarchy)
	lowest := FindLowestLayer(hierarchy)
	tcap := ScoreTCAP(hierarchy, dominators)

	slog.Info("analysis complete",
		"mutants", len(nodes),
		"nodes", len(merged),
		"edges", hierarchy.EdgeCount(),
		"dominators", len(dominators.Nodes),
		"lowest_layer", len(lowest),
	)

	return &Analysis{
		Arena:       arena,
		Mutants:     len(nodes),
		Nodes:       merged,
		Mapping:     mapping,
		Hierarchy:   hierarchy,
		Dominators:  dominators,
		LowestLayer: lowest,
		TCAP:        tcap,
	}, nil
}

// Undetected counts merged nodes that no test kills.
func (a *Analysis) Undetected() int {
	count := 0

	for _, node := range a.Nodes {
		if !node.Detected() {
			count++
		}
	}

	return count
}

// Reports flattens the analysis into the tabular records handed to report
// emission and display. TCAP rows are only included when withTCAP is set.
func (a *Analysis) Reports(runID string, createdAt time.Time, withTCAP bool) m.Reports {
	reports := m.Reports{
		Summary: m.Summary{
			RunID:          runID,
			CreatedAt:      createdAt,
			Mutants:        a.Mutants,
			Nodes:          len(a.Nodes),
			Edges:          a.Hierarchy.EdgeCount(),
			Dominators:     len(a.Dominators.Nodes),
			LowestLayer:    len(a.LowestLayer),
			Undetected:     a.Undetected(),
			DominatorTests: a.Dominators.Tests.Sorted(),
			TCAPEnabled:    withTCAP,
		},
		Dominators:  a.Dominators.Rows,
		LowestLayer: a.LowestLayer,
		Mapping:     a.Mapping,
		Graph:       a.Hierarchy.View(),
	}

	if withTCAP {
		reports.TCAP = a.TCAP
	}

	return reports
}
