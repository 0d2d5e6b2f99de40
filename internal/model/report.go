package model

import "time"

// DominatorRow is one row of the dominator table.
type DominatorRow struct {
	Node    string
	Mutants []MutantID
	Tests   []TestID
}

// LowestLayerRow is one row of the lowest-layer table.
type LowestLayerRow struct {
	Node        string
	Mutants     []MutantID
	UniqueTests []TestID
	Tests       []TestID
}

// TCAPRow is the adequacy score of one original mutant.
type TCAPRow struct {
	Mutant MutantID
	Score  float64
}

// NodeMapping maps a public node identifier back to the mutants it represents.
type NodeMapping struct {
	Node    string
	Mutants []MutantID
	Weight  int
	Tests   []TestID
}

// GraphNode is a read-only view of one DAG vertex.
type GraphNode struct {
	ID        int64
	Label     string
	Tests     []TestID
	InDegree  int
	OutDegree int
}

// GraphEdge is a covering relation From ⊂ To.
type GraphEdge struct {
	From int64
	To   int64
}

// Graph is a read-only view of the subsumption DAG for plotting.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// Summary holds run-level counts.
type Summary struct {
	RunID          string    `yaml:"run_id"`
	CreatedAt      time.Time `yaml:"created_at"`
	Mutants        int       `yaml:"mutants"`
	Nodes          int       `yaml:"nodes"`
	Edges          int       `yaml:"edges"`
	Dominators     int       `yaml:"dominators"`
	LowestLayer    int       `yaml:"lowest_layer"`
	Undetected     int       `yaml:"undetected"`
	DominatorTests []TestID  `yaml:"dominator_tests"`
	TCAPEnabled    bool      `yaml:"tcap_enabled"`
}

// Reports is everything a run produces for reporting and display.
type Reports struct {
	Summary     Summary
	Dominators  []DominatorRow
	LowestLayer []LowestLayerRow
	TCAP        []TCAPRow
	Mapping     []NodeMapping
	Graph       Graph
}

// MeanTCAP averages the scores. An empty table scores 0.
func MeanTCAP(rows []TCAPRow) float64 {
	if len(rows) == 0 {
		return 0.0
	}

	total := 0.0
	for _, row := range rows {
		total += row.Score
	}

	return total / float64(len(rows))
}
