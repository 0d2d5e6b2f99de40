package controller

import (
	m "gooze.dev/pkg/subsume/internal/model"
)

func sampleReports() m.Reports {
	return m.Reports{
		Summary: m.Summary{
			Mutants:        5,
			Nodes:          3,
			Edges:          1,
			Dominators:     1,
			LowestLayer:    1,
			Undetected:     1,
			DominatorTests: []m.TestID{"t1"},
			TCAPEnabled:    true,
		},
		Dominators: []m.DominatorRow{
			{Node: "X01", Mutants: []m.MutantID{"m3", "m6"}, Tests: []m.TestID{"t1"}},
		},
		LowestLayer: []m.LowestLayerRow{
			{Node: "X02", Mutants: []m.MutantID{"m4"}, UniqueTests: []m.TestID{"t3"}, Tests: []m.TestID{"t1", "t3"}},
		},
		TCAP: []m.TCAPRow{
			{Mutant: "m1", Score: 0},
			{Mutant: "m2", Score: 0},
			{Mutant: "m3", Score: 1},
			{Mutant: "m6", Score: 1},
			{Mutant: "m4", Score: 0.5},
		},
		Mapping: []m.NodeMapping{
			{Node: "X00", Mutants: []m.MutantID{"m1", "m2"}, Weight: 2, Tests: []m.TestID{}},
			{Node: "X01", Mutants: []m.MutantID{"m3", "m6"}, Weight: 2, Tests: []m.TestID{"t1"}},
			{Node: "X02", Mutants: []m.MutantID{"m4"}, Weight: 1, Tests: []m.TestID{"t1", "t3"}},
		},
	}
}
