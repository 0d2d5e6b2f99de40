package adapter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/subsume/internal/model"
)

// Report file names, each prefixed with "<prefix>_".
const (
	DominatorsFile  = "dominator_mutants_tests.csv"
	LowestLayerFile = "lowest_layer_mutant_to_unique_tests.csv"
	TCAPFile        = "tcap_scores.csv"
	MappingFile     = "node_mapping.csv"
	GraphFile       = "mutation_subsumption_graph.dot"
	SummaryFile     = "summary.yaml"

	runDirLayout = "2006-01-02_15-04-05"
	graphTitle   = "Mutation Subsumption Graph"
)

// ReportStore persists and retrieves analysis reports.
type ReportStore interface {
	// CreateRunDir creates a timestamped directory for one run under root.
	CreateRunDir(root m.Path, now time.Time) (m.Path, error)
	// SaveReports writes every report into dir. On failure dir is removed so
	// no partial run is left behind.
	SaveReports(ctx context.Context, dir m.Path, prefix string, reports m.Reports) error
	LoadReports(ctx context.Context, dir m.Path, prefix string) (m.Reports, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore writing to the local filesystem.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// ReportPath is the location of a report file inside a run directory.
func ReportPath(dir m.Path, prefix, name string) m.Path {
	return m.Path(filepath.Join(string(dir), prefix+"_"+name))
}

func (rs *reportStore) CreateRunDir(root m.Path, now time.Time) (m.Path, error) {
	if err := os.MkdirAll(string(root), 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	dir := filepath.Join(string(root), now.Format(runDirLayout))

	if err := os.Mkdir(dir, 0o750); err != nil {
		return "", fmt.Errorf("create run directory: %w", err)
	}

	return m.Path(dir), nil
}

func (rs *reportStore) SaveReports(ctx context.Context, dir m.Path, prefix string, reports m.Reports) error {
	group, groupCtx := errgroup.WithContext(ctx)

	write := func(name string, fn func(path m.Path) error) {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			path := ReportPath(dir, prefix, name)
			if err := fn(path); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			slog.Debug("wrote report", "path", path)

			return nil
		})
	}

	write(DominatorsFile, func(path m.Path) error {
		return writeCSV(path, dominatorRecords(reports.Dominators))
	})
	write(LowestLayerFile, func(path m.Path) error {
		return writeCSV(path, lowestLayerRecords(reports.LowestLayer))
	})
	write(MappingFile, func(path m.Path) error {
		return writeCSV(path, mappingRecords(reports.Mapping))
	})
	write(GraphFile, func(path m.Path) error {
		return writeDOT(path, reports.Graph)
	})
	write(SummaryFile, func(path m.Path) error {
		return writeYAML(path, reports.Summary)
	})

	if reports.Summary.TCAPEnabled {
		write(TCAPFile, func(path m.Path) error {
			return writeCSV(path, tcapRecords(reports.TCAP))
		})
	}

	if err := group.Wait(); err != nil {
		if rmErr := os.RemoveAll(string(dir)); rmErr != nil {
			return errors.Join(err, fmt.Errorf("remove partial run directory: %w", rmErr))
		}

		slog.Warn("removed partial run directory", "dir", dir, "error", err)

		return err
	}

	slog.Info("saved reports", "dir", dir, "prefix", prefix)

	return nil
}

func (rs *reportStore) LoadReports(ctx context.Context, dir m.Path, prefix string) (m.Reports, error) {
	var reports m.Reports

	if err := ctx.Err(); err != nil {
		return reports, err
	}

	if err := readYAML(ReportPath(dir, prefix, SummaryFile), &reports.Summary); err != nil {
		return reports, fmt.Errorf("load summary: %w", err)
	}

	rows, err := readRecords(ReportPath(dir, prefix, DominatorsFile))
	if err != nil {
		return reports, fmt.Errorf("load dominators: %w", err)
	}

	for _, row := range rows {
		reports.Dominators = append(reports.Dominators, m.DominatorRow{
			Node:    cell(row, 0),
			Mutants: m.SplitMutants(cell(row, 1)),
			Tests:   m.SplitTests(cell(row, 2)),
		})
	}

	rows, err = readRecords(ReportPath(dir, prefix, LowestLayerFile))
	if err != nil {
		return reports, fmt.Errorf("load lowest layer: %w", err)
	}

	for _, row := range rows {
		reports.LowestLayer = append(reports.LowestLayer, m.LowestLayerRow{
			Node:        cell(row, 0),
			Mutants:     m.SplitMutants(cell(row, 1)),
			UniqueTests: m.SplitTests(cell(row, 2)),
			Tests:       m.SplitTests(cell(row, 3)),
		})
	}

	rows, err = readRecords(ReportPath(dir, prefix, MappingFile))
	if err != nil {
		return reports, fmt.Errorf("load node mapping: %w", err)
	}

	for _, row := range rows {
		weight, err := strconv.Atoi(cell(row, 2))
		if err != nil {
			return reports, fmt.Errorf("load node mapping: weight of %s: %w", cell(row, 0), err)
		}

		reports.Mapping = append(reports.Mapping, m.NodeMapping{
			Node:    cell(row, 0),
			Mutants: m.SplitMutants(cell(row, 1)),
			Weight:  weight,
			Tests:   m.SplitTests(cell(row, 3)),
		})
	}

	if !reports.Summary.TCAPEnabled {
		return reports, nil
	}

	rows, err = readRecords(ReportPath(dir, prefix, TCAPFile))
	if err != nil {
		return reports, fmt.Errorf("load tcap scores: %w", err)
	}

	for _, row := range rows {
		score, err := strconv.ParseFloat(cell(row, 1), 64)
		if err != nil {
			return reports, fmt.Errorf("load tcap scores: score of %s: %w", cell(row, 0), err)
		}

		reports.TCAP = append(reports.TCAP, m.TCAPRow{Mutant: m.MutantID(cell(row, 0)), Score: score})
	}

	return reports, nil
}

func dominatorRecords(rows []m.DominatorRow) [][]string {
	records := [][]string{{"Node", "Mutants", "Tests"}}
	for _, row := range rows {
		records = append(records, []string{row.Node, m.JoinMutants(row.Mutants), m.JoinTests(row.Tests)})
	}

	return records
}

func lowestLayerRecords(rows []m.LowestLayerRow) [][]string {
	records := [][]string{{"Node", "Mutants", "Unique Tests", "Tests"}}
	for _, row := range rows {
		records = append(records, []string{
			row.Node,
			m.JoinMutants(row.Mutants),
			m.JoinTests(row.UniqueTests),
			m.JoinTests(row.Tests),
		})
	}

	return records
}

func tcapRecords(rows []m.TCAPRow) [][]string {
	records := [][]string{{"Mutant", "TCAP"}}
	for _, row := range rows {
		records = append(records, []string{string(row.Mutant), strconv.FormatFloat(row.Score, 'g', -1, 64)})
	}

	return records
}

func mappingRecords(rows []m.NodeMapping) [][]string {
	records := [][]string{{"Node", "Mutants", "Weight", "Tests"}}
	for _, row := range rows {
		records = append(records, []string{
			row.Node,
			m.JoinMutants(row.Mutants),
			strconv.Itoa(row.Weight),
			m.JoinTests(row.Tests),
		})
	}

	return records
}

func writeCSV(path m.Path, records [][]string) error {
	file, err := os.Create(string(path))
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// readRecords reads a CSV report and drops its header.
func readRecords(path m.Path) ([][]string, error) {
	rows, err := ReadCSV(path)
	if err != nil {
		if errors.Is(err, ErrEmptyTable) {
			return nil, nil
		}

		return nil, err
	}

	return rows[1:], nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}

func writeYAML(path m.Path, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o600)
}

func readYAML(path m.Path, value any) error {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, value)
}

func writeDOT(path m.Path, view m.Graph) error {
	data, err := MarshalDOT(view)
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o600)
}

// MarshalDOT renders the DAG in Graphviz DOT. Dominators get a double border,
// undetected roots are dotted and labels are public node ids.
func MarshalDOT(view m.Graph) ([]byte, error) {
	g := dotGraph{DirectedGraph: simple.NewDirectedGraph()}

	for _, node := range view.Nodes {
		g.AddNode(dotNode{node: node})
	}

	for _, edge := range view.Edges {
		g.SetEdge(g.NewEdge(g.Node(edge.From), g.Node(edge.To)))
	}

	return dot.Marshal(g, "mutation_subsumption_graph", "", "  ")
}

type dotAttributes []encoding.Attribute

func (a dotAttributes) Attributes() []encoding.Attribute {
	return a
}

type dotGraph struct {
	*simple.DirectedGraph
}

func (g dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	graph = dotAttributes{
		{Key: "label", Value: strconv.Quote(graphTitle)},
		{Key: "rankdir", Value: "TB"},
	}
	node = dotAttributes{{Key: "style", Value: "filled"}}
	edge = dotAttributes{{Key: "arrowhead", Value: "normal"}}

	return graph, node, edge
}

type dotNode struct {
	node m.GraphNode
}

func (n dotNode) ID() int64 {
	return n.node.ID
}

func (n dotNode) DOTID() string {
	return n.node.Label
}

func (n dotNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "tooltip", Value: strconv.Quote(m.JoinTests(n.node.Tests))},
	}

	switch {
	case len(n.node.Tests) == 0 && n.node.InDegree == 0:
		attrs = append(attrs,
			encoding.Attribute{Key: "style", Value: strconv.Quote("filled,dotted")},
			encoding.Attribute{Key: "fillcolor", Value: "lightyellow"},
		)
	case n.node.InDegree == 0:
		attrs = append(attrs,
			encoding.Attribute{Key: "peripheries", Value: "2"},
			encoding.Attribute{Key: "color", Value: "green"},
			encoding.Attribute{Key: "fillcolor", Value: "lightblue"},
		)
	default:
		attrs = append(attrs, encoding.Attribute{Key: "fillcolor", Value: "lightblue"})
	}

	return attrs
}
