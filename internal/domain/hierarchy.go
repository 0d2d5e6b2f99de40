package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	m "gooze.dev/pkg/subsume/internal/model"
)

// Hierarchy is the transitively reduced subsumption DAG over merged nodes.
// An edge parent -> child means tests(parent) ⊂ tests(child) with no node
// strictly in between. It is read-only once BuildHierarchy returns.
type Hierarchy struct {
	arena *Arena
	nodes []*Node
	order []*Node
	edges int
}

// BuildHierarchy inserts nodes one at a time, in slice order, into the DAG.
// Undetected nodes become isolated vertices. The result does not depend on
// the order of nodes beyond which equal-rank edges are found first.
func BuildHierarchy(arena *Arena, nodes []*Node) (*Hierarchy, error) {
	arena.Freeze()

	h := &Hierarchy{
		arena: arena,
		nodes: nodes,
	}

	connectable := make([]*Node, 0, len(nodes))

	for _, node := range nodes {
		if node.Detected() {
			connectable = append(connectable, node)
		}
	}

	seen := make([]*Node, 0, len(connectable))

	for _, node := range connectable {
		if err := h.insert(node, seen); err != nil {
			return nil, err
		}

		seen = append(seen, node)
	}

	if err := h.verifyContainment(); err != nil {
		return nil, err
	}

	order, err := h.Order()
	if err != nil {
		return nil, err
	}

	h.order = order

	slog.Debug("built subsumption hierarchy",
		"nodes", len(nodes),
		"connectable", len(connectable),
		"edges", h.edges,
	)

	return h, nil
}

// insert places x relative to every previously inserted node, then drops the
// edges that now pass through x.
func (h *Hierarchy) insert(x *Node, seen []*Node) error {
	below := make(map[NodeID]struct{})
	above := make(map[NodeID]struct{})

	for _, y := range seen {
		if y == x {
			continue
		}

		switch {
		case x.Tests.Equal(y.Tests):
			return fmt.Errorf("%w: %s and %s", ErrIndistinguishable, x.Name, y.Name)
		case y.Tests.ProperSubsetOf(x.Tests):
			h.placeBelow(y, x, below)
		case x.Tests.ProperSubsetOf(y.Tests):
			h.placeAbove(y, x, above)
		}
	}

	for _, lower := range h.arena.Parents(x) {
		for _, upper := range h.arena.Children(x) {
			if h.arena.Unlink(lower, upper) {
				h.edges--
				slog.Debug("dropped transitive edge", "from", lower.Name, "to", upper.Name, "via", x.Name)
			}
		}
	}

	return nil
}

// placeBelow places the edge parent -> x where parent ⊂ x. When a child of
// parent still sits strictly below x the placement moves down to that child
// instead, so x is linked to its nearest ancestors only. It reports whether
// the edge was materialized at parent itself.
func (h *Hierarchy) placeBelow(parent, x *Node, visited map[NodeID]struct{}) bool {
	if _, ok := visited[parent.id]; ok {
		return false
	}

	visited[parent.id] = struct{}{}

	nearer := false

	for _, child := range h.arena.Children(parent) {
		if child == x || !child.Tests.ProperSubsetOf(x.Tests) {
			continue
		}

		nearer = true

		h.placeBelow(child, x, visited)
	}

	if nearer {
		return false
	}

	h.link(parent, x)

	return true
}

// placeAbove places the edge x -> child where x ⊂ child, moving up through
// the parents of child that still sit strictly above x.
func (h *Hierarchy) placeAbove(child, x *Node, visited map[NodeID]struct{}) bool {
	if _, ok := visited[child.id]; ok {
		return false
	}

	visited[child.id] = struct{}{}

	nearer := false

	for _, parent := range h.arena.Parents(child) {
		if parent == x || !x.Tests.ProperSubsetOf(parent.Tests) {
			continue
		}

		nearer = true

		h.placeAbove(parent, x, visited)
	}

	if nearer {
		return false
	}

	h.link(x, child)

	return true
}

func (h *Hierarchy) link(parent, child *Node) {
	if h.arena.Link(parent, child) {
		h.edges++
		slog.Debug("linked", "parent", parent.Name, "child", child.Name)
	}
}

// Nodes returns every vertex, undetected ones included, in insertion order.
func (h *Hierarchy) Nodes() []*Node {
	return h.nodes
}

// Parents returns the direct parents of n.
func (h *Hierarchy) Parents(n *Node) []*Node {
	return h.arena.Parents(n)
}

// Children returns the direct children of n.
func (h *Hierarchy) Children(n *Node) []*Node {
	return h.arena.Children(n)
}

// EdgeCount returns the number of covering relations.
func (h *Hierarchy) EdgeCount() int {
	return h.edges
}

// Reachable reports whether to can be reached from from by following edges.
func (h *Hierarchy) Reachable(from, to *Node) bool {
	visited := make(map[NodeID]struct{})
	stack := []*Node{from}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range h.arena.Children(current) {
			if child == to {
				return true
			}

			if _, ok := visited[child.id]; ok {
				continue
			}

			visited[child.id] = struct{}{}
			stack = append(stack, child)
		}
	}

	return false
}

// Graph exports the hierarchy as a gonum directed graph keyed by node index.
func (h *Hierarchy) Graph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()

	for _, node := range h.nodes {
		g.AddNode(simple.Node(node.id))
	}

	for _, node := range h.nodes {
		for _, child := range h.arena.Children(node) {
			g.SetEdge(g.NewEdge(simple.Node(node.id), simple.Node(child.id)))
		}
	}

	return g
}

// Verify checks that every edge is a strict containment and that the graph is
// acyclic. A failure is a construction bug and aborts the run.
func (h *Hierarchy) Verify() error {
	if err := h.verifyContainment(); err != nil {
		return err
	}

	_, err := h.Order()

	return err
}

func (h *Hierarchy) verifyContainment() error {
	for _, node := range h.nodes {
		for _, child := range h.arena.Children(node) {
			if !node.Tests.ProperSubsetOf(child.Tests) {
				return fmt.Errorf("%w: %s -> %s", ErrPartialOrder, node.Name, child.Name)
			}
		}
	}

	return nil
}

// Order returns every vertex with parents ahead of their children. Vertices
// of equal rank, undetected ones included, keep ascending node id order.
func (h *Hierarchy) Order() ([]*Node, error) {
	sorted, err := sortByID(h.Graph())
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*Node, len(h.nodes))
	for _, node := range h.nodes {
		byID[int64(node.id)] = node
	}

	order := make([]*Node, len(sorted))
	for i, vertex := range sorted {
		order[i] = byID[vertex.ID()]
	}

	return order, nil
}

func sortByID(g graph.Directed) ([]graph.Node, error) {
	sorted, err := topo.SortStabilized(g, nil)
	if err != nil {
		var unorderable topo.Unorderable
		if errors.As(err, &unorderable) {
			return nil, fmt.Errorf("%w: %d strongly connected component(s)", ErrCycle, len(unorderable))
		}

		return nil, fmt.Errorf("%w: %w", ErrCycle, err)
	}

	return sorted, nil
}

// View returns a read-only copy of the DAG for plotting and reporting, with
// nodes in Order.
func (h *Hierarchy) View() m.Graph {
	view := m.Graph{
		Nodes: make([]m.GraphNode, 0, len(h.order)),
		Edges: make([]m.GraphEdge, 0, h.edges),
	}

	for _, node := range h.order {
		view.Nodes = append(view.Nodes, m.GraphNode{
			ID:        int64(node.id),
			Label:     node.Name,
			Tests:     node.Tests.Sorted(),
			InDegree:  node.InDegree(),
			OutDegree: node.OutDegree(),
		})

		for _, child := range h.arena.Children(node) {
			view.Edges = append(view.Edges, m.GraphEdge{From: int64(node.id), To: int64(child.id)})
		}
	}

	return view
}
