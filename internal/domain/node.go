package domain

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	m "gooze.dev/pkg/subsume/internal/model"
)

// NodeID is the stable index of a node inside its Arena.
type NodeID int

// Node is one vertex of the subsumption hierarchy: a mutant, or a class of
// mutants with identical detecting tests after merging.
type Node struct {
	id NodeID

	// Name is the display identity. It starts as the mutant id, becomes a
	// "-"-joined composite when nodes merge and is finally replaced by the
	// public identifier.
	Name string
	// Members lists the original mutant ids folded into this node.
	Members []m.MutantID
	// Tests are the detecting tests. Read-only once the arena is frozen.
	Tests m.TestSet
	// Unique is only set on lowest-layer nodes.
	Unique m.TestSet
	// Weight counts the original mutants folded into this node.
	Weight int

	parents  map[NodeID]struct{}
	children map[NodeID]struct{}
	absorbed bool
	frozen   bool
}

// ID returns the arena index of the node.
func (n *Node) ID() NodeID {
	return n.id
}

// AddTests unions tests into the detecting set. It is idempotent.
func (n *Node) AddTests(tests ...m.TestID) error {
	if n.frozen {
		return fmt.Errorf("%w: %s", ErrFrozen, n.Name)
	}

	n.Tests.Add(tests...)

	return nil
}

// Indistinguishable reports whether both nodes are detected by exactly the same tests.
func (n *Node) Indistinguishable(other *Node) bool {
	return n.Tests.Equal(other.Tests)
}

// Detected reports whether at least one test kills the node.
func (n *Node) Detected() bool {
	return !n.Tests.Empty()
}

// Absorbed reports whether the node was merged into another one.
func (n *Node) Absorbed() bool {
	return n.absorbed
}

// InDegree is the number of direct parents.
func (n *Node) InDegree() int {
	return len(n.parents)
}

// OutDegree is the number of direct children.
func (n *Node) OutDegree() int {
	return len(n.children)
}

func (n *Node) String() string {
	return n.Name
}

// Arena owns every node of one analysis run. Parent and child relations are
// index sets on both endpoints and only change through Link, Unlink and Merge.
type Arena struct {
	nodes []*Node
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode registers a node for a single mutant.
func (a *Arena) NewNode(mutant m.MutantID) *Node {
	node := &Node{
		id:       NodeID(len(a.nodes)),
		Name:     string(mutant),
		Members:  []m.MutantID{mutant},
		Tests:    m.NewTestSet(),
		Weight:   1,
		parents:  make(map[NodeID]struct{}),
		children: make(map[NodeID]struct{}),
	}
	a.nodes = append(a.nodes, node)

	return node
}

// Node resolves an index. It panics on an index that was never issued.
func (a *Arena) Node(id NodeID) *Node {
	return a.nodes[id]
}

// Len is the number of nodes ever registered, absorbed ones included.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Freeze makes the detecting tests of every node read-only.
func (a *Arena) Freeze() {
	for _, node := range a.nodes {
		node.frozen = true
	}
}

// Parents returns the direct parents of n ordered by index.
func (a *Arena) Parents(n *Node) []*Node {
	return a.resolve(n.parents)
}

// Children returns the direct children of n ordered by index.
func (a *Arena) Children(n *Node) []*Node {
	return a.resolve(n.children)
}

func (a *Arena) resolve(ids map[NodeID]struct{}) []*Node {
	sorted := slices.Sorted(maps.Keys(ids))

	out := make([]*Node, len(sorted))
	for i, id := range sorted {
		out[i] = a.nodes[id]
	}

	return out
}

// Link adds the edge parent -> child on both endpoints. It returns false when
// the edge already existed or would be a self edge.
func (a *Arena) Link(parent, child *Node) bool {
	if parent == child {
		return false
	}

	if _, ok := parent.children[child.id]; ok {
		return false
	}

	parent.children[child.id] = struct{}{}
	child.parents[parent.id] = struct{}{}

	return true
}

// Unlink removes the edge parent -> child from both endpoints. It returns
// false when there was no such edge.
func (a *Arena) Unlink(parent, child *Node) bool {
	if _, ok := parent.children[child.id]; !ok {
		return false
	}

	delete(parent.children, child.id)
	delete(child.parents, parent.id)

	return true
}

// Merge folds src into dst: names are concatenated, weights summed, and every
// edge touching src is moved onto dst. src is detached afterwards.
func (a *Arena) Merge(dst, src *Node) {
	if dst == src {
		return
	}

	dst.Name += "-" + src.Name
	dst.Members = append(dst.Members, src.Members...)
	dst.Weight += src.Weight
	dst.Tests.AddAll(src.Tests)

	for _, child := range a.Children(src) {
		a.Unlink(src, child)

		if child != dst {
			a.Link(dst, child)
		}
	}

	for _, parent := range a.Parents(src) {
		a.Unlink(parent, src)

		if parent != dst {
			a.Link(parent, dst)
		}
	}

	src.absorbed = true

	slog.Debug("merged indistinguishable mutants", "into", dst.Name, "weight", dst.Weight)
}
