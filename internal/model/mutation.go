// Package model defines the data structures for mutant subsumption analysis.
package model

import (
	"slices"
	"strings"
)

// MutantID identifies a mutant as it appears in the mutant list.
type MutantID string

// TestID identifies a test as it appears in the kill matrix.
type TestID string

// TestSet is an unordered set of test identifiers.
type TestSet map[TestID]struct{}

// NewTestSet builds a set from the given ids, collapsing duplicates.
func NewTestSet(ids ...TestID) TestSet {
	set := make(TestSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Add unions ids into the set.
func (s TestSet) Add(ids ...TestID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// AddAll unions another set into s.
func (s TestSet) AddAll(other TestSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Has reports whether id is a member of s.
func (s TestSet) Has(id TestID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s TestSet) Len() int {
	return len(s)
}

// Empty reports whether the set has no members.
func (s TestSet) Empty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of s.
func (s TestSet) Clone() TestSet {
	out := make(TestSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// SubsetOf reports whether every member of s is also in other.
func (s TestSet) SubsetOf(other TestSet) bool {
	if len(s) > len(other) {
		return false
	}

	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports whether s is a subset of other and strictly smaller.
func (s TestSet) ProperSubsetOf(other TestSet) bool {
	return len(s) < len(other) && s.SubsetOf(other)
}

// Equal reports set equality.
func (s TestSet) Equal(other TestSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Intersect returns the members present in both sets.
func (s TestSet) Intersect(other TestSet) TestSet {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}

	out := make(TestSet)

	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Difference returns the members of s that are not in other.
func (s TestSet) Difference(other TestSet) TestSet {
	out := make(TestSet)

	for id := range s {
		if _, ok := other[id]; !ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Sorted returns the members in lexical order.
func (s TestSet) Sorted() []TestID {
	out := make([]TestID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}

	slices.Sort(out)

	return out
}

// String renders the set as its sorted members joined with ";".
func (s TestSet) String() string {
	return JoinTests(s.Sorted())
}

// ListSeparator separates members of set-valued cells in tabular output.
// A literal separator or backslash inside an id is escaped with a backslash.
const ListSeparator = ";"

const listEscape = '\\'

// JoinTests joins test ids with ListSeparator.
func JoinTests(ids []TestID) string {
	return joinCell(ids)
}

// JoinMutants joins mutant ids with ListSeparator.
func JoinMutants(ids []MutantID) string {
	return joinCell(ids)
}

// SplitTests parses a cell produced by JoinTests.
func SplitTests(cell string) []TestID {
	return splitCell[TestID](cell)
}

// SplitMutants parses a cell produced by JoinMutants.
func SplitMutants(cell string) []MutantID {
	return splitCell[MutantID](cell)
}

func joinCell[ID ~string](ids []ID) string {
	var b strings.Builder

	for i, id := range ids {
		if i > 0 {
			b.WriteString(ListSeparator)
		}

		for _, r := range string(id) {
			if r == listEscape || string(r) == ListSeparator {
				b.WriteRune(listEscape)
			}

			b.WriteRune(r)
		}
	}

	return b.String()
}

func splitCell[ID ~string](cell string) []ID {
	if strings.TrimSpace(cell) == "" {
		return []ID{}
	}

	var (
		out     []ID
		current strings.Builder
		escaped bool
	)

	for _, r := range cell {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == listEscape:
			escaped = true
		case string(r) == ListSeparator:
			out = append(out, ID(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(out, ID(current.String()))
}

// KillData is the structured input of an analysis run: the mutant list and,
// per mutant, the tests that killed it.
type KillData struct {
	Mutants []MutantID
	Kills   map[MutantID]TestSet
}
