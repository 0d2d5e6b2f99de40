package domain

import "errors"

var (
	// ErrUnknownMutant is returned when kill data references a mutant that is
	// not in the mutant list.
	ErrUnknownMutant = errors.New("unknown mutant")

	// ErrIndistinguishable is returned when two nodes with equal detecting
	// tests reach hierarchy construction, i.e. merging did not run or was bypassed.
	ErrIndistinguishable = errors.New("indistinguishable nodes in hierarchy")

	// ErrPartialOrder is returned when an edge does not connect a strictly
	// smaller test set to a strictly larger one.
	ErrPartialOrder = errors.New("edge violates test-set containment")

	// ErrCycle is returned when the built hierarchy is not acyclic.
	ErrCycle = errors.New("subsumption hierarchy contains a cycle")

	// ErrFrozen is returned when detecting tests are changed after hierarchy
	// construction started.
	ErrFrozen = errors.New("node is frozen")
)
