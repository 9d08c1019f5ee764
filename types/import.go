// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Import is a single Java import declaration: a selector plus whether it
// is a static import. The selector's rightmost segment is the identifier
// the import introduces into scope.
type Import struct {
	Selector Selector
	IsStatic bool
}

// NewImport builds a non-static Import for selector.
func NewImport(selector Selector) Import {
	return Import{Selector: selector}
}

// NewStaticImport builds a static Import for selector.
func NewStaticImport(selector Selector) Import {
	return Import{Selector: selector, IsStatic: true}
}

// Identifier returns the identifier this import introduces into scope.
func (im Import) Identifier() string {
	return im.Selector.Rightmost()
}

// Equal reports value equality.
func (im Import) Equal(other Import) bool {
	return im.IsStatic == other.IsStatic && im.Selector.Equal(other.Selector)
}

// Source identifies which candidate source contributed an Import.
type Source int

const (
	// STDLIB candidates come from the static standard-library index.
	STDLIB Source = iota
	// SIBLING candidates come from another file in the same package.
	SIBLING
	// EXTERNAL candidates come from the module's resolved dependencies.
	EXTERNAL
)

// String renders the source name, matching the identifiers used in
// spec prose and debug output.
func (s Source) String() string {
	switch s {
	case STDLIB:
		return "STDLIB"
	case SIBLING:
		return "SIBLING"
	case EXTERNAL:
		return "EXTERNAL"
	default:
		return "UNKNOWN"
	}
}

// Candidate pairs an Import with the source that proposed it.
type Candidate struct {
	Import Import
	Source Source
}

// BestCandidates is an injective mapping from the selector to be
// resolved (in practice, a bare identifier) to the winning Import the
// selection strategy picked for it.
type BestCandidates map[string]Import
