// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maven

// FlatPom is an in-memory projection of a POM: its declared dependencies,
// its managed dependencies, its property map, and an optional
// parent-POM path. It is well-defined iff every declared dependency is
// resolved (§4.3).
type FlatPom struct {
	Dependencies        []Coordinate
	ManagedDependencies []Coordinate
	Properties          map[string]string
	ParentPath          string // empty means no parent
}

// Builder collects a FlatPom's four optional inputs before running the
// enrichment and substitution passes that produce a FlatPom.
type Builder struct {
	dependencies        []Coordinate
	managedDependencies []Coordinate
	properties          map[string]string
	parentPath          string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{properties: map[string]string{}}
}

// WithDependencies sets the declared dependencies.
func (b *Builder) WithDependencies(deps []Coordinate) *Builder {
	b.dependencies = deps
	return b
}

// WithManagedDependencies sets the dependencyManagement dependencies.
func (b *Builder) WithManagedDependencies(deps []Coordinate) *Builder {
	b.managedDependencies = deps
	return b
}

// WithProperties sets the property map.
func (b *Builder) WithProperties(props map[string]string) *Builder {
	if props == nil {
		props = map[string]string{}
	}
	b.properties = props
	return b
}

// WithParentPath sets the (possibly empty) parent POM path.
func (b *Builder) WithParentPath(path string) *Builder {
	b.parentPath = path
	return b
}

// Build runs enrichment from managed dependencies (§4.3.1) followed by
// property substitution (§4.3.2) and returns the resulting FlatPom.
// Well-definedness (§4.3.3) is a method on the result, not a separate
// build step, since a FlatPom's declared dependencies can still change
// later via Merge.
func (b *Builder) Build() *FlatPom {
	pom := &FlatPom{
		Dependencies:        append([]Coordinate(nil), b.dependencies...),
		ManagedDependencies: append([]Coordinate(nil), b.managedDependencies...),
		Properties:          copyProps(b.properties),
		ParentPath:          b.parentPath,
	}
	pom.enrichAndSubstitute()
	return pom
}

func copyProps(props map[string]string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// enrichAndSubstitute runs steps 1 and 2 of §4.3 in place: for every
// declared dependency with a null or placeholder version, copy a matching
// managed dependency's version, then substitute any remaining "${name}"
// placeholder from the property map.
func (pom *FlatPom) enrichAndSubstitute() {
	managed := make(map[key]Coordinate, len(pom.ManagedDependencies))
	for _, m := range pom.ManagedDependencies {
		// Collisions inside the managed list are permitted without
		// error; the last one wins, matching a straightforward
		// build-a-map-in-declaration-order reading of §4.3.1.
		managed[m.key()] = m
	}

	for i, dep := range pom.Dependencies {
		dep = dep.normalize()
		if dep.Version == "" || isPlaceholder(dep.Version) {
			if mgd, ok := managed[dep.key()]; ok && mgd.Version != "" {
				dep.Version = mgd.Version
			}
		}
		if name, ok := placeholderName(dep.Version); ok {
			if v, ok := pom.Properties[name]; ok {
				dep.Version = v
			}
		}
		pom.Dependencies[i] = dep
	}
}

// IsWellDefined reports whether every declared dependency has a literal,
// placeholder-free version (§4.3.3, invariant 1 of §8).
func (pom *FlatPom) IsWellDefined() bool {
	for _, dep := range pom.Dependencies {
		if !dep.IsResolved() {
			return false
		}
	}
	return true
}

// HasParent reports whether ParentPath names a parent POM still to be
// walked.
func (pom *FlatPom) HasParent() bool {
	return pom.ParentPath != ""
}

// Merge folds other (the parent POM) into pom (the child), per §4.3:
//
//   - if pom is already well-defined, Merge is a no-op;
//   - otherwise, other's declared dependencies are appended after pom's
//     own, other's managed dependencies are appended, properties are
//     unioned with pom winning conflicts, enrichment and substitution are
//     re-run on the combined state, and pom's parent path is replaced by
//     other's.
//
// Invariant 2 of §8: if pom.IsWellDefined() before the call, pom's
// Dependencies and ParentPath are left unchanged.
func (pom *FlatPom) Merge(other *FlatPom) {
	if pom.IsWellDefined() {
		return
	}

	merged := append(append([]Coordinate(nil), pom.Dependencies...), other.Dependencies...)
	mergedManaged := append(append([]Coordinate(nil), pom.ManagedDependencies...), other.ManagedDependencies...)

	props := copyProps(other.Properties)
	for k, v := range pom.Properties {
		props[k] = v // child wins on conflict
	}

	pom.Dependencies = merged
	pom.ManagedDependencies = mergedManaged
	pom.Properties = props
	pom.enrichAndSubstitute()

	pom.ParentPath = other.ParentPath
}
