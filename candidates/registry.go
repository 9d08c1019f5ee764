// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package candidates implements the candidate registry (§4.2, component
// F): a per-selector multi-source accumulator fed by the standard-library
// provider, sibling files in the same package, and the external
// environment.
package candidates

import "github.com/Songmu/javaimports/types"

// Map is a mapping from the selector to be resolved (in practice, a bare
// identifier that the file referenced) to the ordered list of candidates
// proposed for it, preserving insertion order within each source but not
// across sources.
type Map map[string][]types.Candidate

// Source is the uniform find(identifiers) -> candidates contract every
// contributor (standard library, sibling files, external environment)
// implements.
type Source interface {
	Find(identifiers []string) Map
}

// Merge combines maps in order, concatenating candidate lists per
// selector. The order sources are merged in determines candidate
// ordering within the combined list, but never the final selection
// output: the selection strategy's deterministic fallback (§4.4 rule 5)
// guarantees discovery order never leaks into winners.
func Merge(maps ...Map) Map {
	out := Map{}
	for _, m := range maps {
		for selector, list := range m {
			out[selector] = append(out[selector], list...)
		}
	}
	return out
}

// Find runs every source against identifiers and merges the results in
// the order sources are given.
func Find(identifiers []string, sources ...Source) Map {
	maps := make([]Map, len(sources))
	for i, src := range sources {
		maps[i] = src.Find(identifiers)
	}
	return Merge(maps...)
}
