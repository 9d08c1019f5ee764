// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maven

import "github.com/Masterminds/semver"

// ResolveVersionConflicts collapses deps to one Coordinate per (groupId,
// artifactId, type, classifier) key, keeping the highest version seen for
// that key. Two or more modules in a dependency tree can easily name the
// same artifact at different versions (a direct dependency and a
// transitive one, or two sibling modules' own declarations merged by the
// fixer); only one jar can be staged into the classpath cache per
// artifact, so a winner has to be picked before scanning.
//
// Versions are compared with semver when both sides parse as one;
// Maven's own versioning scheme is looser than semver (qualifiers like
// "1.2.3.RELEASE" are common), so unparseable versions fall back to a
// lexicographic comparison rather than erroring out.
func ResolveVersionConflicts(deps []Coordinate) []Coordinate {
	order := make([]key, 0, len(deps))
	winners := make(map[key]Coordinate, len(deps))

	for _, dep := range deps {
		dep = dep.normalize()
		k := dep.key()
		cur, ok := winners[k]
		if !ok {
			order = append(order, k)
			winners[k] = dep
			continue
		}
		if versionGreater(dep.Version, cur.Version) {
			winners[k] = dep
		}
	}

	out := make([]Coordinate, 0, len(order))
	for _, k := range order {
		out = append(out, winners[k])
	}
	return out
}

func versionGreater(a, b string) bool {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr == nil && berr == nil {
		return av.GreaterThan(bv)
	}
	return a > b
}
