// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection implements the basic selection strategy (§4.4,
// component G): ranking candidates for a selector by a composite key and
// picking the single best one, with deterministic tie-breaks so output
// never depends on registry discovery order (§8 invariant 5).
package selection

import (
	"sort"
	"strings"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/types"
)

// maxAffinityPassesFloor is the smallest pass budget of the
// same-scope-affinity fixpoint (§4.4 rule 2): Select runs at most
// max(maxAffinityPassesFloor, number of selectors) passes, and stops
// early as soon as a pass changes no winner.
const maxAffinityPassesFloor = 4

// Strategy is the basic selection strategy described in §4.4.
type Strategy struct {
	// FilePackage is the selector of the file's own package, used by
	// rule 4 (external-only subpriority).
	FilePackage types.Selector
}

// Select picks one winning candidate per identifier in cm, returning an
// injective selector-to-Import mapping. Every identifier present in cm
// with at least one candidate appears in the result (§8 invariant 3).
func (s Strategy) Select(cm candidates.Map) types.BestCandidates {
	keys := make([]string, 0, len(cm))
	for k, list := range cm {
		if len(list) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys) // processing order must not leak into the result

	winners := types.BestCandidates{}
	for _, k := range keys {
		winners[k] = s.bestIgnoringAffinity(cm[k])
	}

	passes := maxAffinityPassesFloor
	if len(keys) > passes {
		passes = len(keys)
	}
	for i := 0; i < passes; i++ {
		changed := false
		for _, k := range keys {
			best := s.best(cm[k], k, winners)
			if !best.Equal(winners[k]) {
				winners[k] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return winners
}

// bestIgnoringAffinity ranks with rule 2 contributing no bonus, used to
// seed the fixpoint with a stable starting point.
func (s Strategy) bestIgnoringAffinity(list []types.Candidate) types.Import {
	return s.best(list, "", nil)
}

// best returns the most-preferred candidate in list for key, given the
// current winners of every other selector in the batch.
func (s Strategy) best(list []types.Candidate, key string, winners types.BestCandidates) types.Import {
	best := list[0]
	for _, c := range list[1:] {
		if s.less(c, best, key, winners) {
			best = c
		}
	}
	return best.Import
}

// less reports whether a is strictly preferred over b under the
// composite key (§4.4 rules 1-5, in descending priority).
func (s Strategy) less(a, b types.Candidate, key string, winners types.BestCandidates) bool {
	if pa, pb := sourcePriority(a.Source), sourcePriority(b.Source); pa != pb {
		return pa < pb
	}

	if winners != nil {
		affA, affB := s.hasAffinity(a, key, winners), s.hasAffinity(b, key, winners)
		if affA != affB {
			return affA
		}
	}

	if a.Source == types.STDLIB && b.Source == types.STDLIB {
		if less, ok := stdlibLess(a.Import, b.Import); ok {
			return less
		}
	}

	if a.Source == types.EXTERNAL && b.Source == types.EXTERNAL {
		pa := a.Import.Selector.CommonPrefixLen(s.FilePackage)
		pb := b.Import.Selector.CommonPrefixLen(s.FilePackage)
		if pa != pb {
			return pa > pb
		}
	}

	return canonical(a.Import) < canonical(b.Import)
}

// hasAffinity reports whether a's import shares a package prefix with the
// current winner of some OTHER selector in the batch (§4.4 rule 2).
func (s Strategy) hasAffinity(c types.Candidate, key string, winners types.BestCandidates) bool {
	pkg := c.Import.Selector.Package()
	if pkg.Size() == 0 {
		return false
	}
	for otherKey, otherWinner := range winners {
		if otherKey == key {
			continue
		}
		otherPkg := otherWinner.Selector.Package()
		if otherPkg.Size() == 0 {
			continue
		}
		if pkg.Equal(otherPkg) {
			return true
		}
	}
	return false
}

// sourcePriority implements rule 1: SIBLING > STDLIB > EXTERNAL, lower is
// more preferred.
func sourcePriority(src types.Source) int {
	switch src {
	case types.SIBLING:
		return 0
	case types.STDLIB:
		return 1
	case types.EXTERNAL:
		return 2
	default:
		return 3
	}
}

// stdlibLess implements rule 3's stdlib-only subpriority: java.util.X
// beats any other stdlib A.B.X of equal length; otherwise shorter
// selectors beat longer ones. ok is false when neither sub-rule
// distinguishes a from b and the caller should fall through to rule 5.
func stdlibLess(a, b types.Import) (less bool, ok bool) {
	aIsJavaUtil := isJavaUtil(a.Selector)
	bIsJavaUtil := isJavaUtil(b.Selector)
	if a.Selector.Size() == b.Selector.Size() && aIsJavaUtil != bIsJavaUtil {
		return aIsJavaUtil, true
	}
	if a.Selector.Size() != b.Selector.Size() {
		return a.Selector.Size() < b.Selector.Size(), true
	}
	return false, false
}

func isJavaUtil(sel types.Selector) bool {
	pkg := sel.Package()
	return pkg.Size() > 0 && pkg.String() == "java.util"
}

// canonical renders an Import for rule 5's lexicographic fallback,
// distinguishing static imports so the ordering is total.
func canonical(im types.Import) string {
	var b strings.Builder
	if im.IsStatic {
		b.WriteString("static ")
	}
	b.WriteString(im.Selector.String())
	return b.String()
}
