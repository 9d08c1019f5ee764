// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

// closeScope runs the scope-close procedure (§4.1) on s, which must
// already have had its children fully analyzed. It mutates s.parent
// (bubbling unresolved identifiers and still-orphaned classes) and must
// not be called again on s afterward.
//
// The root scope has no parent; callers close it with Root.finish instead.
func closeScope(s *Scope) {
	extendOrphans(s)

	switch {
	case s.class != nil && s.class.Superclass != nil && !s.class.closed:
		// The class this scope bodies is itself still awaiting extension
		// (its superclass has not been seen by the scope enclosing its
		// declaration, which has not yet closed). Its own leftover
		// unresolved identifiers become part of its pending-resolution
		// set rather than bubbling to the parent; they will be reduced
		// once the superclass is found.
		for name := range s.notYetResolved {
			s.class.addPending(name)
		}
	case s.class != nil:
		// Retry resolution at the class boundary: declarations anywhere
		// in the class body are now visible, including ones declared
		// after the reference.
		for name := range s.notYetResolved {
			if _, ok := s.lookupLocal(name); ok {
				continue
			}
			s.parent.notYetResolved[name] = true
		}
	default:
		// Bubble out of a non-class scope unconditionally.
		for name := range s.notYetResolved {
			s.parent.notYetResolved[name] = true
		}
	}
}

// extendOrphans implements step 1 of the scope-close procedure: for each
// class entity in s.notYetExtended, attempt to resolve its superclass
// selector against s.
//
// The scope a still-unresolved orphan propagates into, and the scope a
// successfully-extended orphan's remaining pending identifiers bubble
// into, is s.parent — except at the root scope, which has no parent and
// so is its own sink: an orphan that never resolves stays in the root's
// own notYetExtended, and leftover pending identifiers join the root's
// own notYetResolved.
func extendOrphans(s *Scope) {
	bubbleSink := s
	if s.parent != nil {
		bubbleSink = s.parent
	}

	var stillOrphan []*ClassEntity
	for _, orphan := range s.notYetExtended {
		leftmost := orphan.Superclass[0]
		e, ok := s.lookupLocal(leftmost)
		if !ok {
			// s itself doesn't (yet) declare the name; the enclosing
			// scope may still introduce it.
			stillOrphan = append(stillOrphan, orphan)
			continue
		}
		if e.kind != kindClass {
			// Resolves to a non-class binding: the file won't compile;
			// drop the orphan and stop spending effort on it.
			continue
		}

		super := e.class
		if !walkMemberChain(super, orphan.Superclass[1:]) {
			// A multi-segment extends clause (e.g. Outer.Inner) whose
			// later segments don't resolve against the matched class's
			// declared members; treat like any other unresolvable
			// extension and drop silently.
			continue
		}

		for name := range orphan.Pending {
			if super.Members[name] {
				delete(orphan.Pending, name)
			}
		}
		orphan.closed = true
		for name := range orphan.Pending {
			bubbleSink.notYetResolved[name] = true
		}
	}

	if s.parent != nil {
		s.parent.notYetExtended = append(s.parent.notYetExtended, stillOrphan...)
		s.notYetExtended = nil
	} else {
		s.notYetExtended = stillOrphan
	}
}

// walkMemberChain checks that every remaining dotted segment of a
// superclass selector names a declared member of the class matched so
// far. The scope graph tracks each class's own declared member
// identifiers as a flat set (not a nested entity graph), so a selector
// naming a nested type more than one level deep is resolved only as far
// as membership, not to the nested class's own member set.
func walkMemberChain(class *ClassEntity, remaining []string) bool {
	for _, seg := range remaining {
		if !class.Members[seg] {
			return false
		}
	}
	return true
}

// Root is the top scope of a compilation unit. Unlike an interior scope,
// it has no parent to bubble into: whatever remains in its
// notYetResolved set and whatever classes remain in its notYetExtended
// set (with their own Pending sets) are final.
type Root struct {
	scope *Scope
}

func newRoot() *Root {
	return &Root{scope: newScope(nil, nil)}
}

// finish runs the orphan-extension pass once more (a superclass declared
// at top level may have only just become visible) and returns the final
// unresolved identifiers plus any classes that remain orphaned.
func (r *Root) finish() ([]string, []*ClassEntity) {
	extendOrphans(r.scope)

	unresolved := make([]string, 0, len(r.scope.notYetResolved))
	for name := range r.scope.notYetResolved {
		unresolved = append(unresolved, name)
	}
	orphans := make([]*ClassEntity, 0, len(r.scope.notYetExtended))
	for _, c := range r.scope.notYetExtended {
		orphans = append(orphans, c)
	}
	return unresolved, orphans
}
