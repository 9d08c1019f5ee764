// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types holds the small, immutable data types shared across the
// scope analyzer, the candidate registry, the selection strategy and the
// Maven environment: Selector, Import, Source, Candidate and
// BestCandidates. Identifiers are plain strings.
package types

import "strings"

// Selector is an ordered, non-empty sequence of identifier segments, e.g.
// the selector for "java.util.List" is []string{"java", "util", "List"}.
// Selectors are immutable; every method that would mutate one returns a
// new value instead.
type Selector struct {
	segments []string
}

// NewSelector builds a Selector from its dotted segments. It panics if
// called with zero segments; a Selector is never empty by construction.
func NewSelector(segments ...string) Selector {
	if len(segments) == 0 {
		panic("types: NewSelector requires at least one segment")
	}
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Selector{segments: cp}
}

// ParseSelector splits a dotted string, e.g. "java.util.List", into a
// Selector.
func ParseSelector(dotted string) Selector {
	return NewSelector(strings.Split(dotted, ".")...)
}

// Size returns the number of segments in the selector.
func (s Selector) Size() int { return len(s.segments) }

// Rightmost returns the last segment, the identifier the selector
// introduces into scope.
func (s Selector) Rightmost() string {
	return s.segments[len(s.segments)-1]
}

// Leftmost returns the first segment.
func (s Selector) Leftmost() string {
	return s.segments[0]
}

// Segments returns a defensive copy of the selector's segments.
func (s Selector) Segments() []string {
	cp := make([]string, len(s.segments))
	copy(cp, s.segments)
	return cp
}

// Combine concatenates the receiver with other, returning a new selector.
func (s Selector) Combine(other Selector) Selector {
	cp := make([]string, 0, len(s.segments)+len(other.segments))
	cp = append(cp, s.segments...)
	cp = append(cp, other.segments...)
	return Selector{segments: cp}
}

// StartsWith reports whether s begins with every segment of prefix, in
// order.
func (s Selector) StartsWith(prefix Selector) bool {
	if len(prefix.segments) > len(s.segments) {
		return false
	}
	for i, seg := range prefix.segments {
		if s.segments[i] != seg {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the length of the longest shared prefix between
// s and other.
func (s Selector) CommonPrefixLen(other Selector) int {
	n := len(s.segments)
	if len(other.segments) < n {
		n = len(other.segments)
	}
	i := 0
	for i < n && s.segments[i] == other.segments[i] {
		i++
	}
	return i
}

// Package returns the selector of everything but the rightmost segment,
// i.e. the enclosing package/class prefix. It is empty (Size() == 0) if
// the receiver has only one segment; callers must check before using it
// as a Selector.
func (s Selector) Package() Selector {
	if len(s.segments) <= 1 {
		return Selector{}
	}
	return Selector{segments: append([]string(nil), s.segments[:len(s.segments)-1]...)}
}

// Equal reports value equality.
func (s Selector) Equal(other Selector) bool {
	if len(s.segments) != len(other.segments) {
		return false
	}
	for i, seg := range s.segments {
		if seg != other.segments[i] {
			return false
		}
	}
	return true
}

// String renders the dotted form, e.g. "java.util.List".
func (s Selector) String() string {
	return strings.Join(s.segments, ".")
}
