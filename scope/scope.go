// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

// Scope is a node in the lexical-scope tree. It is created on entry to a
// lexical region (block, method, class body, ...) and closed on exit;
// closing bubbles unresolved identifiers up into the parent, after a
// resolution retry at class scopes.
type Scope struct {
	parent *Scope

	bindings map[string]*entity

	// notYetResolved holds identifiers referenced in this scope that could
	// not be resolved against it or any ancestor observed so far.
	notYetResolved map[string]bool

	// notYetExtended holds class entities declared in this scope whose
	// superclass lookup has been deferred.
	notYetExtended []*ClassEntity

	// class is non-nil when this scope is a class body; it is the entity
	// the scope-close procedure retries resolution against and, if the
	// class is still awaiting extension, the sink for this scope's
	// leftover notYetResolved identifiers.
	class *ClassEntity
}

func newScope(parent *Scope, class *ClassEntity) *Scope {
	return &Scope{
		parent:         parent,
		bindings:       make(map[string]*entity),
		notYetResolved: make(map[string]bool),
		class:          class,
	}
}

// lookup walks from this scope upward through parent links, reporting
// whether any ancestor scope (inclusive) has a binding for name.
func (s *Scope) lookup(name string) (*entity, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.bindings[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// lookupLocal looks up name only within this scope, not its ancestors.
func (s *Scope) lookupLocal(name string) (*entity, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

func (s *Scope) declareVariable(name string) {
	s.bindings[name] = &entity{kind: kindVariable}
	if s.class != nil {
		s.class.addMember(name)
	}
}

func (s *Scope) declareMethod(name string) {
	s.bindings[name] = &entity{kind: kindMethod}
	if s.class != nil {
		s.class.addMember(name)
	}
}

func (s *Scope) declareClass(class *ClassEntity) {
	s.bindings[class.SimpleName] = &entity{kind: kindClass, class: class}
	if s.class != nil {
		s.class.addMember(class.SimpleName)
	}
	if class.Superclass != nil {
		s.notYetExtended = append(s.notYetExtended, class)
	}
}

// reference resolves name against this scope's ancestor chain, adding it
// to notYetResolved when nothing is found. A forward reference to a
// sibling member declared later in the same class body is retried at
// scope-close time (§4.1 step 2), not here.
func (s *Scope) reference(name string) {
	if _, ok := s.lookup(name); ok {
		return
	}
	s.notYetResolved[name] = true
}
