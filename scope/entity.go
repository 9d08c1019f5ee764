// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope implements the AST-agnostic scope graph and
// deferred-extension engine: computing the set of identifiers used but
// not declared in a file, including resolution across class-inheritance
// chains that may only be closable after the whole file has been seen.
package scope

// entityKind distinguishes the three binding kinds a scope can hold.
type entityKind int

const (
	kindVariable entityKind = iota
	kindMethod
	kindClass
)

// entity is a single binding recorded in a Scope: a variable, a method, or
// a class (carrying its ClassEntity).
type entity struct {
	kind  entityKind
	class *ClassEntity
}

// ClassEntity records a declared class: its simple name, its declared
// members, its (possibly unresolved at creation) superclass selector, and
// the set of identifiers used in its body that remain unresolved against
// its own scope and any ancestor scope observed so far.
//
// A ClassEntity is closed only when either its Superclass is nil, or its
// superclass has itself been closed and this entity's Pending set has
// been reduced using the superclass's member set.
type ClassEntity struct {
	SimpleName string
	Members    map[string]bool
	Superclass []string // dotted selector segments; nil if no extends clause
	Pending    map[string]bool
	closed     bool
}

func newClassEntity(name string, superclass []string) *ClassEntity {
	return &ClassEntity{
		SimpleName: name,
		Members:    make(map[string]bool),
		Superclass: superclass,
		Pending:    make(map[string]bool),
	}
}

// Closed reports whether this class entity's extension has completed.
func (c *ClassEntity) Closed() bool {
	return c.closed
}

func (c *ClassEntity) addPending(name string) {
	c.Pending[name] = true
}

func (c *ClassEntity) addMember(name string) {
	c.Members[name] = true
}
