// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package javaast defines the parser contract the scope analyzer is built
// against: a compilation-unit root and a set of node variants exposing
// scope-opening constructs, variable/method/class declarations, extends
// clauses and identifier references.
//
// The real lexer/parser is an external collaborator (§1, out of core
// scope); this package additionally ships a small literal tree so the
// scope analyzer and its tests can run without one.
package javaast

// Node is implemented by every AST node variant the analyzer walks.
// Children are returned in source order; the analyzer's default descend
// recurses into them unless a variant-specific hook intercepts first.
type Node interface {
	Children() []Node
}

// CompilationUnit is the root of a parsed Java source file.
type CompilationUnit struct {
	Package      []string // dotted package path, possibly empty for the default package
	Imports      []Import
	Declarations []Node // top-level type declarations
}

func (c *CompilationUnit) Children() []Node { return c.Declarations }

// Import is an existing import declaration already present in the file.
type Import struct {
	Selector []string
	IsStatic bool
}

// ClassDecl introduces a class (or interface/enum, treated identically by
// the analyzer) scope. Extends is nil for a class with no superclass; it
// is deliberately not walked for identifier references (§4.1).
type ClassDecl struct {
	Name    string
	Extends []string // dotted superclass selector segments, or nil
	Body    []Node
}

func (c *ClassDecl) Children() []Node { return c.Body }

// MethodDecl introduces a method scope.
type MethodDecl struct {
	Name       string
	Parameters []*VariableDecl
	Body       []Node
}

func (m *MethodDecl) Children() []Node {
	children := make([]Node, 0, len(m.Parameters)+len(m.Body))
	for _, p := range m.Parameters {
		children = append(children, p)
	}
	children = append(children, m.Body...)
	return children
}

// VariableDecl declares a local variable, field or parameter. Init, if
// non-nil, is walked for identifier references before the binding itself
// is recorded, so a reference in Init never resolves to the name being
// declared.
type VariableDecl struct {
	Name string
	Init Node
}

func (v *VariableDecl) Children() []Node {
	if v.Init == nil {
		return nil
	}
	return []Node{v.Init}
}

// Block is a generic lexical block: {..}, a method body, a lambda body.
type Block struct {
	Statements []Node
}

func (b *Block) Children() []Node { return b.Statements }

// ForStmt is a classic C-style for loop; it opens its own scope for the
// init clause's declarations.
type ForStmt struct {
	Init Node
	Cond Node
	Post Node
	Body Node
}

func (f *ForStmt) Children() []Node {
	children := make([]Node, 0, 4)
	for _, n := range []Node{f.Init, f.Cond, f.Post, f.Body} {
		if n != nil {
			children = append(children, n)
		}
	}
	return children
}

// EnhancedForStmt is a for-each loop; Element is the loop variable
// declaration.
type EnhancedForStmt struct {
	Element *VariableDecl
	Iterable Node
	Body     Node
}

func (f *EnhancedForStmt) Children() []Node {
	children := []Node{f.Element}
	if f.Iterable != nil {
		children = append(children, f.Iterable)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}

// TryStmt opens a scope for its body plus one per catch clause.
type TryStmt struct {
	Resources []*VariableDecl
	Body      Node
	Catches   []*CatchClause
	Finally   Node
}

func (t *TryStmt) Children() []Node {
	children := make([]Node, 0, len(t.Resources)+len(t.Catches)+2)
	for _, r := range t.Resources {
		children = append(children, r)
	}
	if t.Body != nil {
		children = append(children, t.Body)
	}
	for _, c := range t.Catches {
		children = append(children, c)
	}
	if t.Finally != nil {
		children = append(children, t.Finally)
	}
	return children
}

// CatchClause binds its exception parameter in its own scope.
type CatchClause struct {
	Parameter *VariableDecl
	Body      Node
}

func (c *CatchClause) Children() []Node {
	children := []Node{c.Parameter}
	if c.Body != nil {
		children = append(children, c.Body)
	}
	return children
}

// SwitchStmt opens a single scope shared by all its cases (Java switch
// blocks share one lexical scope across labels).
type SwitchStmt struct {
	Selector Node
	Cases    []Node
}

func (s *SwitchStmt) Children() []Node {
	children := make([]Node, 0, len(s.Cases)+1)
	if s.Selector != nil {
		children = append(children, s.Selector)
	}
	children = append(children, s.Cases...)
	return children
}

// LambdaExpr opens its own scope for its parameters and body.
type LambdaExpr struct {
	Parameters []*VariableDecl
	Body       Node
}

func (l *LambdaExpr) Children() []Node {
	children := make([]Node, 0, len(l.Parameters)+1)
	for _, p := range l.Parameters {
		children = append(children, p)
	}
	if l.Body != nil {
		children = append(children, l.Body)
	}
	return children
}

// Ident is a single identifier expression reference, a leaf node.
type Ident struct {
	Name string
}

func (i *Ident) Children() []Node { return nil }
