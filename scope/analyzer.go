// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import "github.com/Songmu/javaimports/javaast"

// Result is the outcome of analyzing one compilation unit: the set of
// identifiers used but never declared anywhere in the file, whether
// directly at top level or still pending inside a class whose superclass
// was never found in the file.
type Result struct {
	// Unresolved holds top-level identifiers with no binding anywhere in
	// the file.
	Unresolved []string

	// Orphans holds class entities whose superclass selector was never
	// resolved; each carries its own Pending identifier set.
	Orphans []*ClassEntity
}

// Analyzer walks a parsed compilation unit in source order, opening and
// closing lexical scopes as it goes, to compute a Result.
type Analyzer struct {
	root    *Root
	current *Scope
}

// NewAnalyzer returns an analyzer ready to walk a single compilation unit.
func NewAnalyzer() *Analyzer {
	root := newRoot()
	return &Analyzer{root: root, current: root.scope}
}

// Analyze walks cu and returns the unresolved-identifier result.
func (a *Analyzer) Analyze(cu *javaast.CompilationUnit) Result {
	for _, decl := range cu.Declarations {
		a.visit(decl)
	}
	unresolved, orphans := a.root.finish()
	return Result{Unresolved: unresolved, Orphans: orphans}
}

// visit dispatches on the concrete node type, per the design notes'
// "polymorphic walker over AST node variants" shape: a per-variant hook,
// falling back to a generic descend into children for anything else.
func (a *Analyzer) visit(n javaast.Node) {
	switch node := n.(type) {
	case *javaast.ClassDecl:
		a.visitClass(node)
	case *javaast.MethodDecl:
		a.visitMethod(node)
	case *javaast.VariableDecl:
		a.visitVariable(node)
	case *javaast.Block:
		a.visitScoped(nil, node.Statements)
	case *javaast.ForStmt:
		a.visitFor(node)
	case *javaast.EnhancedForStmt:
		a.visitEnhancedFor(node)
	case *javaast.TryStmt:
		a.visitTry(node)
	case *javaast.CatchClause:
		a.visitCatch(node)
	case *javaast.SwitchStmt:
		a.visitSwitch(node)
	case *javaast.LambdaExpr:
		a.visitLambda(node)
	case *javaast.Ident:
		a.current.reference(node.Name)
	default:
		a.descend(n)
	}
}

// descend is the generic fallback: recurse into children without opening
// a new scope.
func (a *Analyzer) descend(n javaast.Node) {
	for _, child := range n.Children() {
		a.visit(child)
	}
}

// pushScope opens a child scope of a.current, associated with class if
// non-nil, and returns it without making it current.
func (a *Analyzer) pushScope(class *ClassEntity) *Scope {
	return newScope(a.current, class)
}

// visitScoped opens a fresh child scope, walks nodes inside it, then
// closes it.
func (a *Analyzer) visitScoped(class *ClassEntity, nodes []javaast.Node) {
	child := a.pushScope(class)
	a.current = child
	for _, n := range nodes {
		a.visit(n)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitClass(node *javaast.ClassDecl) {
	class := newClassEntity(node.Name, selectorOrNil(node.Extends))
	a.current.declareClass(class)
	a.visitScoped(class, node.Body)
}

func (a *Analyzer) visitMethod(node *javaast.MethodDecl) {
	a.current.declareMethod(node.Name)
	child := a.pushScope(nil)
	a.current = child
	for _, p := range node.Parameters {
		a.visitVariable(p)
	}
	for _, n := range node.Body {
		a.visit(n)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitVariable(node *javaast.VariableDecl) {
	if node.Init != nil {
		a.visit(node.Init)
	}
	a.current.declareVariable(node.Name)
}

func (a *Analyzer) visitFor(node *javaast.ForStmt) {
	child := a.pushScope(nil)
	a.current = child
	if node.Init != nil {
		a.visit(node.Init)
	}
	if node.Cond != nil {
		a.visit(node.Cond)
	}
	if node.Post != nil {
		a.visit(node.Post)
	}
	if node.Body != nil {
		a.visit(node.Body)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitEnhancedFor(node *javaast.EnhancedForStmt) {
	child := a.pushScope(nil)
	a.current = child
	if node.Iterable != nil {
		a.visit(node.Iterable)
	}
	if node.Element != nil {
		a.visitVariable(node.Element)
	}
	if node.Body != nil {
		a.visit(node.Body)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitTry(node *javaast.TryStmt) {
	child := a.pushScope(nil)
	a.current = child
	for _, r := range node.Resources {
		a.visitVariable(r)
	}
	if node.Body != nil {
		a.visit(node.Body)
	}
	for _, c := range node.Catches {
		a.visit(c)
	}
	if node.Finally != nil {
		a.visit(node.Finally)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitCatch(node *javaast.CatchClause) {
	child := a.pushScope(nil)
	a.current = child
	if node.Parameter != nil {
		a.visitVariable(node.Parameter)
	}
	if node.Body != nil {
		a.visit(node.Body)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitSwitch(node *javaast.SwitchStmt) {
	child := a.pushScope(nil)
	a.current = child
	if node.Selector != nil {
		a.visit(node.Selector)
	}
	for _, c := range node.Cases {
		a.visit(c)
	}
	a.current = child.parent
	closeScope(child)
}

func (a *Analyzer) visitLambda(node *javaast.LambdaExpr) {
	child := a.pushScope(nil)
	a.current = child
	for _, p := range node.Parameters {
		a.visitVariable(p)
	}
	if node.Body != nil {
		a.visit(node.Body)
	}
	a.current = child.parent
	closeScope(child)
}

func selectorOrNil(segments []string) []string {
	if len(segments) == 0 {
		return nil
	}
	cp := make([]string, len(segments))
	copy(cp, segments)
	return cp
}
