// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package javaparser adapts the github.com/smacker/go-tree-sitter Java
// grammar into the javaast.Parser contract. It is the concrete
// implementation of the external parser collaborator §1 declares out of
// the core's scope: the core only ever depends on javaast.Parser.
//
// The walk here follows the same shape as a tree-sitter-backed source
// walker elsewhere in the corpus (a scala/parser.go-style recursive
// descent keyed off each tree-sitter node's Type()), adapted to the
// subset of Java constructs javaast models (§9's design notes list:
// Block, Class, Method, For, EnhancedFor, Try, Catch, Switch, Lambda,
// Variable, Identifier). Constructs the grammar exposes but javaast has
// no variant for (annotations, generics bounds, records, ...) are
// skipped rather than rejected: a best-effort scan is preferable to
// failing the whole file over syntax the analyzer doesn't need to
// understand to find identifier references.
package javaparser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/Songmu/javaimports/javaast"
)

var javaLang = java.GetLanguage()

// Parser implements javaast.Parser using tree-sitter's Java grammar.
type Parser struct{}

// New returns a ready-to-use Parser.
func New() Parser { return Parser{} }

// Parse implements javaast.Parser.
func (Parser) Parse(filename string, src []byte) (*javaast.CompilationUnit, []javaast.Diagnostic, error) {
	p := sitter.NewParser()
	p.SetLanguage(javaLang)

	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, nil, err
	}
	root := tree.RootNode()

	diags := collectErrors(root, src)
	if len(diags) > 0 {
		return nil, diags, nil
	}

	w := &walker{src: src}
	cu := &javaast.CompilationUnit{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			cu.Package = w.dottedName(w.firstNamedChild(child))
		case "import_declaration":
			cu.Imports = append(cu.Imports, w.importDecl(child))
		default:
			if n := w.topLevel(child); n != nil {
				cu.Declarations = append(cu.Declarations, n)
			}
		}
	}
	return cu, nil, nil
}

// collectErrors walks the tree looking for tree-sitter ERROR nodes,
// which indicate the source didn't parse cleanly; any such node aborts
// the run per §6.
func collectErrors(n *sitter.Node, src []byte) []javaast.Diagnostic {
	var diags []javaast.Diagnostic
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "ERROR" {
			pt := n.StartPoint()
			diags = append(diags, javaast.Diagnostic{
				Line:    int(pt.Row) + 1,
				Column:  int(pt.Column) + 1,
				Message: "syntax error near \"" + truncate(n.Content(src), 40) + "\"",
			})
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(n)
	return diags
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

type walker struct {
	src []byte
}

func (w *walker) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(w.src)
}

func (w *walker) firstNamedChild(n *sitter.Node) *sitter.Node {
	if n == nil || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

// dottedName renders a scoped_identifier / scoped_type_identifier /
// identifier node as dotted segments.
func (w *walker) dottedName(n *sitter.Node) []string {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier":
		return []string{w.text(n)}
	case "scoped_identifier", "scoped_type_identifier":
		var segs []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			segs = append(segs, w.dottedName(n.NamedChild(i))...)
		}
		return segs
	default:
		return []string{w.text(n)}
	}
}

func (w *walker) importDecl(n *sitter.Node) javaast.Import {
	isStatic := false
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "static" {
			isStatic = true
		}
	}
	var selector []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "scoped_identifier" || c.Type() == "identifier" {
			selector = w.dottedName(c)
		}
	}
	return javaast.Import{Selector: selector, IsStatic: isStatic}
}

// topLevel handles a top-level (or nested) type declaration.
func (w *walker) topLevel(n *sitter.Node) javaast.Node {
	switch n.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration":
		return w.classDecl(n)
	default:
		return nil
	}
}

func (w *walker) classDecl(n *sitter.Node) *javaast.ClassDecl {
	decl := &javaast.ClassDecl{}
	var body *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "identifier":
			if decl.Name == "" {
				decl.Name = w.text(c)
			}
		case "superclass":
			decl.Extends = w.dottedName(w.firstNamedChild(c))
		case "class_body", "interface_body", "enum_body":
			body = c
		}
	}
	if body != nil {
		decl.Body = w.classBody(body)
	}
	return decl
}

func (w *walker) classBody(n *sitter.Node) []javaast.Node {
	var nodes []javaast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration":
			nodes = append(nodes, w.classDecl(c))
		case "method_declaration", "constructor_declaration":
			nodes = append(nodes, w.methodDecl(c))
		case "field_declaration":
			nodes = append(nodes, w.variableDecls(c)...)
		}
	}
	return nodes
}

func (w *walker) methodDecl(n *sitter.Node) *javaast.MethodDecl {
	m := &javaast.MethodDecl{}
	var returnType *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "identifier":
			if m.Name == "" {
				m.Name = w.text(c)
			}
		case "formal_parameters":
			m.Parameters = w.formalParameters(c)
		case "block", "constructor_body":
			m.Body = w.block(c).Statements
		default:
			if isTypeNode(c) && returnType == nil {
				returnType = c
			}
		}
	}
	// The return type is a reference the declaration itself needs
	// resolved (e.g. "List<String> names()"); fold it into the body so
	// the analyzer's ordinary statement walk picks it up without a
	// dedicated field on MethodDecl.
	if ref := w.expr(returnType); ref != nil {
		m.Body = append([]javaast.Node{ref}, m.Body...)
	}
	return m
}

func (w *walker) formalParameters(n *sitter.Node) []*javaast.VariableDecl {
	var params []*javaast.VariableDecl
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "formal_parameter" && c.Type() != "spread_parameter" {
			continue
		}
		name := ""
		var typeNode *sitter.Node
		for j := 0; j < int(c.NamedChildCount()); j++ {
			gc := c.NamedChild(j)
			if gc.Type() == "identifier" {
				name = w.text(gc)
				continue
			}
			if isTypeNode(gc) && typeNode == nil {
				typeNode = gc
			}
		}
		if name != "" {
			params = append(params, &javaast.VariableDecl{Name: name, Init: w.expr(typeNode)})
		}
	}
	return params
}

// variableDecls handles field_declaration / local_variable_declaration,
// which may declare more than one name (e.g. "List<String> a, b = c;"),
// all sharing one declared type.
func (w *walker) variableDecls(n *sitter.Node) []javaast.Node {
	var typeNode *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if isTypeNode(c) && typeNode == nil {
			typeNode = c
		}
	}
	typeRef := w.expr(typeNode)

	var decls []javaast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "variable_declarator" {
			continue
		}
		decl := &javaast.VariableDecl{}
		for j := 0; j < int(c.NamedChildCount()); j++ {
			gc := c.NamedChild(j)
			if gc.Type() == "identifier" && decl.Name == "" {
				decl.Name = w.text(gc)
				continue
			}
			if decl.Name != "" && decl.Init == nil {
				decl.Init = w.expr(gc)
			}
		}
		decl.Init = combineRefs(typeRef, decl.Init)
		decls = append(decls, decl)
	}
	return decls
}

// isTypeNode reports whether n is one of the tree-sitter-java grammar's
// type node kinds, as opposed to a modifier, annotation or declarator.
func isTypeNode(n *sitter.Node) bool {
	switch n.Type() {
	case "type_identifier", "generic_type", "array_type", "scoped_type_identifier",
		"boolean_type", "integral_type", "floating_point_type", "void_type":
		return true
	default:
		return false
	}
}

// combineRefs folds two identifier-reference subtrees (either of which
// may be nil) into one Node the analyzer can walk.
func combineRefs(a, b javaast.Node) javaast.Node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return &javaast.Block{Statements: []javaast.Node{a, b}}
	}
}

func (w *walker) block(n *sitter.Node) *javaast.Block {
	b := &javaast.Block{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if s := w.stmt(n.NamedChild(i)); s != nil {
			b.Statements = append(b.Statements, s)
		}
	}
	return b
}

func (w *walker) stmt(n *sitter.Node) javaast.Node {
	switch n.Type() {
	case "block":
		return w.block(n)
	case "local_variable_declaration":
		decls := w.variableDecls(n)
		if len(decls) == 1 {
			return decls[0]
		}
		return &javaast.Block{Statements: decls}
	case "for_statement":
		return w.forStmt(n)
	case "enhanced_for_statement":
		return w.enhancedFor(n)
	case "try_statement", "try_with_resources_statement":
		return w.tryStmt(n)
	case "switch_expression", "switch_statement":
		return w.switchStmt(n)
	case "expression_statement":
		return w.expr(w.firstNamedChild(n))
	case "if_statement", "while_statement", "do_statement", "labeled_statement", "synchronized_statement":
		return w.genericBlockLike(n)
	default:
		return w.expr(n)
	}
}

// genericBlockLike folds a statement kind javaast has no dedicated
// variant for into a plain Block so its sub-expressions are still
// walked for identifier references, without opening any special scope
// semantics for it (matching §4.1's silence on if/while: they introduce
// no class/method-shaped scope of their own beyond a generic block).
func (w *walker) genericBlockLike(n *sitter.Node) javaast.Node {
	b := &javaast.Block{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if s := w.stmt(n.NamedChild(i)); s != nil {
			b.Statements = append(b.Statements, s)
		}
	}
	return b
}

func (w *walker) forStmt(n *sitter.Node) *javaast.ForStmt {
	f := &javaast.ForStmt{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "local_variable_declaration":
			decls := w.variableDecls(c)
			if len(decls) > 0 {
				f.Init = &javaast.Block{Statements: decls}
			}
		case "block":
			f.Body = w.block(c)
		default:
			if f.Body == nil && c.Type() != "" {
				// Best effort: the remaining named children in a
				// for_statement are condition/update expressions and a
				// possibly non-block body; treat anything not yet
				// claimed as an expression to scan for identifiers.
				if s := w.stmt(c); s != nil {
					if f.Cond == nil {
						f.Cond = s
					} else {
						f.Post = combineRefs(f.Post, s)
					}
				}
			}
		}
	}
	return f
}

func (w *walker) enhancedFor(n *sitter.Node) *javaast.EnhancedForStmt {
	f := &javaast.EnhancedForStmt{}
	var elementType *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch {
		case c.Type() == "identifier" && f.Element == nil:
			f.Element = &javaast.VariableDecl{Name: w.text(c)}
		case c.Type() == "block":
			f.Body = w.block(c)
		case f.Element == nil && isTypeNode(c):
			elementType = c
		case f.Element != nil && f.Iterable == nil:
			f.Iterable = w.expr(c)
		}
	}
	if f.Element != nil {
		f.Element.Init = w.expr(elementType)
	}
	return f
}

func (w *walker) tryStmt(n *sitter.Node) *javaast.TryStmt {
	t := &javaast.TryStmt{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "resource_specification":
			for j := 0; j < int(c.NamedChildCount()); j++ {
				r := c.NamedChild(j)
				if r.Type() == "resource" {
					t.Resources = append(t.Resources, w.resource(r))
				}
			}
		case "block":
			if t.Body == nil {
				t.Body = w.block(c)
			} else {
				t.Finally = w.block(c)
			}
		case "catch_clause":
			t.Catches = append(t.Catches, w.catchClause(c))
		}
	}
	return t
}

func (w *walker) resource(n *sitter.Node) *javaast.VariableDecl {
	decl := &javaast.VariableDecl{}
	var typeNode *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "identifier" {
			decl.Name = w.text(c)
			continue
		}
		if isTypeNode(c) && typeNode == nil {
			typeNode = c
		}
	}
	decl.Init = w.expr(typeNode)
	return decl
}

func (w *walker) catchClause(n *sitter.Node) *javaast.CatchClause {
	cc := &javaast.CatchClause{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "catch_formal_parameter":
			var typeNode *sitter.Node
			for j := 0; j < int(c.NamedChildCount()); j++ {
				p := c.NamedChild(j)
				if p.Type() == "identifier" {
					cc.Parameter = &javaast.VariableDecl{Name: w.text(p)}
					continue
				}
				// catch_type wraps one or more type alternatives in a
				// multi-catch ("catch (IOException | SQLException e)");
				// isTypeNode won't match it, so match it by name and let
				// expr's generic walk find the type_identifiers inside.
				if p.Type() == "catch_type" && typeNode == nil {
					typeNode = p
				}
			}
			if cc.Parameter != nil {
				cc.Parameter.Init = w.expr(typeNode)
			}
		case "block":
			cc.Body = w.block(c)
		}
	}
	return cc
}

func (w *walker) switchStmt(n *sitter.Node) *javaast.SwitchStmt {
	s := &javaast.SwitchStmt{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "parenthesized_expression":
			s.Selector = w.expr(w.firstNamedChild(c))
		case "switch_block":
			for j := 0; j < int(c.NamedChildCount()); j++ {
				if st := w.stmt(c.NamedChild(j)); st != nil {
					s.Cases = append(s.Cases, st)
				}
			}
		}
	}
	return s
}

// expr scans an arbitrary expression subtree, surfacing every identifier
// reference it contains as a Block of Idents. The analyzer only needs
// identifier references and declarations it opens scopes for, not a
// fully typed expression tree (§1's non-goal: no type checking).
func (w *walker) expr(n *sitter.Node) javaast.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "identifier" || n.Type() == "type_identifier" {
		return &javaast.Ident{Name: w.text(n)}
	}
	if n.Type() == "lambda_expression" {
		return w.lambda(n)
	}

	var idents []javaast.Node
	var walk func(*sitter.Node)
	walk = func(cur *sitter.Node) {
		if cur.Type() == "identifier" || cur.Type() == "type_identifier" {
			idents = append(idents, &javaast.Ident{Name: w.text(cur)})
			return
		}
		if cur.Type() == "lambda_expression" {
			idents = append(idents, w.lambda(cur))
			return
		}
		for i := 0; i < int(cur.NamedChildCount()); i++ {
			walk(cur.NamedChild(i))
		}
	}
	walk(n)
	if len(idents) == 0 {
		return nil
	}
	return &javaast.Block{Statements: idents}
}

func (w *walker) lambda(n *sitter.Node) *javaast.LambdaExpr {
	l := &javaast.LambdaExpr{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "identifier":
			l.Parameters = append(l.Parameters, &javaast.VariableDecl{Name: w.text(c)})
		case "formal_parameters", "inferred_parameters":
			l.Parameters = append(l.Parameters, w.formalParameters(c)...)
		case "block":
			l.Body = w.block(c)
		default:
			l.Body = w.expr(c)
		}
	}
	return l
}
