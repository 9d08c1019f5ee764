// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package javaast

import "testing"

func TestVariableDeclChildrenNilInit(t *testing.T) {
	v := &VariableDecl{Name: "x"}
	if children := v.Children(); children != nil {
		t.Errorf("Children() = %v, want nil for a declaration with no initializer", children)
	}
}

func TestVariableDeclChildrenWithInit(t *testing.T) {
	init := &Ident{Name: "y"}
	v := &VariableDecl{Name: "x", Init: init}
	children := v.Children()
	if len(children) != 1 || children[0] != init {
		t.Errorf("Children() = %v, want [%v]", children, init)
	}
}

func TestMethodDeclChildrenOrdersParametersBeforeBody(t *testing.T) {
	p := &VariableDecl{Name: "arg"}
	stmt := &Ident{Name: "s"}
	m := &MethodDecl{Parameters: []*VariableDecl{p}, Body: []Node{stmt}}

	children := m.Children()
	if len(children) != 2 || children[0] != Node(p) || children[1] != stmt {
		t.Errorf("Children() = %v, want [param, stmt]", children)
	}
}

func TestForStmtChildrenOmitsNilClauses(t *testing.T) {
	body := &Ident{Name: "body"}
	f := &ForStmt{Body: body}

	children := f.Children()
	if len(children) != 1 || children[0] != Node(body) {
		t.Errorf("Children() = %v, want [body] with Init/Cond/Post omitted", children)
	}
}

func TestEnhancedForStmtChildrenIncludesElement(t *testing.T) {
	elem := &VariableDecl{Name: "item"}
	iterable := &Ident{Name: "items"}
	f := &EnhancedForStmt{Element: elem, Iterable: iterable}

	children := f.Children()
	if len(children) != 2 || children[0] != Node(elem) || children[1] != Node(iterable) {
		t.Errorf("Children() = %v, want [element, iterable]", children)
	}
}

func TestTryStmtChildrenOrder(t *testing.T) {
	resource := &VariableDecl{Name: "r"}
	body := &Ident{Name: "body"}
	catch := &CatchClause{Parameter: &VariableDecl{Name: "e"}}
	finally := &Ident{Name: "finally"}
	try := &TryStmt{
		Resources: []*VariableDecl{resource},
		Body:      body,
		Catches:   []*CatchClause{catch},
		Finally:   finally,
	}

	children := try.Children()
	if len(children) != 4 {
		t.Fatalf("len(Children()) = %d, want 4", len(children))
	}
	if children[0] != Node(resource) || children[1] != Node(body) || children[2] != Node(catch) || children[3] != Node(finally) {
		t.Errorf("Children() = %v, want [resource, body, catch, finally]", children)
	}
}

func TestSwitchStmtChildrenIncludesSelectorAndCases(t *testing.T) {
	selector := &Ident{Name: "sel"}
	c1 := &Ident{Name: "case1"}
	s := &SwitchStmt{Selector: selector, Cases: []Node{c1}}

	children := s.Children()
	if len(children) != 2 || children[0] != Node(selector) || children[1] != c1 {
		t.Errorf("Children() = %v, want [selector, case1]", children)
	}
}

func TestLambdaExprChildrenOrdersParametersBeforeBody(t *testing.T) {
	p := &VariableDecl{Name: "x"}
	body := &Ident{Name: "body"}
	l := &LambdaExpr{Parameters: []*VariableDecl{p}, Body: body}

	children := l.Children()
	if len(children) != 2 || children[0] != Node(p) || children[1] != Node(body) {
		t.Errorf("Children() = %v, want [param, body]", children)
	}
}

func TestIdentHasNoChildren(t *testing.T) {
	if children := (&Ident{Name: "x"}).Children(); children != nil {
		t.Errorf("Children() = %v, want nil", children)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 3, Column: 7, Message: "unexpected token"}
	if got, want := d.String(), "3:7: error: unexpected token"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
