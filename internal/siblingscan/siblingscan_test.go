// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package siblingscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Songmu/javaimports/javaast"
)

// stubParser returns a fixed CompilationUnit per filename, simulating a
// real parse without depending on a concrete grammar implementation.
type stubParser struct {
	units map[string]*javaast.CompilationUnit
}

func (p stubParser) Parse(filename string, src []byte) (*javaast.CompilationUnit, []javaast.Diagnostic, error) {
	cu, ok := p.units[filepath.Base(filename)]
	if !ok {
		return &javaast.CompilationUnit{}, nil, nil
	}
	return cu, nil, nil
}

func writeJavaFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("// stub\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestScanSkipsFixedFile(t *testing.T) {
	dir := t.TempDir()
	fixed := writeJavaFile(t, dir, "Fixed.java")
	writeJavaFile(t, dir, "Helper.java")

	parser := stubParser{units: map[string]*javaast.CompilationUnit{
		"Helper.java": {
			Package:      []string{"com", "mine"},
			Declarations: []javaast.Node{&javaast.ClassDecl{Name: "Helper"}},
		},
	}}

	siblings, err := Scan(dir, fixed, parser)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(siblings) != 1 {
		t.Fatalf("siblings = %+v, want exactly one", siblings)
	}
	if got, want := siblings[0].Package.String(), "com.mine"; got != want {
		t.Errorf("Package = %q, want %q", got, want)
	}
	if len(siblings[0].TopLevelDecl) != 1 || siblings[0].TopLevelDecl[0] != "Helper" {
		t.Errorf("TopLevelDecl = %v", siblings[0].TopLevelDecl)
	}
}

func TestScanDefaultPackage(t *testing.T) {
	dir := t.TempDir()
	fixed := filepath.Join(dir, "Fixed.java")
	writeJavaFile(t, dir, "Helper.java")

	parser := stubParser{units: map[string]*javaast.CompilationUnit{
		"Helper.java": {Declarations: []javaast.Node{&javaast.ClassDecl{Name: "Helper"}}},
	}}

	siblings, err := Scan(dir, fixed, parser)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(siblings) != 1 {
		t.Fatalf("siblings = %+v, want exactly one", siblings)
	}
	if siblings[0].Package.Size() != 0 {
		t.Errorf("Package = %v, want the zero value for a default-package file", siblings[0].Package)
	}
}

func TestScanIgnoresNonJavaFiles(t *testing.T) {
	dir := t.TempDir()
	fixed := filepath.Join(dir, "Fixed.java")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	siblings, err := Scan(dir, fixed, stubParser{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(siblings) != 0 {
		t.Errorf("siblings = %+v, want none", siblings)
	}
}
