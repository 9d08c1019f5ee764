// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &Config{Args: []string{"javaimports", "--version"}, Stdout: &stdout, Stderr: &stderr}

	if got := c.Run(); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	if got := strings.TrimSpace(stdout.String()); got != version {
		t.Errorf("stdout = %q, want %q", got, version)
	}
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &Config{Args: []string{"javaimports"}, Stdout: &stdout, Stderr: &stderr}

	if got := c.Run(); got != 0 {
		t.Fatalf("Run() = %d, want 0", got)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr = %q, want a usage message", stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &Config{Args: []string{"javaimports", "/nonexistent/Foo.java"}, Stdout: &stdout, Stderr: &stderr}

	if got := c.Run(); got != 1 {
		t.Fatalf("Run() = %d, want 1", got)
	}
}

func TestRunFixesStdoutByDefault(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Foo.java")
	src := "package com.example;\n\nclass Foo {\n    List x;\n}\n"
	if err := os.WriteFile(file, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	c := &Config{Args: []string{"javaimports", file}, Stdout: &stdout, Stderr: &stderr}

	if got := c.Run(); got != 0 {
		t.Fatalf("Run() = %d, want 0; stderr: %s", got, stderr.String())
	}
	if !strings.Contains(stdout.String(), "import java.util.List;") {
		t.Errorf("stdout = %q, want an added java.util.List import", stdout.String())
	}

	// Without --write the original file must be left untouched.
	original, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(original) != src {
		t.Errorf("the source file changed without --write:\n%s", original)
	}
}

func TestRunWriteRewritesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Foo.java")
	src := "package com.example;\n\nclass Foo {\n    List x;\n}\n"
	if err := os.WriteFile(file, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	c := &Config{Args: []string{"javaimports", "--write", file}, Stdout: &stdout, Stderr: &stderr}

	if got := c.Run(); got != 0 {
		t.Fatalf("Run() = %d, want 0; stderr: %s", got, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty when --write is set", stdout.String())
	}

	rewritten, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(rewritten), "import java.util.List;") {
		t.Errorf("rewritten file = %q, want an added java.util.List import", rewritten)
	}
}
