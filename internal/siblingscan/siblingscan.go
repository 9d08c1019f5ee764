// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package siblingscan discovers the other Java source files in the
// fixed file's own directory and feeds them to a javaast.Parser to
// build the candidates.SiblingFile list the fixer driver's sibling
// source needs.
package siblingscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/javaast"
	"github.com/Songmu/javaimports/types"
)

// Scan lists every "*.java" file in dir other than skip (the file being
// fixed) and parses each one just far enough to record its package and
// the names of its top-level type declarations. A sibling that fails to
// parse is skipped rather than aborting the scan: it's the fixed file's
// own parse failure, not a sibling's, that's fatal (§7).
func Scan(dir, skip string, parser javaast.Parser) ([]candidates.SiblingFile, error) {
	skipAbs, err := filepath.Abs(skip)
	if err != nil {
		return nil, errors.Wrap(err, "resolving fixed file path")
	}

	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var siblings []candidates.SiblingFile
	for _, name := range names {
		if !strings.HasSuffix(name, ".java") {
			continue
		}
		path := filepath.Join(dir, name)
		if abs, err := filepath.Abs(path); err == nil && abs == skipAbs {
			continue
		}

		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cu, diags, err := parser.Parse(path, src)
		if err != nil || len(diags) > 0 || cu == nil {
			continue
		}

		var pkg types.Selector
		if len(cu.Package) > 0 {
			pkg = types.NewSelector(cu.Package...)
		}
		siblings = append(siblings, candidates.SiblingFile{
			Package:      pkg,
			TopLevelDecl: topLevelNames(cu),
		})
	}
	return siblings, nil
}

func topLevelNames(cu *javaast.CompilationUnit) []string {
	var names []string
	for _, decl := range cu.Declarations {
		if c, ok := decl.(*javaast.ClassDecl); ok {
			names = append(names, c.Name)
		}
	}
	return names
}
