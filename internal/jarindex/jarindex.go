// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jarindex is the default classpath.ArtifactIndexer: it lists a
// jar's entry names and derives, for every top-level .class file, the
// simple name and dotted package it would introduce.
//
// This stops well short of byte-level class indexing (parsing the
// constant pool to resolve public types, inherited static members,
// and so on); it only reads the zip central directory, which
// archive/zip already does without any third-party help. No example
// repo in the corpus ships a jar/class-file reader, so this is the
// one ambient package built directly on the standard library rather
// than a vendored dep.
package jarindex

import (
	"archive/zip"
	"strings"

	"github.com/pkg/errors"

	"github.com/Songmu/javaimports/types"
)

// Indexer implements classpath.ArtifactIndexer over java archives on
// disk.
type Indexer struct{}

// New returns a ready-to-use Indexer.
func New() Indexer { return Indexer{} }

// IndexArtifact implements classpath.ArtifactIndexer.
func (Indexer) IndexArtifact(jarPath string) (map[string][]types.Import, error) {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", jarPath)
	}
	defer r.Close()

	out := map[string][]types.Import{}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.Name
		if !strings.HasSuffix(name, ".class") || strings.Contains(name, "$") {
			// Inner/anonymous classes ("Outer$Inner.class") aren't
			// directly importable by simple name; skip them.
			continue
		}
		name = strings.TrimSuffix(name, ".class")
		segments := strings.Split(name, "/")
		if len(segments) == 0 {
			continue
		}
		simple := segments[len(segments)-1]
		if simple == "package-info" || simple == "module-info" {
			continue
		}
		selector := types.NewSelector(segments...)
		out[simple] = append(out[simple], types.NewImport(selector))
	}
	return out, nil
}
