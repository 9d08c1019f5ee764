// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Songmu/javaimports/maven"
	"github.com/Songmu/javaimports/types"
)

type fakeRepo map[string]string

func (r fakeRepo) ArtifactPath(c maven.Coordinate) (string, error) {
	path, ok := r[c.ArtifactID]
	if !ok {
		return "", os.ErrNotExist
	}
	return path, nil
}

type fakeIndexer map[string]map[string][]types.Import

func (idx fakeIndexer) IndexArtifact(jarPath string) (map[string][]types.Import, error) {
	classes, ok := idx[filepath.Base(jarPath)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return classes, nil
}

func writeFakeJar(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestEnvironmentFindIndexesDependencies(t *testing.T) {
	srcDir := t.TempDir()
	cacheDir := t.TempDir()

	jarPath := writeFakeJar(t, srcDir, "lib-1.0.jar")

	repo := fakeRepo{"lib": jarPath}
	indexer := fakeIndexer{
		"lib-1.0.jar": {
			"Foo": {types.NewImport(types.ParseSelector("com.example.Foo"))},
		},
	}

	env := New([]maven.Coordinate{{GroupID: "com.example", ArtifactID: "lib", Version: "1.0"}}, repo, indexer, cacheDir)

	out := env.Find([]string{"Foo"})
	got := out["Foo"]
	if len(got) != 1 {
		t.Fatalf("len(out[Foo]) = %d, want 1", len(got))
	}
	if got[0].Source != types.EXTERNAL {
		t.Errorf("Source = %v, want EXTERNAL", got[0].Source)
	}
	if err := env.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestEnvironmentFindDegradesOnMissingArtifact(t *testing.T) {
	cacheDir := t.TempDir()

	env := New([]maven.Coordinate{{GroupID: "com.example", ArtifactID: "missing", Version: "1.0"}}, fakeRepo{}, fakeIndexer{}, cacheDir)

	out := env.Find([]string{"Foo"})
	if len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
	if env.Err() == nil {
		t.Error("expected Err() to report the missing artifact")
	}
}

func TestEnvironmentFindIsIdempotent(t *testing.T) {
	srcDir := t.TempDir()
	cacheDir := t.TempDir()
	jarPath := writeFakeJar(t, srcDir, "lib-1.0.jar")

	repo := fakeRepo{"lib": jarPath}
	indexer := fakeIndexer{"lib-1.0.jar": {"Foo": {types.NewImport(types.ParseSelector("com.example.Foo"))}}}
	env := New([]maven.Coordinate{{GroupID: "com.example", ArtifactID: "lib", Version: "1.0"}}, repo, indexer, cacheDir)

	first := env.Find([]string{"Foo"})
	second := env.Find([]string{"Foo"})
	if len(first["Foo"]) != len(second["Foo"]) {
		t.Errorf("repeated Find calls produced different results: %v vs %v", first, second)
	}
}
