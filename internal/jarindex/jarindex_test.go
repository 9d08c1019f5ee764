// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jarindex

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeTestJar(t *testing.T, entries []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jar")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range entries {
		if _, err := w.Create(name); err != nil {
			t.Fatalf("Create entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip.Close: %v", err)
	}
	return path
}

func TestIndexArtifactTopLevelClass(t *testing.T) {
	jar := writeTestJar(t, []string{"com/example/Foo.class"})

	out, err := New().IndexArtifact(jar)
	if err != nil {
		t.Fatalf("IndexArtifact: %v", err)
	}

	imports, ok := out["Foo"]
	if !ok || len(imports) != 1 {
		t.Fatalf("out[Foo] = %v", imports)
	}
	if got, want := imports[0].Selector.String(), "com.example.Foo"; got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestIndexArtifactSkipsInnerClasses(t *testing.T) {
	jar := writeTestJar(t, []string{"com/example/Foo$Inner.class", "com/example/Foo.class"})

	out, err := New().IndexArtifact(jar)
	if err != nil {
		t.Fatalf("IndexArtifact: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("out = %v, want exactly one entry", out)
	}
	if _, ok := out["Foo"]; !ok {
		t.Error("expected Foo to be indexed")
	}
}

func TestIndexArtifactSkipsPackageAndModuleInfo(t *testing.T) {
	jar := writeTestJar(t, []string{"com/example/package-info.class", "module-info.class"})

	out, err := New().IndexArtifact(jar)
	if err != nil {
		t.Fatalf("IndexArtifact: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
}

func TestIndexArtifactSkipsNonClassEntries(t *testing.T) {
	jar := writeTestJar(t, []string{"META-INF/MANIFEST.MF", "com/example/"})

	out, err := New().IndexArtifact(jar)
	if err != nil {
		t.Fatalf("IndexArtifact: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
}

func TestIndexArtifactMissingFile(t *testing.T) {
	if _, err := New().IndexArtifact("/nonexistent/path.jar"); err == nil {
		t.Error("expected an error for a missing jar")
	}
}
