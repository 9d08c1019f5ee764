// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package candidates

import (
	"testing"

	"github.com/Songmu/javaimports/types"
)

func TestSiblingSourceFind(t *testing.T) {
	src := NewSiblingSource([]SiblingFile{
		{
			Package:      types.ParseSelector("com.mine"),
			TopLevelDecl: []string{"Helper", "Other"},
		},
	})

	out := src.Find([]string{"Helper"})

	got := out["Helper"]
	if len(got) != 1 {
		t.Fatalf("len(out[Helper]) = %d, want 1", len(got))
	}
	want := types.NewImport(types.ParseSelector("com.mine.Helper"))
	if !got[0].Import.Equal(want) {
		t.Errorf("import = %v, want %v", got[0].Import, want)
	}
	if got[0].Source != types.SIBLING {
		t.Errorf("source = %v, want SIBLING", got[0].Source)
	}
	if _, ok := out["Other"]; ok {
		t.Error("Find returned a candidate for a declaration that wasn't requested")
	}
}

func TestSiblingSourceDefaultPackage(t *testing.T) {
	src := NewSiblingSource([]SiblingFile{
		{TopLevelDecl: []string{"Helper"}},
	})

	out := src.Find([]string{"Helper"})

	want := types.NewImport(types.NewSelector("Helper"))
	if got := out["Helper"][0].Import; !got.Equal(want) {
		t.Errorf("default-package sibling import = %v, want %v", got, want)
	}
}

func TestSiblingSourceNoMatch(t *testing.T) {
	src := NewSiblingSource([]SiblingFile{
		{Package: types.ParseSelector("com.mine"), TopLevelDecl: []string{"Helper"}},
	})

	out := src.Find([]string{"Unrelated"})

	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}
