// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maven

import "testing"

func TestResolveVersionConflictsKeepsHigherSemver(t *testing.T) {
	deps := []Coordinate{
		{GroupID: "com.example", ArtifactID: "lib", Version: "1.2.0"},
		{GroupID: "com.example", ArtifactID: "lib", Version: "1.10.0"},
	}

	out := ResolveVersionConflicts(deps)

	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Version != "1.10.0" {
		t.Errorf("Version = %q, want 1.10.0", out[0].Version)
	}
}

func TestResolveVersionConflictsFallsBackToLexicographic(t *testing.T) {
	deps := []Coordinate{
		{GroupID: "com.example", ArtifactID: "lib", Version: "1.2.3.RELEASE"},
		{GroupID: "com.example", ArtifactID: "lib", Version: "1.2.4.RELEASE"},
	}

	out := ResolveVersionConflicts(deps)

	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Version != "1.2.4.RELEASE" {
		t.Errorf("Version = %q, want 1.2.4.RELEASE", out[0].Version)
	}
}

func TestResolveVersionConflictsPreservesDistinctArtifacts(t *testing.T) {
	deps := []Coordinate{
		{GroupID: "com.example", ArtifactID: "lib-a", Version: "1.0"},
		{GroupID: "com.example", ArtifactID: "lib-b", Version: "1.0"},
	}

	out := ResolveVersionConflicts(deps)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}

func TestResolveVersionConflictsPreservesFirstSeenOrder(t *testing.T) {
	deps := []Coordinate{
		{GroupID: "com.example", ArtifactID: "lib-b", Version: "1.0"},
		{GroupID: "com.example", ArtifactID: "lib-a", Version: "1.0"},
	}

	out := ResolveVersionConflicts(deps)

	if out[0].ArtifactID != "lib-b" || out[1].ArtifactID != "lib-a" {
		t.Errorf("order = %+v, want first-seen order preserved", out)
	}
}
