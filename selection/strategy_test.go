// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/types"
)

func imp(dotted string) types.Import {
	return types.NewImport(types.ParseSelector(dotted))
}

// S3 — selection prefers sibling.
func TestSelectPrefersSibling(t *testing.T) {
	cm := candidates.Map{
		"Foo": {
			{Import: imp("java.lang.Foo"), Source: types.STDLIB},
			{Import: imp("com.x.Foo"), Source: types.EXTERNAL},
			{Import: imp("com.mine.Foo"), Source: types.SIBLING},
		},
	}

	winners := Strategy{}.Select(cm)

	want := imp("com.mine.Foo")
	if got := winners["Foo"]; !got.Equal(want) {
		t.Errorf("winner = %v, want %v", got, want)
	}
}

// S4 — java.util beats same-length stdlib.
func TestSelectJavaUtilBeatsSameLengthStdlib(t *testing.T) {
	cm := candidates.Map{
		"List": {
			{Import: imp("java.awt.List"), Source: types.STDLIB},
			{Import: imp("java.util.List"), Source: types.STDLIB},
		},
	}

	winners := Strategy{}.Select(cm)

	want := imp("java.util.List")
	if got := winners["List"]; !got.Equal(want) {
		t.Errorf("winner = %v, want %v", got, want)
	}
}

func TestSelectShorterStdlibBeatsLonger(t *testing.T) {
	cm := candidates.Map{
		"Thing": {
			{Import: imp("com.example.deeply.nested.Thing"), Source: types.STDLIB},
			{Import: imp("com.example.Thing"), Source: types.STDLIB},
		},
	}

	winners := Strategy{}.Select(cm)

	want := imp("com.example.Thing")
	if got := winners["Thing"]; !got.Equal(want) {
		t.Errorf("winner = %v, want %v", got, want)
	}
}

func TestSelectEveryCandidateIdentifierHasAWinner(t *testing.T) {
	// §8 invariant 3: every selector present in input with at least one
	// candidate appears in the output.
	cm := candidates.Map{
		"A": {{Import: imp("p.A"), Source: types.EXTERNAL}},
		"B": {{Import: imp("q.B"), Source: types.EXTERNAL}},
	}

	winners := Strategy{}.Select(cm)

	if len(winners) != 2 {
		t.Fatalf("len(winners) = %d, want 2", len(winners))
	}
	if _, ok := winners["A"]; !ok {
		t.Error("missing winner for A")
	}
	if _, ok := winners["B"]; !ok {
		t.Error("missing winner for B")
	}
}

func TestSelectSameScopeAffinityCouplesSelectors(t *testing.T) {
	// "a" has only one candidate, anchoring the batch's preferred
	// package; "b" has two equally-ranked (both EXTERNAL) candidates, one
	// of which shares a's package and should win via rule 2.
	cm := candidates.Map{
		"a": {{Import: imp("com.shared.a"), Source: types.EXTERNAL}},
		"b": {
			{Import: imp("com.other.b"), Source: types.EXTERNAL},
			{Import: imp("com.shared.b"), Source: types.EXTERNAL},
		},
	}

	winners := Strategy{}.Select(cm)

	want := imp("com.shared.b")
	if got := winners["b"]; !got.Equal(want) {
		t.Errorf("winner for b = %v, want %v (same-scope affinity with a)", got, want)
	}
}

func TestSelectDeterministicAcrossInputOrder(t *testing.T) {
	base := []types.Candidate{
		{Import: imp("b.pkg.Thing"), Source: types.EXTERNAL},
		{Import: imp("a.pkg.Thing"), Source: types.EXTERNAL},
	}
	reversed := []types.Candidate{base[1], base[0]}

	w1 := Strategy{}.Select(candidates.Map{"Thing": base})
	w2 := Strategy{}.Select(candidates.Map{"Thing": reversed})

	if !w1["Thing"].Equal(w2["Thing"]) {
		t.Errorf("selection depends on input order: %v vs %v", w1["Thing"], w2["Thing"])
	}
}
