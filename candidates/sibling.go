// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package candidates

import "github.com/Songmu/javaimports/types"

// SiblingFile is the minimal shape the fixer driver's host supplies for
// each other source file sharing the fixed file's package: its package
// selector and the simple names of its top-level declarations.
type SiblingFile struct {
	Package      types.Selector
	TopLevelDecl []string
}

// SiblingSource is the sibling candidate source (§4.2): for every
// sibling file, each top-level declaration contributes a candidate for
// its simple name, selector = package combined with declared name.
type SiblingSource struct {
	Siblings []SiblingFile
}

// NewSiblingSource wraps a fixed slice of siblings discovered by the
// host (e.g. by listing other files in the same directory).
func NewSiblingSource(siblings []SiblingFile) *SiblingSource {
	return &SiblingSource{Siblings: siblings}
}

// Find returns one candidate per sibling declaration whose simple name is
// in identifiers.
func (s *SiblingSource) Find(identifiers []string) Map {
	want := make(map[string]bool, len(identifiers))
	for _, id := range identifiers {
		want[id] = true
	}

	out := Map{}
	for _, sib := range s.Siblings {
		for _, name := range sib.TopLevelDecl {
			if !want[name] {
				continue
			}
			selector := sib.Package.Combine(types.NewSelector(name))
			out[name] = append(out[name], types.Candidate{
				Import: types.NewImport(selector),
				Source: types.SIBLING,
			})
		}
	}
	return out
}
