// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stdlib is the static standard-library candidate provider
// (§4.2, §6): a compile-time mapping from class simple name to every
// stdlib (package, isStatic) pair that introduces it.
package stdlib

import (
	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/types"
)

// entry records one standard-library import that introduces SimpleName.
type entry struct {
	pkg      string
	isStatic bool
}

// index maps a class simple name to every package that declares it.
// Deliberately small and representative rather than exhaustive: it is
// meant to exercise the selection strategy's stdlib subpriority rules
// (§4.4.3), not to be a complete JDK index (that would be machine-
// generated from the JDK's own module descriptors, which is out of
// scope, §1).
var index = map[string][]entry{
	"List": {
		{pkg: "java.awt"},
		{pkg: "java.util"},
	},
	"Map": {
		{pkg: "java.util"},
	},
	"Set": {
		{pkg: "java.util"},
	},
	"ArrayList": {
		{pkg: "java.util"},
	},
	"HashMap": {
		{pkg: "java.util"},
	},
	"Optional": {
		{pkg: "java.util"},
	},
	"Date": {
		{pkg: "java.sql"},
		{pkg: "java.util"},
	},
	"Files": {
		{pkg: "java.nio.file"},
	},
	"Path": {
		{pkg: "java.nio.file"},
	},
	"Pattern": {
		{pkg: "java.util.regex"},
	},
	"Matcher": {
		{pkg: "java.util.regex"},
	},
	"Collectors": {
		{pkg: "java.util.stream"},
	},
	"Stream": {
		{pkg: "java.util.stream"},
	},
	"AtomicInteger": {
		{pkg: "java.util.concurrent.atomic"},
	},
	"IOException": {
		{pkg: "java.io"},
	},
	"assertEquals": {
		{pkg: "org.junit.Assert", isStatic: true},
	},
}

// Provider is the candidates.Source backed by the static index.
type Provider struct{}

// New returns a ready-to-use standard-library provider.
func New() Provider { return Provider{} }

// Find returns, for every identifier with an entry in the static index, a
// candidate per stdlib package that declares it.
func (Provider) Find(identifiers []string) candidates.Map {
	out := candidates.Map{}
	for _, id := range identifiers {
		entries, ok := index[id]
		if !ok {
			continue
		}
		list := make([]types.Candidate, 0, len(entries))
		for _, e := range entries {
			selector := types.ParseSelector(e.pkg).Combine(types.NewSelector(id))
			im := types.NewImport(selector)
			if e.isStatic {
				im = types.NewStaticImport(selector)
			}
			list = append(list, types.Candidate{Import: im, Source: types.STDLIB})
		}
		out[id] = list
	}
	return out
}
