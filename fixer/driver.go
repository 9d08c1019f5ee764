// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixer implements the fixer driver (§4.5, component H): the
// loader loop, retry policy and final result assembly that ties the
// scope analyzer, candidate registry and selection strategy together.
package fixer

import (
	"sort"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/scope"
	"github.com/Songmu/javaimports/selection"
	"github.com/Songmu/javaimports/types"
)

// Status reports whether a fix attempt fully resolved the file.
type Status int

const (
	// Complete means every unresolved identifier (and every orphan's
	// pending set) has a winning import, or there was nothing to fix.
	Complete Status = iota
	// Incomplete means orphan classes remain and this wasn't the last
	// try, or some identifiers still have no candidate after selection.
	Incomplete
)

// Outcome is the result of one Load+Fix cycle.
type Outcome struct {
	Status  Status
	Imports []types.Import
}

// Driver runs the load/fix alternation described in §4.5 over a single
// file's scope.Result, given the candidate sources to query and the
// selection strategy to rank with.
type Driver struct {
	Sources  []candidates.Source
	Strategy selection.Strategy
}

// New returns a Driver wired with sources and strategy.
func New(strategy selection.Strategy, sources ...candidates.Source) *Driver {
	return &Driver{Sources: sources, Strategy: strategy}
}

// TryToFix runs one cycle with lastTry=false: orphan classes still
// waiting on a superclass yield Incomplete so the caller can supply more
// context (more siblings, a warmed environment) and retry.
func (d *Driver) TryToFix(result scope.Result) Outcome {
	return d.run(result, false)
}

// LastTryToFix runs one cycle with lastTry=true: remaining orphans no
// longer defer the fix; their pending identifiers are aggregated and
// resolved (or left unresolved) immediately.
func (d *Driver) LastTryToFix(result scope.Result) Outcome {
	return d.run(result, true)
}

func (d *Driver) run(result scope.Result, lastTry bool) Outcome {
	if len(result.Unresolved) == 0 && len(result.Orphans) == 0 {
		return Outcome{Status: Complete}
	}

	if len(result.Orphans) > 0 && !lastTry {
		return Outcome{Status: Incomplete}
	}

	ids := aggregate(result)

	// The load phase: ask every source which of ids it can provide.
	// Its result feeds directly into selection, which is purely
	// additive and never consults the file's pre-existing imports.
	cm := candidates.Find(ids, d.Sources...)

	winners := d.Strategy.Select(cm)

	imports := make([]types.Import, 0, len(winners))
	complete := true
	for _, id := range ids {
		im, ok := winners[id]
		if !ok {
			complete = false
			continue
		}
		imports = append(imports, im)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Selector.String() < imports[j].Selector.String()
	})

	status := Incomplete
	if complete {
		status = Complete
	}
	return Outcome{Status: status, Imports: imports}
}

// aggregate gathers every identifier the fixer must find an import for:
// the top-level unresolved set plus every orphan's pending set (§4.5).
func aggregate(result scope.Result) []string {
	seen := map[string]bool{}
	var ids []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			ids = append(ids, name)
		}
	}
	for _, id := range result.Unresolved {
		add(id)
	}
	for _, orphan := range result.Orphans {
		for name := range orphan.Pending {
			add(name)
		}
	}
	sort.Strings(ids)
	return ids
}
