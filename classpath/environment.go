// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classpath implements the external-environment candidate source
// (§4.2, component E): it indexes every class visible via a module's
// resolved Maven dependencies by simple name, lazily on first lookup, and
// serves concurrent lookups safely.
//
// Indexing a jar's own class table byte-for-byte is an external
// collaborator's job (§1 explicitly excludes "JAR indexing at the bytes
// level"); this package owns cache population, locking and the
// concurrency-safe lazy-index contract around whatever ArtifactIndexer
// the host supplies.
package classpath

import (
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/termie/go-shutil"
	"github.com/theckman/go-flock"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/maven"
	"github.com/Songmu/javaimports/types"
)

// ArtifactIndexer scans one resolved jar on disk and returns, for every
// class it declares, the import candidates that class introduces. This
// is the external, byte-level collaborator (§1).
type ArtifactIndexer interface {
	IndexArtifact(jarPath string) (map[string][]types.Import, error)
}

// LocalRepository locates the on-disk jar for a resolved coordinate,
// e.g. a standard ~/.m2/repository layout.
type LocalRepository interface {
	ArtifactPath(c maven.Coordinate) (string, error)
}

// Environment is the pluggable "external environment" contract (§6) that
// the Maven subsystem (C, D, E) implements. It is safe for concurrent
// use; Find blocks on first call until the index is fully populated.
type Environment struct {
	repo     LocalRepository
	indexer  ArtifactIndexer
	cacheDir string
	deps     []maven.Coordinate

	once    sync.Once
	mu      sync.RWMutex
	index   map[string][]types.Candidate
	indexErr error
}

// New returns an Environment over deps, the module's resolved
// dependencies, using repo to locate each artifact's jar and indexer to
// scan it. cacheDir is where artifacts are staged locally before
// scanning; it must already exist (New does not create it), and the scan
// holds a flock on a lock file inside it so that two concurrent
// javaimports invocations sharing a warm cache directory don't race the
// scan.
func New(deps []maven.Coordinate, repo LocalRepository, indexer ArtifactIndexer, cacheDir string) *Environment {
	return &Environment{repo: repo, indexer: indexer, cacheDir: cacheDir, deps: maven.ResolveVersionConflicts(deps)}
}

// Find implements candidates.Source. It is safe from any goroutine and
// idempotent: the underlying scan runs exactly once per Environment.
func (e *Environment) Find(identifiers []string) candidates.Map {
	e.once.Do(e.populate)

	e.mu.RLock()
	defer e.mu.RUnlock()

	out := candidates.Map{}
	for _, id := range identifiers {
		if list, ok := e.index[id]; ok {
			out[id] = append(out[id], list...)
		}
	}
	return out
}

// Err reports the first error encountered while populating the index, if
// any. A populate failure degrades the environment to "no candidates"
// rather than aborting the fixer (§7): callers that want to surface it
// (e.g. --debug) can check Err after a Find call.
func (e *Environment) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indexErr
}

func (e *Environment) populate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.index = map[string][]types.Candidate{}

	lock := flock.NewFlock(filepath.Join(e.cacheDir, ".javaimports-classpath.lock"))
	if err := lock.Lock(); err != nil {
		e.indexErr = errors.Wrap(err, "locking classpath cache")
		return
	}
	defer lock.Unlock()

	type scanResult struct {
		classes map[string][]types.Import
		err     error
	}
	results := make([]scanResult, len(e.deps))

	var wg sync.WaitGroup
	for i, dep := range e.deps {
		wg.Add(1)
		go func(i int, dep maven.Coordinate) {
			defer wg.Done()
			classes, err := e.scanOne(dep)
			results[i] = scanResult{classes: classes, err: err}
		}(i, dep)
	}
	wg.Wait()

	for i, r := range results {
		if r.err != nil {
			// A single artifact failing to scan (missing from the local
			// repository, unreadable jar, ...) degrades to "no
			// candidates from that artifact" rather than aborting the
			// whole index (§7 favors producing output over reporting
			// problems).
			if e.indexErr == nil {
				e.indexErr = errors.Wrapf(r.err, "indexing %s:%s", e.deps[i].GroupID, e.deps[i].ArtifactID)
			}
			continue
		}
		for simpleName, imports := range r.classes {
			for _, im := range imports {
				e.index[simpleName] = append(e.index[simpleName], types.Candidate{Import: im, Source: types.EXTERNAL})
			}
		}
	}
}

func (e *Environment) scanOne(dep maven.Coordinate) (map[string][]types.Import, error) {
	src, err := e.repo.ArtifactPath(dep)
	if err != nil {
		return nil, err
	}

	cached := filepath.Join(e.cacheDir, filepath.Base(src))
	if err := shutil.CopyFile(src, cached, true); err != nil {
		return nil, errors.Wrap(err, "staging artifact into classpath cache")
	}

	return e.indexer.IndexArtifact(cached)
}
