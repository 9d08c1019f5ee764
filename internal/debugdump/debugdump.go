// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugdump renders a run's resolved POM, candidates and
// selection trace as TOML for --debug output, marshaling plain structs
// with toml.Marshal instead of hand-building text.
package debugdump

import (
	"github.com/pelletier/go-toml"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/maven"
	"github.com/Songmu/javaimports/types"
)

type rawCoordinate struct {
	GroupID    string `toml:"groupId"`
	ArtifactID string `toml:"artifactId"`
	Version    string `toml:"version"`
}

type rawCandidate struct {
	Identifier string `toml:"identifier"`
	Import     string `toml:"import"`
	Source     string `toml:"source"`
}

type rawPomError struct {
	Path  string `toml:"path"`
	Error string `toml:"error"`
}

// Snapshot is the top-level shape written out under --debug.
type Snapshot struct {
	Dependencies []rawCoordinate `toml:"dependencies"`
	PomErrors    []rawPomError   `toml:"pom_errors"`
	Candidates   []rawCandidate  `toml:"candidates"`
	Winners      []rawCandidate  `toml:"winners"`
}

// Build assembles a Snapshot from one fixer run's intermediate state.
func Build(result *maven.Result, cm candidates.Map, winners types.BestCandidates) Snapshot {
	var snap Snapshot

	if result != nil && result.Pom != nil {
		for _, dep := range result.Pom.Dependencies {
			snap.Dependencies = append(snap.Dependencies, rawCoordinate{
				GroupID:    dep.GroupID,
				ArtifactID: dep.ArtifactID,
				Version:    dep.Version,
			})
		}
	}
	if result != nil {
		for _, loadErr := range result.Errors {
			snap.PomErrors = append(snap.PomErrors, rawPomError{Path: loadErr.Path, Error: loadErr.Err.Error()})
		}
	}

	for id, list := range cm {
		for _, c := range list {
			snap.Candidates = append(snap.Candidates, rawCandidate{
				Identifier: id,
				Import:     c.Import.Selector.String(),
				Source:     c.Source.String(),
			})
		}
	}
	for id, im := range winners {
		snap.Winners = append(snap.Winners, rawCandidate{Identifier: id, Import: im.Selector.String()})
	}

	return snap
}

// Marshal renders the snapshot as TOML text.
func Marshal(snap Snapshot) ([]byte, error) {
	return toml.Marshal(snap)
}
