// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maven implements the flattened-POM inheritance merge and
// parent-chain walk (§4.3, components C and D): given a source file on
// disk, discover the enclosing Maven module, walk the parent POM chain,
// and flatten dependency declarations through property substitution and
// dependency-management inheritance.
package maven

import "strings"

// Coordinate identifies a single Maven dependency declaration.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string // defaults to "jar"
	Classifier string
	Scope      string // defaults to "compile"
	Optional   bool
}

// normalize fills in the Maven defaults for Type and Scope.
func (c Coordinate) normalize() Coordinate {
	if c.Type == "" {
		c.Type = "jar"
	}
	if c.Scope == "" {
		c.Scope = "compile"
	}
	return c
}

// key identifies a coordinate for management lookup and dedup purposes:
// groupId, artifactId, type and classifier, deliberately excluding
// version, scope and optional (§4.3.1 — managed dependency matching is on
// "(groupId, artifactId, type, classifier-when-modeled)").
type key struct {
	groupID, artifactID, typ, classifier string
}

func (c Coordinate) key() key {
	return key{groupID: c.GroupID, artifactID: c.ArtifactID, typ: coalesce(c.Type, "jar"), classifier: c.Classifier}
}

func coalesce(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// IsResolved reports whether Version is non-empty and contains no
// "${...}" placeholder.
func (c Coordinate) IsResolved() bool {
	return c.Version != "" && !isPlaceholder(c.Version)
}

func isPlaceholder(version string) bool {
	return strings.Contains(version, "${")
}

// placeholderName extracts name from a "${name}" version string. It
// returns ok=false if version isn't of that exact form.
func placeholderName(version string) (name string, ok bool) {
	if !strings.HasPrefix(version, "${") || !strings.HasSuffix(version, "}") {
		return "", false
	}
	return version[2 : len(version)-1], true
}
