// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maven

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// project is the subset of the Maven 4.0.0 POM model this tool consumes
// (§6): dependency and dependencyManagement coordinates, properties, and
// the parent coordinate/relativePath. Every other POM element (plugins,
// profiles, modules, build configuration, ...) is ignored by the decoder.
type project struct {
	XMLName xml.Name `xml:"project"`

	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`

	Parent *xmlParent `xml:"parent"`

	Properties struct {
		Entries []xmlProperty `xml:",any"`
	} `xml:"properties"`

	Dependencies struct {
		Dependency []xmlDependency `xml:"dependency"`
	} `xml:"dependencies"`

	DependencyManagement struct {
		Dependencies struct {
			Dependency []xmlDependency `xml:"dependency"`
		} `xml:"dependencies"`
	} `xml:"dependencyManagement"`
}

type xmlParent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath *string `xml:"relativePath"`
}

type xmlDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Type       string `xml:"type"`
	Classifier string `xml:"classifier"`
	Scope      string `xml:"scope"`
	Optional   string `xml:"optional"`
}

// xmlProperty captures one arbitrary <name>value</name> element inside
// <properties>; Maven properties have no fixed element names.
type xmlProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

func (d xmlDependency) coordinate() Coordinate {
	return Coordinate{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Type:       d.Type,
		Classifier: d.Classifier,
		Scope:      d.Scope,
		Optional:   d.Optional == "true",
	}
}

// Decode reads a Maven 4.0.0 POM from r and returns a Builder primed with
// its dependencies, managed dependencies, properties and parent path
// (§6's POM file format). The caller still supplies a parent path
// resolution policy (§4.3's relativePath rules) from the returned
// ParentRef.
func Decode(r io.Reader) (*Builder, *ParentRef, error) {
	var p project
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, nil, errors.Wrap(err, "decoding pom.xml")
	}

	deps := make([]Coordinate, len(p.Dependencies.Dependency))
	for i, d := range p.Dependencies.Dependency {
		deps[i] = d.coordinate()
	}
	managed := make([]Coordinate, len(p.DependencyManagement.Dependencies.Dependency))
	for i, d := range p.DependencyManagement.Dependencies.Dependency {
		managed[i] = d.coordinate()
	}

	props := map[string]string{}
	// Maven's built-in self-referential properties resolve against the
	// POM's own coordinate before the explicit <properties> map is
	// applied, so set them first and let an explicit (unusual, but
	// legal) override win.
	if p.GroupID != "" {
		props["project.groupId"] = p.GroupID
	}
	if p.ArtifactID != "" {
		props["project.artifactId"] = p.ArtifactID
	}
	if p.Version != "" {
		props["project.version"] = p.Version
	}
	for _, entry := range p.Properties.Entries {
		props[entry.XMLName.Local] = entry.Value
	}

	b := NewBuilder().
		WithDependencies(deps).
		WithManagedDependencies(managed).
		WithProperties(props)

	var parentRef *ParentRef
	if p.Parent != nil {
		parentRef = &ParentRef{
			GroupID:    p.Parent.GroupID,
			ArtifactID: p.Parent.ArtifactID,
			Version:    p.Parent.Version,
		}
		if p.Parent.RelativePath != nil {
			parentRef.RelativePath = *p.Parent.RelativePath
			parentRef.HasRelativePath = true
		}
	}

	return b, parentRef, nil
}

// ParentRef is the <parent> element of a POM (§6): its coordinate plus
// the raw relativePath text, distinguishing "absent" from "present but
// empty" (an empty relativePath means "no parent", §6).
type ParentRef struct {
	GroupID, ArtifactID, Version string
	RelativePath                string
	HasRelativePath              bool
}
