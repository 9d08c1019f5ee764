// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package localrepo is the default classpath.LocalRepository: a
// standard ~/.m2/repository layout.
package localrepo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Songmu/javaimports/maven"
)

// Repository locates artifacts under a Maven local repository root.
type Repository struct {
	Root string
}

// New returns a Repository rooted at root.
func New(root string) Repository {
	return Repository{Root: root}
}

// Default returns a Repository rooted at the current user's
// ~/.m2/repository, the same default `mvn` itself uses.
func Default() (Repository, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Repository{}, errors.Wrap(err, "locating home directory")
	}
	return New(filepath.Join(home, ".m2", "repository")), nil
}

// ArtifactPath implements classpath.LocalRepository.
func (r Repository) ArtifactPath(c maven.Coordinate) (string, error) {
	if c.GroupID == "" || c.ArtifactID == "" || c.Version == "" {
		return "", errors.Errorf("incomplete coordinate %+v", c)
	}
	typ := c.Type
	if typ == "" {
		typ = "jar"
	}

	dir := filepath.Join(append(
		[]string{r.Root},
		append(strings.Split(c.GroupID, "."), c.ArtifactID, c.Version)...,
	)...)

	name := c.ArtifactID + "-" + c.Version
	if c.Classifier != "" {
		name += "-" + c.Classifier
	}
	name += "." + typ

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "locating %s:%s:%s in local repository", c.GroupID, c.ArtifactID, c.Version)
	}
	return path, nil
}
