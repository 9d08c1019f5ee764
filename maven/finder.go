// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maven

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadError is one failure encountered while walking the parent POM
// chain. Loader errors accumulate into a result-level list and do not
// abort the walk (§4.3, §7) unless the root POM itself fails to parse.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "loading " + e.Path + ": " + e.Err.Error()
}

// Result is the outcome of walking a module's parent POM chain: its
// final (possibly still not-fully-defined) FlatPom and any errors
// encountered loading ancestors.
type Result struct {
	Pom    *FlatPom
	Errors []*LoadError
}

// FindModuleRoot walks upward from the directory containing file looking
// for the nearest ancestor directory that contains a pom.xml, supplementing
// §4.3's description of a single moduleRoot with the common case of a
// source file nested several directories below its module's POM (e.g.
// under src/main/java/...). It stops at the filesystem root.
func FindModuleRoot(file string) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return "", errors.Wrap(err, "resolving source file directory")
	}
	for {
		candidate := filepath.Join(dir, "pom.xml")
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("no pom.xml found above %s", filepath.Dir(file))
		}
		dir = parent
	}
}

// LoadDependencies starts at <moduleRoot>/pom.xml and walks the parent
// chain (§4.3's dependency finder, component D) while the POM has a
// parent and is not well-defined, merging each ancestor in turn. The
// declared dependencies of the final POM are the module's dependency
// list.
func LoadDependencies(moduleRoot string) (*Result, error) {
	rootPath := filepath.Join(moduleRoot, "pom.xml")
	pom, _, err := loadPom(rootPath)
	if err != nil {
		// The root POM failing to parse is the one loader failure that
		// aborts the walk (§4.3).
		return nil, errors.Wrapf(err, "loading root pom %s", rootPath)
	}

	result := &Result{Pom: pom}
	currentPath := rootPath

	for pom.HasParent() && !pom.IsWellDefined() {
		parentPath := resolveParentPath(currentPath, pom.ParentPath)
		parentPom, _, err := loadPom(parentPath)
		if err != nil {
			result.Errors = append(result.Errors, &LoadError{Path: parentPath, Err: err})
			// Can't climb further along a chain we failed to load.
			break
		}
		pom.Merge(parentPom)
		currentPath = parentPath
	}

	return result, nil
}

// loadPom reads and decodes the POM at path, translating its <parent>
// element (if any) into the ParentPath a Builder expects, per §6's
// relativePath rules: absent means implicit "../pom.xml", empty string
// means no parent, anything else is resolved relative to path's
// directory by resolveParentPath at the next loop iteration.
func loadPom(path string) (*FlatPom, *ParentRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening pom.xml")
	}
	defer f.Close()

	builder, parentRef, err := Decode(f)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case parentRef == nil:
		builder.WithParentPath("")
	case parentRef.HasRelativePath && parentRef.RelativePath == "":
		builder.WithParentPath("")
	case parentRef.HasRelativePath:
		builder.WithParentPath(parentRef.RelativePath)
	default:
		builder.WithParentPath("../pom.xml")
	}

	return builder.Build(), parentRef, nil
}

// resolveParentPath applies §6's relativePath rules relative to the POM
// at currentPomPath: a path to a pom.xml is used as-is, a path to a
// directory has pom.xml appended, and the result is normalized to
// collapse ".." segments.
func resolveParentPath(currentPomPath, relativePath string) string {
	dir := filepath.Dir(currentPomPath)
	joined := filepath.Join(dir, relativePath)
	if filepath.Base(joined) != "pom.xml" {
		joined = filepath.Join(joined, "pom.xml")
	}
	return filepath.Clean(joined)
}
