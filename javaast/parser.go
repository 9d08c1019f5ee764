// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package javaast

import "fmt"

// Diagnostic is a single parser failure, rendered per §6 as
// "line:column: error: message".
type Diagnostic struct {
	Line, Column int
	Message      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: error: %s", d.Line, d.Column, d.Message)
}

// Parser is the external lexer/parser contract (§1, §6): it produces a
// compilation unit root over which the scope analyzer walks. A fatal
// parse error aborts the run with the returned diagnostics; the
// analyzer never sees a partially-parsed file.
type Parser interface {
	Parse(filename string, src []byte) (*CompilationUnit, []Diagnostic, error)
}
