// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package javalog

import (
	"bytes"
	"testing"
)

func TestLogln(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Logln("a", "b")
	if got, want := buf.String(), "a b\n"; got != want {
		t.Errorf("Logln output = %q, want %q", got, want)
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Logf("%s=%d", "n", 3)
	if got, want := buf.String(), "n=3"; got != want {
		t.Errorf("Logf output = %q, want %q", got, want)
	}
}

func TestLogImportsfln(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.LogImportsfln("skipping %s", "Foo.java")
	if got, want := buf.String(), "javaimports: skipping Foo.java\n"; got != want {
		t.Errorf("LogImportsfln output = %q, want %q", got, want)
	}
}
