// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package importwrite is the thin, external-per-§1 source rewriter: it
// takes the fixer's resolved imports plus whatever import declarations
// were already in the file and produces the rewritten source text the
// CLI writes to stdout.
package importwrite

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Songmu/javaimports/javaast"
	"github.com/Songmu/javaimports/types"
)

var importLineRE = regexp.MustCompile(`(?m)^[ \t]*import[ \t]+.*;[ \t]*\r?\n?`)
var packageLineRE = regexp.MustCompile(`(?m)^[ \t]*package[ \t]+[^;]+;[ \t]*\r?\n?`)

// Rewrite strips every existing import line out of src and reinserts
// the union of existing and additions, sorted, right after the package
// declaration (or at the top of the file if there is none).
func Rewrite(src []byte, existing []javaast.Import, additions []types.Import) []byte {
	body := importLineRE.ReplaceAll(src, nil)

	block := formatBlock(mergeImports(existing, additions))
	if block == "" {
		return body
	}

	loc := packageLineRE.FindIndex(body)
	if loc == nil {
		return append([]byte(block), body...)
	}

	out := make([]byte, 0, len(body)+len(block))
	out = append(out, body[:loc[1]]...)
	out = append(out, '\n')
	out = append(out, block...)
	out = append(out, body[loc[1]:]...)
	return out
}

func mergeImports(existing []javaast.Import, additions []types.Import) []types.Import {
	seen := map[string]bool{}
	var out []types.Import
	add := func(im types.Import) {
		key := im.Identifier() + "\x00" + im.Selector.String()
		if im.IsStatic {
			key = "static\x00" + key
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, im)
	}
	for _, e := range existing {
		im := types.NewImport(types.NewSelector(e.Selector...))
		if e.IsStatic {
			im = types.NewStaticImport(types.NewSelector(e.Selector...))
		}
		add(im)
	}
	for _, a := range additions {
		add(a)
	}
	return out
}

func formatBlock(imports []types.Import) string {
	var static, regular []types.Import
	for _, im := range imports {
		if im.IsStatic {
			static = append(static, im)
		} else {
			regular = append(regular, im)
		}
	}
	sort.Slice(static, func(i, j int) bool { return static[i].Selector.String() < static[j].Selector.String() })
	sort.Slice(regular, func(i, j int) bool { return regular[i].Selector.String() < regular[j].Selector.String() })

	var b strings.Builder
	for _, im := range static {
		b.WriteString("import static " + im.Selector.String() + ";\n")
	}
	if len(static) > 0 && len(regular) > 0 {
		b.WriteString("\n")
	}
	for _, im := range regular {
		b.WriteString("import " + im.Selector.String() + ";\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
