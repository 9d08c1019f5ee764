// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command javaimports determines which import statements a single Java
// source file should contain and writes the rewritten source to
// stdout (§6). Argument parsing, file I/O and source rewriting are
// kept out of the core packages (§1); this file is the thin glue that
// wires them to the scope analyzer, candidate registry, selection
// strategy and fixer driver.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/Songmu/javaimports/candidates"
	"github.com/Songmu/javaimports/classpath"
	"github.com/Songmu/javaimports/fixer"
	"github.com/Songmu/javaimports/internal/debugdump"
	"github.com/Songmu/javaimports/internal/importwrite"
	"github.com/Songmu/javaimports/internal/jarindex"
	"github.com/Songmu/javaimports/internal/javalog"
	"github.com/Songmu/javaimports/internal/javaparser"
	"github.com/Songmu/javaimports/internal/localrepo"
	"github.com/Songmu/javaimports/internal/siblingscan"
	"github.com/Songmu/javaimports/javaast"
	"github.com/Songmu/javaimports/maven"
	"github.com/Songmu/javaimports/scope"
	"github.com/Songmu/javaimports/selection"
	"github.com/Songmu/javaimports/stdlib"
	"github.com/Songmu/javaimports/types"
)

const version = "0.1.0"

func main() {
	c := &Config{
		Args:   os.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(c.Run())
}

// A Config specifies a full configuration for a javaimports execution,
// with IO and arguments injected rather than read from globals, so
// tests can drive a run without touching the real stdout.
type Config struct {
	Args           []string
	Stdout, Stderr io.Writer
}

// Run executes a configuration and returns a process exit code.
func (c *Config) Run() int {
	log := javalog.New(c.Stderr)

	flags := pflag.NewFlagSet("javaimports", pflag.ContinueOnError)
	flags.SetOutput(c.Stderr)
	help := flags.BoolP("help", "h", false, "show this help message")
	showVersion := flags.Bool("version", false, "print the version and exit")
	write := flags.BoolP("write", "w", false, "write result to the source file instead of stdout")
	debug := flags.Bool("debug", false, "dump resolved POM, candidates and winners as TOML to stderr")

	flags.Usage = func() {
		fmt.Fprintln(c.Stderr, "Usage: javaimports [--help] [--version] [--write] [--debug] <file>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(c.Args[1:]); err != nil {
		return 1
	}
	if !*debug {
		// Without --debug, POM load errors and other degraded-source
		// conditions are not reported; only parse failures reach stderr.
		log = javalog.New(io.Discard)
	}

	if *help {
		flags.Usage()
		return 0
	}
	if *showVersion {
		fmt.Fprintln(c.Stdout, version)
		return 0
	}

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		return 0
	}
	file := args[0]

	out, err := c.fix(file, *debug, log)
	if err != nil {
		fmt.Fprintln(c.Stderr, err)
		return 1
	}

	if *write {
		if err := os.WriteFile(file, out, 0o644); err != nil {
			fmt.Fprintln(c.Stderr, err)
			return 1
		}
		return 0
	}
	c.Stdout.Write(out)
	return 0
}

// fix runs one load/fix/rewrite cycle over file.
func (c *Config) fix(file string, debug bool, log *javalog.Logger) ([]byte, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	parser := javaparser.New()
	cu, diags, err := parser.Parse(file, src)
	if err != nil {
		return nil, err
	}
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintln(c.Stderr, d.String())
		}
		return nil, fmt.Errorf("%s: %d parse error(s)", file, len(diags))
	}

	result := scope.NewAnalyzer().Analyze(cu)

	sources, pomResult := c.buildSources(file, cu, parser, log)

	var filePackage types.Selector
	if len(cu.Package) > 0 {
		filePackage = types.NewSelector(cu.Package...)
	}
	strategy := selection.Strategy{FilePackage: filePackage}
	driver := fixer.New(strategy, sources...)

	outcome := driver.TryToFix(result)
	if outcome.Status == fixer.Incomplete && len(result.Orphans) > 0 {
		outcome = driver.LastTryToFix(result)
	}

	if debug {
		c.dumpDebug(sources, result, pomResult, strategy, log)
	}

	return importwrite.Rewrite(src, cu.Imports, outcome.Imports), nil
}

// buildSources assembles the candidate sources available for file: the
// standard-library index (always available), the sibling source (best
// effort — a missing directory listing just yields no siblings), and
// the external Maven environment (best effort — a module that can't be
// found or whose POM chain fails to load yields no external candidates,
// per §7's "favor producing output" policy).
func (c *Config) buildSources(file string, cu *javaast.CompilationUnit, parser javaast.Parser, log *javalog.Logger) ([]candidates.Source, *maven.Result) {
	sources := []candidates.Source{stdlib.New()}

	dir := filepath.Dir(file)
	if siblings, err := siblingscan.Scan(dir, file, parser); err == nil {
		sources = append(sources, candidates.NewSiblingSource(siblings))
	} else {
		log.LogImportsfln("sibling scan: %v", err)
	}

	moduleRoot, err := maven.FindModuleRoot(file)
	if err != nil {
		log.LogImportsfln("no enclosing Maven module: %v", err)
		return sources, nil
	}

	pomResult, err := maven.LoadDependencies(moduleRoot)
	if err != nil {
		log.LogImportsfln("loading POM: %v", err)
		return sources, nil
	}
	for _, loadErr := range pomResult.Errors {
		log.LogImportsfln("%v", loadErr)
	}

	repo, err := localrepo.Default()
	if err != nil {
		log.LogImportsfln("locating local repository: %v", err)
		return sources, pomResult
	}
	cacheDir := filepath.Join(moduleRoot, "target", "javaimports-cache")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.LogImportsfln("creating classpath cache: %v", err)
		return sources, pomResult
	}

	env := classpath.New(pomResult.Pom.Dependencies, repo, jarindex.New(), cacheDir)
	sources = append(sources, env)
	return sources, pomResult
}

func (c *Config) dumpDebug(sources []candidates.Source, result scope.Result, pomResult *maven.Result, strategy selection.Strategy, log *javalog.Logger) {
	ids := make([]string, 0, len(result.Unresolved))
	ids = append(ids, result.Unresolved...)
	for _, orphan := range result.Orphans {
		for name := range orphan.Pending {
			ids = append(ids, name)
		}
	}

	cm := candidates.Find(ids, sources...)
	winners := strategy.Select(cm)

	snap := debugdump.Build(pomResult, cm, winners)
	out, err := debugdump.Marshal(snap)
	if err != nil {
		log.LogImportsfln("debug dump: %v", err)
		return
	}
	log.Logln("--- javaimports debug ---")
	c.Stderr.Write(out)
}
