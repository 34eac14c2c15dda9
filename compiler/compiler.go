// Copyright (c) 2020 the Toolman project authors.
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package compiler resolves parsed .tm files into toolman.Document values:
// the declaration and reference walkers (§4.5-4.6), the module cache that
// gives repeated or diamond imports a single shared Module (§4.7), and the
// diagnostics both phases raise (§7).
package compiler

import (
	"os"
	"path/filepath"

	"github.com/toolman-lang/toolman"
	"github.com/toolman-lang/toolman/parser"
)

// Module is one compiled .tm file's declaration-phase result: the scope
// its own top-level names were registered into (already merged with the
// public names of everything it imports) plus any diagnostics raised
// getting there. The Compiler caches Modules by normalized path so a
// name imported through two different relative paths, or imported by
// two different files, is only ever walked once.
type Module struct {
	Path   string
	scope  *toolman.Scope
	tree   *parser.Document
	Errors []*Error
}

// PublicScope returns the subset of m's top-level declarations marked
// pub — the only names another file's import can see (§4.7).
func (m *Module) PublicScope() *toolman.Scope {
	public := toolman.NewScope()
	for _, name := range m.scope.Names() {
		t, _ := m.scope.Lookup(name)
		if isPublic(t) {
			public.Declare(name, t)
		}
	}
	return public
}

func isPublic(t toolman.Type) bool {
	switch t := t.(type) {
	case *toolman.StructType:
		return t.IsPublic
	case *toolman.EnumType:
		return t.IsPublic
	default:
		return false
	}
}

// CompileResult is the output of Compile: the resolved Document (always
// non-nil, even when Errors is non-empty — spec §7's "continue with
// best effort" policy) and the diagnostics of both phases for the
// compiled file, including DuplicateDecl collisions with imported names.
// Diagnostics raised while declaring an imported file stay on that
// file's own Module.Errors and are not copied into Errors.
type CompileResult struct {
	Document *toolman.Document
	Errors   []*Error
}

// Compiler resolves .tm files, caching each by its normalized absolute
// path so diamond imports and repeated Compile calls do the declaration
// walk at most once per file (§8 property 4: compile_module is
// idempotent).
//
// Grounded on the module-cache shape of original_source/src/compiler.h's
// Compiler::compile_module/compile, generalized from raw pointers to Go
// values and from exceptions to explicit fatal error returns.
type Compiler struct {
	modules    map[string]*Module
	inProgress map[string]bool
	chain      []string

	// sources overrides file contents that would otherwise be read from
	// disk, keyed by normalized path. Populated only via CompileSource,
	// for callers (tests, editor integrations) compiling text that has
	// not been saved.
	sources map[string][]byte
}

// NewCompiler returns a Compiler with an empty module cache.
func NewCompiler() *Compiler {
	return &Compiler{
		modules:    make(map[string]*Module),
		inProgress: make(map[string]bool),
	}
}

func normalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

func (c *Compiler) readSource(norm string) ([]byte, error) {
	if c.sources != nil {
		if src, ok := c.sources[norm]; ok {
			return src, nil
		}
	}
	return os.ReadFile(norm)
}

// CompileModule runs the declaration phase (§4.5) over path and every
// file it (transitively) imports, returning the cached Module. The
// returned error is fatal — FileNotFound or ImportCycle — and is never
// also present in the Module's Errors slice.
func (c *Compiler) CompileModule(path string) (*Module, error) {
	norm, err := normalizePath(path)
	if err != nil {
		return nil, errFileNotFound(path)
	}
	if m, ok := c.modules[norm]; ok {
		return m, nil
	}
	if c.inProgress[norm] {
		return nil, errImportCycle(append(append([]string{}, c.chain...), norm))
	}

	src, err := c.readSource(norm)
	if err != nil {
		return nil, errFileNotFound(norm)
	}
	return c.declareModule(norm, src)
}

// declareModule parses src as the file at norm and runs the declaration
// phase, recursively resolving imports through CompileModule. norm must
// not already be in the module cache or the in-progress set.
func (c *Compiler) declareModule(norm string, src []byte) (*Module, error) {
	c.inProgress[norm] = true
	c.chain = append(c.chain, norm)
	defer func() {
		delete(c.inProgress, norm)
		c.chain = c.chain[:len(c.chain)-1]
	}()

	tree, parseErrs := parser.Parse(src)

	var errs []*Error
	for _, e := range parseErrs {
		errs = append(errs, errParseError(e.Message, toolman.StmtInfo{
			Lines: e.Span.Lines, Columns: e.Span.Columns, SourcePath: norm,
		}))
	}

	scope := toolman.NewScope()
	for _, imp := range tree.Imports {
		importPath := filepath.Join(filepath.Dir(norm), imp.Path)
		dep, err := c.CompileModule(importPath)
		if err != nil {
			return nil, err
		}
		scope.Merge(dep.PublicScope(), func(name string, prior, incoming toolman.Type) {
			errs = append(errs, errDuplicateDecl(name, prior.StmtInfo(), incoming.StmtInfo()))
		})
	}

	errs = append(errs, walkDecls(tree, scope, norm)...)

	m := &Module{Path: norm, scope: scope, tree: tree, Errors: errs}
	c.modules[norm] = m
	return m, nil
}

// Compile runs the full declaration-then-reference pipeline (§4.5-§4.6)
// over path, producing a Document. It routes through the same module
// cache as CompileModule, so compiling a file that is also imported
// elsewhere in this Compiler's lifetime reuses the cached declaration
// pass rather than repeating it.
func (c *Compiler) Compile(path string) (CompileResult, error) {
	m, err := c.CompileModule(path)
	if err != nil {
		return CompileResult{}, err
	}
	return c.compileFromModule(m), nil
}

func (c *Compiler) compileFromModule(m *Module) CompileResult {
	ref := newRefWalker(m.scope, m.Path)
	m.tree.Walk(ref)

	errs := make([]*Error, 0, len(m.Errors)+len(ref.errs))
	errs = append(errs, m.Errors...)
	errs = append(errs, ref.errs...)

	return CompileResult{Document: ref.doc, Errors: errs}
}

// CompileSource compiles src directly without touching the filesystem,
// as if it were the file at virtualPath — used by tests and by any
// caller that already has file contents in memory (e.g. an editor
// integration) rather than on disk. Imports are still resolved from
// disk relative to virtualPath's directory.
func (c *Compiler) CompileSource(virtualPath string, src []byte) (CompileResult, error) {
	norm, err := normalizePath(virtualPath)
	if err != nil {
		return CompileResult{}, errFileNotFound(virtualPath)
	}
	if c.sources == nil {
		c.sources = make(map[string][]byte)
	}
	c.sources[norm] = src
	delete(c.modules, norm) // a re-compiled virtual source always re-runs both phases

	m, err := c.declareModule(norm, src)
	if err != nil {
		return CompileResult{}, err
	}
	return c.compileFromModule(m), nil
}
