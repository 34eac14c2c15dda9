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

package compiler_test

import (
	"testing"

	"github.com/toolman-lang/toolman/compiler"
)

func compileString(t *testing.T, path, src string) (compiler.CompileResult, error) {
	t.Helper()
	c := compiler.NewCompiler()
	return c.CompileSource(path, []byte(src))
}

func TestCompileBasicStruct(t *testing.T) {
	res, err := compileString(t, "/virtual/basic.tm", `pub struct Point { x: i32; y: i32; }`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	s, ok := res.Document.StructByName("Point")
	if !ok {
		t.Fatalf("expected struct Point in document")
	}
	if len(s.Fields) != 2 || s.Fields[0].Name != "x" || s.Fields[1].Name != "y" {
		t.Fatalf("unexpected fields: %+v", s.Fields)
	}
	if !s.Fields[0].Type.IsPrimitive() {
		t.Fatalf("expected primitive field type")
	}
}

func TestCompileNestedContainerType(t *testing.T) {
	res, err := compileString(t, "/virtual/nested.tm", `struct S { m: {string: [i32]}; }`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	s, _ := res.Document.StructByName("S")
	f := s.Fields[0]
	if !f.Type.IsMap() {
		t.Fatalf("expected map field type, got %s", f.Type.Display())
	}
	if f.Type.Display() != "{string:[i32]}" {
		t.Fatalf("unexpected type display: %s", f.Type.Display())
	}
}

func TestCompileForwardReference(t *testing.T) {
	res, err := compileString(t, "/virtual/forward.tm", `
		struct A { b: B; }
		struct B { n: i32; }
	`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	a, _ := res.Document.StructByName("A")
	b, _ := res.Document.StructByName("B")
	if !a.Fields[0].Type.IsStruct() {
		t.Fatalf("expected struct-typed field")
	}
	if !a.Fields[0].Type.Equals(b) {
		t.Fatalf("expected A.b to resolve to the same handle as B")
	}
}

func TestCompileMapKeyMustBePrimitive(t *testing.T) {
	res, err := compileString(t, "/virtual/badkey.tm", `
		struct K { n: i32; }
		struct S { m: {K: string}; }
	`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindMapKeyTypeMustBePrimitive {
		t.Fatalf("expected exactly one MapKeyTypeMustBePrimitive error, got %v", res.Errors)
	}
}

func TestCompileMapKeyMustBePrimitiveContainerKey(t *testing.T) {
	res, err := compileString(t, "/virtual/badkey_container.tm", `
		struct S { m: {[i32]: i32}; }
	`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindMapKeyTypeMustBePrimitive {
		t.Fatalf("expected exactly one MapKeyTypeMustBePrimitive error, got %v", res.Errors)
	}
}

func TestCompileLiteralTypeMismatch(t *testing.T) {
	res, err := compileString(t, "/virtual/mismatch.tm", `struct S { n: i32 = "hello"; }`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindLiteralElementTypeMismatch {
		t.Fatalf("expected exactly one LiteralElementTypeMismatch error, got %v", res.Errors)
	}
}

func TestCompileDuplicateFieldName(t *testing.T) {
	res, err := compileString(t, "/virtual/dupfield.tm", `struct S { n: i32; n: string; }`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindDuplicateFieldName {
		t.Fatalf("expected exactly one DuplicateFieldName error, got %v", res.Errors)
	}
}

func TestCompileDuplicateDeclAcrossImports(t *testing.T) {
	c := compiler.NewCompiler()
	if _, err := c.CompileSource("/virtual/a.tm", []byte(`pub struct T {}`)); err != nil {
		t.Fatalf("unexpected fatal error compiling a.tm: %v", err)
	}
	res, err := c.CompileSource("/virtual/b.tm", []byte(`
		import "a.tm";
		pub struct T {}
	`))
	if err != nil {
		t.Fatalf("unexpected fatal error compiling b.tm: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindDuplicateDecl {
		t.Fatalf("expected exactly one DuplicateDecl error, got %v", res.Errors)
	}
}

func TestCompileCustomTypeNotFoundSuggestsClosestName(t *testing.T) {
	res, err := compileString(t, "/virtual/typo.tm", `
		struct Poinnt { n: i32; }
		struct S { p: Point; }
	`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Kind != compiler.KindCustomTypeNotFound {
		t.Fatalf("expected exactly one CustomTypeNotFound error, got %v", res.Errors)
	}
	if got := res.Errors[0].Error(); !contains(got, "Poinnt") {
		t.Fatalf("expected suggestion for the misspelled type in error text, got %q", got)
	}
}

func TestCompileDuplicateEnumVariantAndValue(t *testing.T) {
	res, err := compileString(t, "/virtual/enum.tm", `
		enum Color { RED = 0, RED = 1, GREEN = 0 }
	`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected a DuplicateEnumVariant and a DuplicateEnumValue error, got %v", res.Errors)
	}
}

func TestCompileImportCycleIsFatal(t *testing.T) {
	c := compiler.NewCompiler()

	// CompileSource records b's text even though compiling it right now
	// fails (cycle_a.tm doesn't exist on disk yet) — a later CompileModule
	// lookup for cycle_b.tm's path still finds that recorded source. That
	// lets the second call below actually walk into the cycle: compiling
	// cycle_a.tm imports cycle_b.tm, which imports cycle_a.tm, which is
	// still on the in-progress stack.
	c.CompileSource("/virtual/cycle_b.tm", []byte(`import "cycle_a.tm";`))

	_, err := c.CompileSource("/virtual/cycle_a.tm", []byte(`import "cycle_b.tm";`))
	if err == nil {
		t.Fatalf("expected ImportCycle fatal error")
	}
	ce, ok := err.(*compiler.Error)
	if !ok || ce.Kind != compiler.KindImportCycle {
		t.Fatalf("expected ImportCycle, got %v", err)
	}
}

func TestCompileModuleFileNotFound(t *testing.T) {
	c := compiler.NewCompiler()
	m, err := c.CompileModule("/virtual/nonexistent-should-fail.tm")
	if err == nil {
		t.Fatalf("expected FileNotFound, got module %v", m)
	}
	ce, ok := err.(*compiler.Error)
	if !ok || ce.Kind != compiler.KindFileNotFound {
		t.Fatalf("expected FileNotFound, got %v", err)
	}
}

func TestModuleIdempotent(t *testing.T) {
	c := compiler.NewCompiler()
	c.CompileSource("/virtual/shared.tm", []byte(`pub struct Shared { n: i32; }`))

	m1, err := c.CompileModule("/virtual/shared.tm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := c.CompileModule("/virtual/shared.tm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m1 != m2 {
		t.Fatalf("expected the same cached *Module instance on repeated CompileModule calls")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
