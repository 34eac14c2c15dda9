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

package parser_test

import (
	"testing"

	"github.com/toolman-lang/toolman/parser"
)

func TestParseBasicStruct(t *testing.T) {
	doc, errs := parser.Parse([]byte(`pub struct Point { x: i32; y: i32; }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(doc.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(doc.Decls))
	}
	s, ok := doc.Decls[0].(*parser.StructDecl)
	if !ok {
		t.Fatalf("expected *StructDecl, got %T", doc.Decls[0])
	}
	if !s.Public || s.Name.Name != "Point" || len(s.Fields) != 2 {
		t.Fatalf("unexpected struct: %+v", s)
	}
}

func TestParseNestedContainerType(t *testing.T) {
	doc, errs := parser.Parse([]byte(`struct S { m: {string: [i32]}; }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	s := doc.Decls[0].(*parser.StructDecl)
	field := s.Fields[0]
	if field.Type.Map == nil {
		t.Fatalf("expected a map field type, got %+v", field.Type)
	}
	if field.Type.Map.Key.Type.Primitive == nil {
		t.Fatalf("expected a primitive map key")
	}
	if field.Type.Map.Value.Type.List == nil {
		t.Fatalf("expected a list map value")
	}
}

func TestParseFieldWithLiteralDefault(t *testing.T) {
	doc, errs := parser.Parse([]byte(`struct S { n: i32 = 5; }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	field := doc.Decls[0].(*parser.StructDecl).Fields[0]
	if field.Init == nil || field.Init.Primitive == nil || field.Init.Primitive.Int != 5 {
		t.Fatalf("unexpected init: %+v", field.Init)
	}
}

func TestParseEnum(t *testing.T) {
	doc, errs := parser.Parse([]byte(`pub enum Color { RED = 0, GREEN = 1 }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	e := doc.Decls[0].(*parser.EnumDecl)
	if len(e.Fields) != 2 || e.Fields[0].Name.Name != "RED" || e.Fields[1].Value != 1 {
		t.Fatalf("unexpected enum: %+v", e)
	}
}

func TestParseDocComments(t *testing.T) {
	doc, errs := parser.Parse([]byte("struct S {\n/// the identifier\nid: i32;\n}"))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	field := doc.Decls[0].(*parser.StructDecl).Fields[0]
	if len(field.DocComments) != 1 || field.DocComments[0] != "the identifier" {
		t.Fatalf("unexpected doc comments: %#v", field.DocComments)
	}
}

func TestParseImport(t *testing.T) {
	doc, errs := parser.Parse([]byte(`import "a.tm"; pub struct T {}`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(doc.Imports) != 1 || doc.Imports[0].Path != "a.tm" {
		t.Fatalf("unexpected imports: %+v", doc.Imports)
	}
}

func TestParseOptionalField(t *testing.T) {
	doc, errs := parser.Parse([]byte(`struct S { name?: string; }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	field := doc.Decls[0].(*parser.StructDecl).Fields[0]
	if !field.Optional {
		t.Fatalf("expected field to be optional")
	}
}

func TestParseListLiteral(t *testing.T) {
	doc, errs := parser.Parse([]byte(`struct S { xs: [i32] = [1, 2, 3]; }`))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	field := doc.Decls[0].(*parser.StructDecl).Fields[0]
	if field.Init == nil || field.Init.List == nil || len(field.Init.List.Elems) != 3 {
		t.Fatalf("unexpected list literal: %+v", field.Init)
	}
}

func TestParseUnexpectedTokenRecovers(t *testing.T) {
	// A malformed field type still yields a tree with a syntax error
	// recorded, per the "continue with best effort" recovery policy.
	_, errs := parser.Parse([]byte(`struct S { n: ; }`))
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for the missing type")
	}
}
