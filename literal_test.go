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

package toolman_test

import (
	"testing"

	"github.com/toolman-lang/toolman"
)

func i32Literal(v int64) *toolman.PrimitiveLiteral {
	return &toolman.PrimitiveLiteral{
		Kind: toolman.I32,
		Int:  v,
		Typ:  &toolman.PrimitiveType{Kind: toolman.I32},
	}
}

func strLiteral(v string) *toolman.PrimitiveLiteral {
	return &toolman.PrimitiveLiteral{
		Kind: toolman.String,
		Str:  v,
		Typ:  &toolman.PrimitiveType{Kind: toolman.String},
	}
}

func TestListLiteralPush(t *testing.T) {
	list := &toolman.ListLiteral{
		Typ: &toolman.ListType{Elem: &toolman.PrimitiveType{Kind: toolman.I32}},
	}
	if err := list.Push(i32Literal(1)); err != nil {
		t.Fatalf("Push(i32) failed: %v", err)
	}
	if err := list.Push(strLiteral("nope")); err == nil {
		t.Fatalf("expected type mismatch pushing a string into [i32]")
	}
	if len(list.Elems) != 1 {
		t.Errorf("mismatched element must not be appended, got %d elems", len(list.Elems))
	}
}

func TestMapLiteralInsertKeyMustMatchKind(t *testing.T) {
	m := &toolman.MapLiteral{
		Typ: &toolman.MapType{
			Key:   toolman.String,
			Value: &toolman.PrimitiveType{Kind: toolman.I32},
		},
	}
	if err := m.Insert(strLiteral("a"), i32Literal(1)); err != nil {
		t.Fatalf("Insert(string, i32) failed: %v", err)
	}
	if err := m.Insert(i32Literal(2), i32Literal(3)); err == nil {
		t.Fatalf("expected type mismatch inserting an i32 key into a string-keyed map")
	}
	if len(m.Entries) != 1 {
		t.Errorf("mismatched entry must not be appended, got %d entries", len(m.Entries))
	}
}

func TestMapLiteralInsertValueMismatch(t *testing.T) {
	m := &toolman.MapLiteral{
		Typ: &toolman.MapType{
			Key:   toolman.String,
			Value: &toolman.PrimitiveType{Kind: toolman.I32},
		},
	}
	if err := m.Insert(strLiteral("a"), strLiteral("wrong")); err == nil {
		t.Fatalf("expected type mismatch inserting a string value into an i32-valued map")
	}
}
