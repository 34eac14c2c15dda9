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

func TestPrimitiveTypeEquals(t *testing.T) {
	a := &toolman.PrimitiveType{Kind: toolman.I32}
	b := &toolman.PrimitiveType{Kind: toolman.I32}
	c := &toolman.PrimitiveType{Kind: toolman.U32}

	if !a.Equals(b) {
		t.Errorf("expected i32 == i32")
	}
	if a.Equals(c) {
		t.Errorf("expected i32 != u32 (no implicit widening)")
	}
}

func TestListTypeEquals(t *testing.T) {
	a := &toolman.ListType{Elem: &toolman.PrimitiveType{Kind: toolman.String}}
	b := &toolman.ListType{Elem: &toolman.PrimitiveType{Kind: toolman.String}}
	c := &toolman.ListType{Elem: &toolman.PrimitiveType{Kind: toolman.I32}}

	if !a.Equals(b) {
		t.Errorf("expected [string] == [string]")
	}
	if a.Equals(c) {
		t.Errorf("expected [string] != [i32]")
	}
}

func TestMapTypeDisplay(t *testing.T) {
	m := &toolman.MapType{
		Key:   toolman.String,
		Value: &toolman.ListType{Elem: &toolman.PrimitiveType{Kind: toolman.I32}},
	}
	if got, want := m.Display(), "{string:[i32]}"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestStructTypeIdentityEquals(t *testing.T) {
	a := &toolman.StructType{Name: "Point"}
	b := &toolman.StructType{Name: "Point"}

	if !a.Equals(a) {
		t.Errorf("expected identity equality to hold for the same handle")
	}
	if a.Equals(b) {
		t.Errorf("two distinct struct handles with the same name must not be equal")
	}
}

func TestEnumVariantLookup(t *testing.T) {
	e := &toolman.EnumType{
		Name: "Color",
		Variants: []toolman.EnumVariant{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 1},
		},
	}
	v, ok := e.VariantByName("GREEN")
	if !ok || v.Value != 1 {
		t.Fatalf("VariantByName(GREEN) = %+v, %v", v, ok)
	}
	if _, ok := e.VariantByValue(2); ok {
		t.Errorf("expected no variant with value 2")
	}
}
