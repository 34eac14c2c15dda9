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

package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/toolman-lang/toolman"
)

// GoEmitter emits one Go source file per Document: a struct with
// exported, `json`-tagged fields per StructType, and an int32-backed
// named constant block per EnumType.
//
// Grounded on original_source/src/golang_generator.h's
// GolangGenerator::generate_struct/type_to_go_type.
type GoEmitter struct {
	noopHooks

	// Package is the `package` clause written by BeforeDocument.
	Package string
}

func NewGoEmitter(pkg string) *GoEmitter {
	return &GoEmitter{Package: pkg}
}

func (e *GoEmitter) BeforeDocument(w io.Writer, _ *toolman.Document) error {
	_, err := fmt.Fprintf(w, "package %s\n\n", e.Package)
	return err
}

func (e *GoEmitter) Struct(w io.Writer, s *toolman.StructType) error {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", Capitalize(s.Name))
	for _, f := range s.Fields {
		for _, doc := range f.DocComments {
			fmt.Fprintf(&b, "\t// %s\n", doc)
		}
		goType := goFieldType(f.Type)
		if f.Optional {
			goType = "*" + goType
		}
		fmt.Fprintf(&b, "\t%s %s `json:\"%s\"`\n", Capitalize(ToCamelCase(f.Name)), goType, f.Name)
	}
	b.WriteString("}\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (e *GoEmitter) Enum(w io.Writer, en *toolman.EnumType) error {
	name := Capitalize(en.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "type %s int32\n\nconst (\n", name)
	for _, v := range en.Variants {
		variant := v.Name
		if variant == strings.ToUpper(variant) {
			variant = strings.ToLower(variant)
		}
		fmt.Fprintf(&b, "\t%s%s %s = %d\n", name, Capitalize(ToCamelCase(variant)), name, v.Value)
	}
	b.WriteString(")\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func goFieldType(t toolman.Type) string {
	switch t := t.(type) {
	case *toolman.PrimitiveType:
		return goPrimitiveType(t.Kind)
	case *toolman.ListType:
		return "[]" + goFieldType(t.Elem)
	case *toolman.MapType:
		return fmt.Sprintf("map[%s]%s", goPrimitiveType(t.Key), goFieldType(t.Value))
	case *toolman.StructType:
		return Capitalize(t.Name)
	case *toolman.EnumType:
		return Capitalize(t.Name)
	default:
		return "interface{}"
	}
}

func goPrimitiveType(k toolman.PrimitiveKind) string {
	switch k {
	case toolman.Bool:
		return "bool"
	case toolman.I32:
		return "int32"
	case toolman.U32:
		return "uint32"
	case toolman.I64:
		return "int64"
	case toolman.U64:
		return "uint64"
	case toolman.F32:
		return "float32"
	case toolman.F64:
		return "float64"
	case toolman.String:
		return "string"
	default: // toolman.Any
		return "interface{}"
	}
}
