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

// TypeScriptEmitter emits one `interface` declaration per struct and
// one TypeScript `enum` declaration per enum, with camelCase field
// names (the field-naming convention spec.md §1 calls out for
// non-Go targets).
type TypeScriptEmitter struct {
	noopHooks
}

func NewTypeScriptEmitter() *TypeScriptEmitter {
	return &TypeScriptEmitter{}
}

func (e *TypeScriptEmitter) Struct(w io.Writer, s *toolman.StructType) error {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", Capitalize(s.Name))
	for _, f := range s.Fields {
		for _, doc := range f.DocComments {
			fmt.Fprintf(&b, "  // %s\n", doc)
		}
		opt := ""
		if f.Optional {
			opt = "?"
		}
		fmt.Fprintf(&b, "  %s%s: %s;\n", ToCamelCase(f.Name), opt, tsFieldType(f.Type))
	}
	b.WriteString("}\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (e *TypeScriptEmitter) Enum(w io.Writer, en *toolman.EnumType) error {
	var b strings.Builder
	fmt.Fprintf(&b, "export enum %s {\n", Capitalize(en.Name))
	for _, v := range en.Variants {
		fmt.Fprintf(&b, "  %s = %d,\n", Capitalize(v.Name), v.Value)
	}
	b.WriteString("}\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func tsFieldType(t toolman.Type) string {
	switch t := t.(type) {
	case *toolman.PrimitiveType:
		return tsPrimitiveType(t.Kind)
	case *toolman.ListType:
		return tsFieldType(t.Elem) + "[]"
	case *toolman.MapType:
		return fmt.Sprintf("{ [key: %s]: %s }", tsPrimitiveType(t.Key), tsFieldType(t.Value))
	case *toolman.StructType:
		return Capitalize(t.Name)
	case *toolman.EnumType:
		return Capitalize(t.Name)
	default:
		return "unknown"
	}
}

func tsPrimitiveType(k toolman.PrimitiveKind) string {
	switch k {
	case toolman.Bool:
		return "boolean"
	case toolman.I32, toolman.U32, toolman.I64, toolman.U64, toolman.F32, toolman.F64:
		return "number"
	case toolman.String:
		return "string"
	default: // toolman.Any
		return "unknown"
	}
}
