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

// JavaEmitter emits one public class per StructType, with private
// camelCase fields plus getters/setters, and one public enum per
// EnumType with an integer-valued constructor.
type JavaEmitter struct {
	noopHooks
}

func NewJavaEmitter() *JavaEmitter {
	return &JavaEmitter{}
}

func (e *JavaEmitter) Struct(w io.Writer, s *toolman.StructType) error {
	name := Capitalize(s.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "public class %s {\n", name)
	for _, f := range s.Fields {
		fieldName := ToCamelCase(f.Name)
		javaType := javaFieldType(f.Type, f.Optional)
		fmt.Fprintf(&b, "  private %s %s;\n", javaType, fieldName)
	}
	b.WriteString("\n")
	for _, f := range s.Fields {
		fieldName := ToCamelCase(f.Name)
		javaType := javaFieldType(f.Type, f.Optional)
		getter := "get" + Capitalize(fieldName)
		if javaType == "boolean" {
			getter = "is" + Capitalize(fieldName)
		}
		fmt.Fprintf(&b, "  public %s %s() {\n    return %s;\n  }\n\n", javaType, getter, fieldName)
		fmt.Fprintf(&b, "  public void set%s(%s %s) {\n    this.%s = %s;\n  }\n\n",
			Capitalize(fieldName), javaType, fieldName, fieldName, fieldName)
	}
	b.WriteString("}\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (e *JavaEmitter) Enum(w io.Writer, en *toolman.EnumType) error {
	name := Capitalize(en.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "public enum %s {\n", name)
	for i, v := range en.Variants {
		sep := ","
		if i == len(en.Variants)-1 {
			sep = ";"
		}
		constant := v.Name
		if constant != strings.ToUpper(constant) {
			constant = strings.ToUpper(ToSnakeCase(constant))
		}
		fmt.Fprintf(&b, "  %s(%d)%s\n", constant, v.Value, sep)
	}
	b.WriteString("\n  private final int value;\n\n")
	fmt.Fprintf(&b, "  %s(int value) {\n    this.value = value;\n  }\n\n", name)
	b.WriteString("  public int getValue() {\n    return value;\n  }\n")
	b.WriteString("}\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func javaFieldType(t toolman.Type, boxed bool) string {
	switch t := t.(type) {
	case *toolman.PrimitiveType:
		if boxed {
			return javaBoxedType(t.Kind)
		}
		return javaPrimitiveType(t.Kind)
	case *toolman.ListType:
		return "List<" + javaFieldType(t.Elem, true) + ">"
	case *toolman.MapType:
		return fmt.Sprintf("Map<%s, %s>", javaBoxedType(t.Key), javaFieldType(t.Value, true))
	case *toolman.StructType:
		return Capitalize(t.Name)
	case *toolman.EnumType:
		return Capitalize(t.Name)
	default:
		return "Object"
	}
}

func javaPrimitiveType(k toolman.PrimitiveKind) string {
	switch k {
	case toolman.Bool:
		return "boolean"
	case toolman.I32, toolman.U32:
		return "int"
	case toolman.I64, toolman.U64:
		return "long"
	case toolman.F32:
		return "float"
	case toolman.F64:
		return "double"
	case toolman.String:
		return "String"
	default: // toolman.Any
		return "Object"
	}
}

func javaBoxedType(k toolman.PrimitiveKind) string {
	switch k {
	case toolman.Bool:
		return "Boolean"
	case toolman.I32, toolman.U32:
		return "Integer"
	case toolman.I64, toolman.U64:
		return "Long"
	case toolman.F32:
		return "Float"
	case toolman.F64:
		return "Double"
	case toolman.String:
		return "String"
	default: // toolman.Any
		return "Object"
	}
}
