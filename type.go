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

package toolman

import "fmt"

// PrimitiveKind enumerates the toolman scalar kinds.
type PrimitiveKind uint8

const (
	Bool PrimitiveKind = iota
	I32
	U32
	I64
	U64
	F32
	F64
	String
	Any
)

func (k PrimitiveKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case String:
		return "string"
	case Any:
		return "any"
	default:
		return "<unknown-primitive>"
	}
}

// Type is a tagged variant over the five type categories a .tm document
// can declare or reference: Primitive, List, Map, Struct, Enum.
//
// Two references to the same declared Struct/Enum name within one
// compilation share the same Type value (see Scope), so Equals reduces to
// identity for named types.
type Type interface {
	isType()

	// Equals reports structural equality: primitive kinds must match
	// exactly (no implicit widening), list/map element types must be
	// equal recursively, and struct/enum types compare by declaration
	// identity.
	Equals(other Type) bool

	// Display renders the type the way it appears in diagnostics:
	// "bool", "[i32]", "{string:i32}", or a struct/enum name.
	Display() string

	IsPrimitive() bool
	IsList() bool
	IsMap() bool
	IsStruct() bool
	IsEnum() bool

	// StmtInfo locates the construct that produced this Type value: the
	// declaration for named types, the `[`/`{` token for containers.
	StmtInfo() StmtInfo
}

// PrimitiveType is one of the built-in scalar kinds.
type PrimitiveType struct {
	Kind PrimitiveKind
	Info StmtInfo
}

func (*PrimitiveType) isType() {}

func (t *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Kind == t.Kind
}

func (t *PrimitiveType) Display() string       { return t.Kind.String() }
func (t *PrimitiveType) IsPrimitive() bool      { return true }
func (t *PrimitiveType) IsList() bool           { return false }
func (t *PrimitiveType) IsMap() bool            { return false }
func (t *PrimitiveType) IsStruct() bool         { return false }
func (t *PrimitiveType) IsEnum() bool           { return false }
func (t *PrimitiveType) StmtInfo() StmtInfo     { return t.Info }

// ListType is a homogeneous sequence of some element type.
type ListType struct {
	Elem Type
	Info StmtInfo
}

func (*ListType) isType() {}

func (t *ListType) Equals(other Type) bool {
	o, ok := other.(*ListType)
	if !ok || t.Elem == nil || o.Elem == nil {
		return false
	}
	return t.Elem.Equals(o.Elem)
}

func (t *ListType) Display() string {
	if t.Elem == nil {
		return "[?]"
	}
	return "[" + t.Elem.Display() + "]"
}

func (t *ListType) IsPrimitive() bool  { return false }
func (t *ListType) IsList() bool       { return true }
func (t *ListType) IsMap() bool        { return false }
func (t *ListType) IsStruct() bool     { return false }
func (t *ListType) IsEnum() bool       { return false }
func (t *ListType) StmtInfo() StmtInfo { return t.Info }

// MapType associates a primitive key kind with an arbitrary value type.
// The key is constrained to a primitive kind by Key's own Go type
// (PrimitiveKind); the compiler reports a non-primitive key in source as
// a MapKeyTypeMustBePrimitive diagnostic.
type MapType struct {
	Key   PrimitiveKind
	Value Type
	Info  StmtInfo
}

func (*MapType) isType() {}

func (t *MapType) Equals(other Type) bool {
	o, ok := other.(*MapType)
	if !ok || t.Value == nil || o.Value == nil {
		return false
	}
	return t.Key == o.Key && t.Value.Equals(o.Value)
}

func (t *MapType) Display() string {
	if t.Value == nil {
		return fmt.Sprintf("{%s:?}", t.Key)
	}
	return fmt.Sprintf("{%s:%s}", t.Key, t.Value.Display())
}

func (t *MapType) IsPrimitive() bool  { return false }
func (t *MapType) IsList() bool       { return false }
func (t *MapType) IsMap() bool        { return true }
func (t *MapType) IsStruct() bool     { return false }
func (t *MapType) IsEnum() bool       { return false }
func (t *MapType) StmtInfo() StmtInfo { return t.Info }

// StructType is a named, ordered sequence of fields. StructType values are
// handles: the Scope hands out the same *StructType pointer for every
// reference to one declared name within a compilation, so pointer
// equality implements identity comparison.
type StructType struct {
	Name     string
	Fields   []*Field
	IsPublic bool
	Info     StmtInfo // position of the struct's identifier
}

func (*StructType) isType() {}

func (t *StructType) Equals(other Type) bool {
	o, ok := other.(*StructType)
	return ok && o == t
}

func (t *StructType) Display() string   { return t.Name }
func (t *StructType) IsPrimitive() bool { return false }
func (t *StructType) IsList() bool      { return false }
func (t *StructType) IsMap() bool       { return false }
func (t *StructType) IsStruct() bool    { return true }
func (t *StructType) IsEnum() bool      { return false }
func (t *StructType) StmtInfo() StmtInfo { return t.Info }

// AppendField pushes a completed field onto the struct. The compiler's
// struct builder calls it (structTypeBuilder.endField) as each field of
// a declaration closes.
func (t *StructType) AppendField(f *Field) {
	t.Fields = append(t.Fields, f)
}

// FieldByName returns the field with the given name, if any.
func (t *StructType) FieldByName(name string) (*Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// EnumVariant is one `name = value` member of an EnumType.
type EnumVariant struct {
	Name  string
	Value int64
	Info  StmtInfo
}

// EnumType is a named, ordered sequence of integer-valued variants.
type EnumType struct {
	Name     string
	Variants []EnumVariant
	IsPublic bool
	Info     StmtInfo // position of the enum's identifier
}

func (*EnumType) isType() {}

func (t *EnumType) Equals(other Type) bool {
	o, ok := other.(*EnumType)
	return ok && o == t
}

func (t *EnumType) Display() string    { return t.Name }
func (t *EnumType) IsPrimitive() bool  { return false }
func (t *EnumType) IsList() bool       { return false }
func (t *EnumType) IsMap() bool        { return false }
func (t *EnumType) IsStruct() bool     { return false }
func (t *EnumType) IsEnum() bool       { return true }
func (t *EnumType) StmtInfo() StmtInfo { return t.Info }

// VariantByName returns the variant with the given name, if any.
func (t *EnumType) VariantByName(name string) (EnumVariant, bool) {
	for _, v := range t.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return EnumVariant{}, false
}

// VariantByValue returns the variant with the given numeric value, if any.
func (t *EnumType) VariantByValue(value int64) (EnumVariant, bool) {
	for _, v := range t.Variants {
		if v.Value == value {
			return v, true
		}
	}
	return EnumVariant{}, false
}
