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

// Package parser is toolman's grammar front-end: a lexer and
// recursive-descent parser for .tm source, producing a concrete tree of
// Nodes that the compiler package walks via the push-based Visitor
// contract (Enter/Exit), the same contract an ANTLR-generated listener
// would offer over the original grammar.
package parser

import (
	"iter"

	"github.com/toolman-lang/toolman"
)

// Span locates a node in source: its line/column extent. Combined with a
// source path (attached by whichever compiler.Module owns the parse), a
// Span is the concrete form of toolman.StmtInfo.
type Span struct {
	Lines   toolman.LineRange
	Columns toolman.ColumnRange
}

func lineRange(line uint32) toolman.LineRange { return toolman.LineRange{Start: line, End: line} }
func colRange(start, end uint32) toolman.ColumnRange {
	return toolman.ColumnRange{Start: start, End: end}
}

func spanOf(start, end Token) Span {
	return Span{
		Lines:   toolman.LineRange{Start: start.Line, End: end.Line},
		Columns: toolman.ColumnRange{Start: start.Column, End: end.Column},
	}
}

// NodeKind identifies which grammar production a Node instantiates.
type NodeKind uint8

const (
	KindDocument NodeKind = iota
	KindImport
	KindIdent
	KindStructDecl
	KindStructField
	KindEnumDecl
	KindEnumField
	KindFieldType
	KindListType
	KindListElementType
	KindMapType
	KindMapKeyType
	KindMapValueType
	KindPrimitiveType
	KindCustomTypeName
	KindStructFieldInit
	KindListLiteral
	KindListLiteralElem
	KindMapLiteral
	KindMapEntry
	KindMapKeyLiteral
	KindMapValueLiteral
	KindPrimitiveLiteral
)

// Node is one tree element. Walk drives a Visitor over this node and its
// children in document order, calling Enter before descending and Exit
// after — the enter/exit event pairs §4.6 of the spec maps to builder
// actions.
type Node interface {
	Kind() NodeKind
	Span() Span
	Walk(v Visitor)
}

// Visitor receives Enter/Exit callbacks as a tree is walked. The
// compiler's reference walker implements Visitor; its declaration phase
// reads Document.Decls directly instead.
type Visitor interface {
	Enter(n Node)
	Exit(n Node)
}

// Document is the root node: zero or more imports followed by struct and
// enum declarations, in source order.
type Document struct {
	SpanVal Span
	Imports []*Import
	Decls   []Node // *StructDecl or *EnumDecl, in source order
}

func (n *Document) Kind() NodeKind { return KindDocument }
func (n *Document) Span() Span     { return n.SpanVal }
func (n *Document) Walk(v Visitor) {
	v.Enter(n)
	for _, imp := range n.Imports {
		imp.Walk(v)
	}
	for _, decl := range n.Decls {
		decl.Walk(v)
	}
	v.Exit(n)
}

// StructDecls returns the document's struct declarations, in source order.
func (n *Document) StructDecls() iter.Seq[*StructDecl] {
	return func(yield func(*StructDecl) bool) {
		for _, decl := range n.Decls {
			if s, ok := decl.(*StructDecl); ok {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// EnumDecls returns the document's enum declarations, in source order.
func (n *Document) EnumDecls() iter.Seq[*EnumDecl] {
	return func(yield func(*EnumDecl) bool) {
		for _, decl := range n.Decls {
			if e, ok := decl.(*EnumDecl); ok {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Import is `import "path.tm";`.
type Import struct {
	SpanVal Span
	Path    string
}

func (n *Import) Kind() NodeKind { return KindImport }
func (n *Import) Span() Span     { return n.SpanVal }
func (n *Import) Walk(v Visitor) { v.Enter(n); v.Exit(n) }

// Ident is an identifierName token.
type Ident struct {
	SpanVal Span
	Name    string
}

func (n *Ident) Kind() NodeKind { return KindIdent }
func (n *Ident) Span() Span     { return n.SpanVal }
func (n *Ident) Walk(v Visitor) { v.Enter(n); v.Exit(n) }

// StructDecl is `pub? struct identifierName { structField* }`.
type StructDecl struct {
	SpanVal Span
	Public  bool
	Name    *Ident
	Fields  []*StructField
}

func (n *StructDecl) Kind() NodeKind { return KindStructDecl }
func (n *StructDecl) Span() Span     { return n.SpanVal }
func (n *StructDecl) Walk(v Visitor) {
	v.Enter(n)
	n.Name.Walk(v)
	for _, f := range n.Fields {
		f.Walk(v)
	}
	v.Exit(n)
}

// StructField is `docComment* identifierName ?? : fieldType (= literal)? ;?`.
type StructField struct {
	SpanVal     Span
	DocComments []string
	Name        *Ident
	Optional    bool
	Type        *FieldType
	Init        *StructFieldInit // nil if no default literal
}

func (n *StructField) Kind() NodeKind { return KindStructField }
func (n *StructField) Span() Span     { return n.SpanVal }
func (n *StructField) Walk(v Visitor) {
	v.Enter(n)
	n.Name.Walk(v)
	n.Type.Walk(v)
	if n.Init != nil {
		n.Init.Walk(v)
	}
	v.Exit(n)
}

// EnumDecl is `pub? enum identifierName { (identifierName = integer)* }`.
type EnumDecl struct {
	SpanVal Span
	Public  bool
	Name    *Ident
	Fields  []*EnumField
}

func (n *EnumDecl) Kind() NodeKind { return KindEnumDecl }
func (n *EnumDecl) Span() Span     { return n.SpanVal }
func (n *EnumDecl) Walk(v Visitor) {
	v.Enter(n)
	n.Name.Walk(v)
	for _, f := range n.Fields {
		f.Walk(v)
	}
	v.Exit(n)
}

// EnumField is one `identifierName = integer` variant.
type EnumField struct {
	SpanVal Span
	Name    *Ident
	Value   int64
}

func (n *EnumField) Kind() NodeKind { return KindEnumField }
func (n *EnumField) Span() Span     { return n.SpanVal }
func (n *EnumField) Walk(v Visitor) {
	v.Enter(n)
	n.Name.Walk(v)
	v.Exit(n)
}

// FieldType wraps exactly one of Primitive, Custom, List, Map — the
// `fieldType ::= primitiveType | customTypeName | listType | mapType`
// production. It is its own node (rather than folded into its child) so
// the tree keeps the grammar's shape; the reference walker does not act
// on it, and resets the builder's type Location to Top at StructField
// instead.
type FieldType struct {
	SpanVal   Span
	Primitive *PrimitiveType
	Custom    *CustomTypeName
	List      *ListType
	Map       *MapType
}

func (n *FieldType) Kind() NodeKind { return KindFieldType }
func (n *FieldType) Span() Span     { return n.SpanVal }
func (n *FieldType) Walk(v Visitor) {
	v.Enter(n)
	n.child().Walk(v)
	v.Exit(n)
}

func (n *FieldType) child() Node {
	switch {
	case n.Primitive != nil:
		return n.Primitive
	case n.Custom != nil:
		return n.Custom
	case n.List != nil:
		return n.List
	case n.Map != nil:
		return n.Map
	default:
		panic("parser: FieldType with no variant set")
	}
}

// ListType is `[` listElementType `]`.
type ListType struct {
	SpanVal Span
	Elem    *ListElementType
}

func (n *ListType) Kind() NodeKind { return KindListType }
func (n *ListType) Span() Span     { return n.SpanVal }
func (n *ListType) Walk(v Visitor) {
	v.Enter(n)
	n.Elem.Walk(v)
	v.Exit(n)
}

// ListElementType wraps the fieldType inside a listType, existing solely
// to mark the FieldTypeBuilder's Location as ListElement before its child
// is walked.
type ListElementType struct {
	SpanVal Span
	Type    *FieldType
}

func (n *ListElementType) Kind() NodeKind { return KindListElementType }
func (n *ListElementType) Span() Span     { return n.SpanVal }
func (n *ListElementType) Walk(v Visitor) {
	v.Enter(n)
	n.Type.Walk(v)
	v.Exit(n)
}

// MapType is `{` mapKeyType `:` mapValueType `}`.
type MapType struct {
	SpanVal Span
	Key     *MapKeyType
	Value   *MapValueType
}

func (n *MapType) Kind() NodeKind { return KindMapType }
func (n *MapType) Span() Span     { return n.SpanVal }
func (n *MapType) Walk(v Visitor) {
	v.Enter(n)
	n.Key.Walk(v)
	n.Value.Walk(v)
	v.Exit(n)
}

// MapKeyType wraps the fieldType before the `:`, marking Location as
// MapKey for the builder.
type MapKeyType struct {
	SpanVal Span
	Type    *FieldType
}

func (n *MapKeyType) Kind() NodeKind { return KindMapKeyType }
func (n *MapKeyType) Span() Span     { return n.SpanVal }
func (n *MapKeyType) Walk(v Visitor) {
	v.Enter(n)
	n.Type.Walk(v)
	v.Exit(n)
}

// MapValueType wraps the fieldType after the `:`, marking Location as
// MapValue for the builder.
type MapValueType struct {
	SpanVal Span
	Type    *FieldType
}

func (n *MapValueType) Kind() NodeKind { return KindMapValueType }
func (n *MapValueType) Span() Span     { return n.SpanVal }
func (n *MapValueType) Walk(v Visitor) {
	v.Enter(n)
	n.Type.Walk(v)
	v.Exit(n)
}

// PrimitiveType is one of the built-in scalar keywords.
type PrimitiveType struct {
	SpanVal  Span
	PrimKind toolman.PrimitiveKind
}

func (n *PrimitiveType) Kind() NodeKind { return KindPrimitiveType }
func (n *PrimitiveType) Span() Span     { return n.SpanVal }
func (n *PrimitiveType) Walk(v Visitor) { v.Enter(n); v.Exit(n) }

// CustomTypeName is a reference to a struct/enum name declared elsewhere
// in the file (or imported).
type CustomTypeName struct {
	SpanVal Span
	Name    *Ident
}

func (n *CustomTypeName) Kind() NodeKind { return KindCustomTypeName }
func (n *CustomTypeName) Span() Span     { return n.SpanVal }
func (n *CustomTypeName) Walk(v Visitor) {
	v.Enter(n)
	n.Name.Walk(v)
	v.Exit(n)
}

// StructFieldInit wraps exactly one of a primitive, list, or map literal:
// the `= literal` suffix of a structField.
type StructFieldInit struct {
	SpanVal   Span
	Primitive *PrimitiveLiteral
	List      *ListLiteral
	Map       *MapLiteral
}

func (n *StructFieldInit) Kind() NodeKind { return KindStructFieldInit }
func (n *StructFieldInit) Span() Span     { return n.SpanVal }
func (n *StructFieldInit) Walk(v Visitor) {
	v.Enter(n)
	n.child().Walk(v)
	v.Exit(n)
}

func (n *StructFieldInit) child() Node {
	switch {
	case n.Primitive != nil:
		return n.Primitive
	case n.List != nil:
		return n.List
	case n.Map != nil:
		return n.Map
	default:
		panic("parser: StructFieldInit with no variant set")
	}
}

// PrimitiveLiteral is a scalar literal token: number, quoted string, or
// true/false.
type PrimitiveLiteral struct {
	SpanVal  Span
	PrimKind toolman.PrimitiveKind // the lexical kind: Bool, I64, F64, or String
	Bool     bool
	Int      int64
	Float    float64
	Str      string
}

func (n *PrimitiveLiteral) Kind() NodeKind { return KindPrimitiveLiteral }
func (n *PrimitiveLiteral) Span() Span     { return n.SpanVal }
func (n *PrimitiveLiteral) Walk(v Visitor) { v.Enter(n); v.Exit(n) }

// ListLiteral is `[` (literal (`,` literal)*)? `]`.
type ListLiteral struct {
	SpanVal Span
	Elems   []*ListLiteralElem
}

func (n *ListLiteral) Kind() NodeKind { return KindListLiteral }
func (n *ListLiteral) Span() Span     { return n.SpanVal }
func (n *ListLiteral) Walk(v Visitor) {
	v.Enter(n)
	for _, e := range n.Elems {
		e.Walk(v)
	}
	v.Exit(n)
}

// ListLiteralElem wraps one element of a list literal, marking the
// LiteralBuilder's Location as ListElement for its child.
type ListLiteralElem struct {
	SpanVal   Span
	Primitive *PrimitiveLiteral
	List      *ListLiteral
	Map       *MapLiteral
}

func (n *ListLiteralElem) Kind() NodeKind { return KindListLiteralElem }
func (n *ListLiteralElem) Span() Span     { return n.SpanVal }
func (n *ListLiteralElem) Walk(v Visitor) {
	v.Enter(n)
	n.child().Walk(v)
	v.Exit(n)
}

func (n *ListLiteralElem) child() Node {
	switch {
	case n.Primitive != nil:
		return n.Primitive
	case n.List != nil:
		return n.List
	case n.Map != nil:
		return n.Map
	default:
		panic("parser: ListLiteralElem with no variant set")
	}
}

// MapLiteral is `{` (mapEntry (`,` mapEntry)*)? `}`.
type MapLiteral struct {
	SpanVal Span
	Entries []*MapEntry
}

func (n *MapLiteral) Kind() NodeKind { return KindMapLiteral }
func (n *MapLiteral) Span() Span     { return n.SpanVal }
func (n *MapLiteral) Walk(v Visitor) {
	v.Enter(n)
	for _, e := range n.Entries {
		e.Walk(v)
	}
	v.Exit(n)
}

// MapEntry is one `key : value` pair of a map literal.
type MapEntry struct {
	SpanVal Span
	Key     *MapKeyLiteral
	Value   *MapValueLiteral
}

func (n *MapEntry) Kind() NodeKind { return KindMapEntry }
func (n *MapEntry) Span() Span     { return n.SpanVal }
func (n *MapEntry) Walk(v Visitor) {
	v.Enter(n)
	n.Key.Walk(v)
	n.Value.Walk(v)
	v.Exit(n)
}

// MapKeyLiteral wraps the primitive literal before the `:`.
type MapKeyLiteral struct {
	SpanVal   Span
	Primitive *PrimitiveLiteral
}

func (n *MapKeyLiteral) Kind() NodeKind { return KindMapKeyLiteral }
func (n *MapKeyLiteral) Span() Span     { return n.SpanVal }
func (n *MapKeyLiteral) Walk(v Visitor) {
	v.Enter(n)
	n.Primitive.Walk(v)
	v.Exit(n)
}

// MapValueLiteral wraps the literal after the `:`.
type MapValueLiteral struct {
	SpanVal   Span
	Primitive *PrimitiveLiteral
	List      *ListLiteral
	Map       *MapLiteral
}

func (n *MapValueLiteral) Kind() NodeKind { return KindMapValueLiteral }
func (n *MapValueLiteral) Span() Span     { return n.SpanVal }
func (n *MapValueLiteral) Walk(v Visitor) {
	v.Enter(n)
	n.child().Walk(v)
	v.Exit(n)
}

func (n *MapValueLiteral) child() Node {
	switch {
	case n.Primitive != nil:
		return n.Primitive
	case n.List != nil:
		return n.List
	case n.Map != nil:
		return n.Map
	default:
		panic("parser: MapValueLiteral with no variant set")
	}
}
