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

package compiler

import (
	"github.com/toolman-lang/toolman"
	"github.com/toolman-lang/toolman/parser"
)

// refWalker is the reference phase (spec §4.6): a parser.Visitor that
// drives fieldTypeBuilder, literalBuilder, and structTypeBuilder from the
// Enter/Exit event stream to resolve every field's type and default
// literal, and to assemble the Document.
//
// Grounded on original_source/src/walker.h's RefPhaseWalker, adapted from
// an ANTLR listener callback set to parser.Visitor's Enter/Exit pair.
type refWalker struct {
	scope      *toolman.Scope
	sourcePath string

	doc     *toolman.Document
	typ     fieldTypeBuilder
	lit     literalBuilder
	structB structTypeBuilder

	errs []*Error

	// duplicateBody is set on Enter(StructDecl)/Enter(EnumDecl) when the
	// handle found in scope was not installed by this very node — i.e.
	// this occurrence lost the declaration race (same-file redeclaration,
	// or a name collision with an imported public type) and must not
	// mutate the winning handle. Its subtree still walks, into a
	// throwaway shell, so a botched second definition doesn't also
	// corrupt the canonical one.
	duplicateBody bool

	// customResolved tracks whether the most recently entered
	// CustomTypeName successfully resolved, so Exit knows whether a
	// matching startType call is waiting to be closed.
	customResolved bool

	enumCurrent       *toolman.EnumType
	seenVariantNames  map[string]toolman.StmtInfo
	seenVariantValues map[int64]toolman.StmtInfo

	seenFieldNames map[string]toolman.StmtInfo
}

func newRefWalker(scope *toolman.Scope, sourcePath string) *refWalker {
	return &refWalker{scope: scope, sourcePath: sourcePath}
}

func (w *refWalker) err(e *Error) { w.errs = append(w.errs, e) }

func (w *refWalker) info(span parser.Span) toolman.StmtInfo {
	return stmtInfo(span, w.sourcePath)
}

func sameStmtInfo(a, b toolman.StmtInfo) bool {
	return a.SourcePath == b.SourcePath && a.Lines == b.Lines && a.Columns == b.Columns
}

func (w *refWalker) Enter(n parser.Node) {
	switch node := n.(type) {

	case *parser.Document:
		w.doc = &toolman.Document{Source: w.sourcePath}

	case *parser.StructDecl:
		info := w.info(node.Name.SpanVal)
		handle, _ := w.scope.Lookup(node.Name.Name)
		s, ok := handle.(*toolman.StructType)
		if !ok || !sameStmtInfo(s.StmtInfo(), info) {
			w.duplicateBody = true
			s = &toolman.StructType{Name: node.Name.Name, IsPublic: node.Public, Info: info}
		} else {
			w.duplicateBody = false
		}
		w.structB.startStruct(s)
		w.seenFieldNames = make(map[string]toolman.StmtInfo)

	case *parser.StructField:
		fieldInfo := w.info(node.SpanVal)
		if prior, ok := w.seenFieldNames[node.Name.Name]; ok {
			w.err(errDuplicateFieldName(node.Name.Name, prior, fieldInfo))
		} else {
			w.seenFieldNames[node.Name.Name] = fieldInfo
		}
		w.structB.startField(&toolman.Field{
			Name:        node.Name.Name,
			Optional:    node.Optional,
			DocComments: node.DocComments,
			Info:        fieldInfo,
		})
		// A field's own type starts fresh at Top; ListElementType,
		// MapKeyType, and MapValueType each re-mark this immediately
		// before descending into their nested *FieldType, so FieldType
		// itself must not touch location — doing so would stomp the
		// mark those wrappers just set.
		w.typ.setLocation(locTop)

	case *parser.ListType:
		if err := w.typ.startType(&toolman.ListType{Info: w.info(node.SpanVal)}); err != nil {
			w.reportTypeErr(err, node.SpanVal)
		}

	case *parser.ListElementType:
		w.typ.setLocation(locListElement)

	case *parser.MapType:
		if err := w.typ.startType(&toolman.MapType{Info: w.info(node.SpanVal)}); err != nil {
			w.reportTypeErr(err, node.SpanVal)
		}

	case *parser.MapKeyType:
		w.typ.setLocation(locMapKey)

	case *parser.MapValueType:
		w.typ.setLocation(locMapValue)

	case *parser.PrimitiveType:
		t := &toolman.PrimitiveType{Kind: node.PrimKind, Info: w.info(node.SpanVal)}
		if err := w.typ.startType(t); err != nil {
			w.reportTypeErr(err, node.SpanVal)
		}

	case *parser.CustomTypeName:
		w.enterCustomTypeName(node)

	case *parser.StructFieldInit:
		w.lit.setLocation(locTop)

	case *parser.ListLiteralElem:
		w.lit.setLocation(locListElement)

	case *parser.MapKeyLiteral:
		w.lit.setLocation(locMapKey)

	case *parser.MapValueLiteral:
		w.lit.setLocation(locMapValue)

	case *parser.ListLiteral:
		w.enterListLiteral(node)

	case *parser.MapLiteral:
		w.enterMapLiteral(node)

	case *parser.PrimitiveLiteral:
		w.enterPrimitiveLiteral(node)

	case *parser.EnumDecl:
		info := w.info(node.Name.SpanVal)
		handle, _ := w.scope.Lookup(node.Name.Name)
		e, ok := handle.(*toolman.EnumType)
		if !ok || !sameStmtInfo(e.StmtInfo(), info) {
			w.duplicateBody = true
			e = &toolman.EnumType{Name: node.Name.Name, IsPublic: node.Public, Info: info}
		} else {
			w.duplicateBody = false
		}
		w.enumCurrent = e
		w.seenVariantNames = make(map[string]toolman.StmtInfo)
		w.seenVariantValues = make(map[int64]toolman.StmtInfo)

	case *parser.EnumField:
		w.enterEnumField(node)
	}
}

func (w *refWalker) Exit(n parser.Node) {
	switch n.(type) {

	case *parser.StructDecl:
		s := w.structB.endStruct()
		if !w.duplicateBody {
			w.doc.PushStruct(s)
		}

	case *parser.StructField:
		w.structB.endField()

	case *parser.ListType:
		if t, ok := w.typ.endContainer(); ok {
			w.structB.setFieldType(t)
		}

	case *parser.MapType:
		if t, ok := w.typ.endContainer(); ok {
			w.structB.setFieldType(t)
		}

	case *parser.PrimitiveType:
		if t, ok := w.typ.endLeaf(); ok {
			w.structB.setFieldType(t)
		}

	case *parser.CustomTypeName:
		if w.customResolved {
			if t, ok := w.typ.endLeaf(); ok {
				w.structB.setFieldType(t)
			}
		}

	case *parser.ListLiteral:
		if l, ok := w.lit.endContainer(); ok {
			w.structB.setFieldLiteral(l)
		}

	case *parser.MapLiteral:
		if l, ok := w.lit.endContainer(); ok {
			w.structB.setFieldLiteral(l)
		}

	case *parser.PrimitiveLiteral:
		if l, ok := w.lit.endLeaf(); ok {
			w.structB.setFieldLiteral(l)
		}

	case *parser.EnumDecl:
		if !w.duplicateBody {
			w.doc.PushEnum(w.enumCurrent)
		}
		w.enumCurrent = nil
	}
}

func (w *refWalker) reportTypeErr(err error, span parser.Span) {
	if mk, ok := err.(*mapKeyNotPrimitiveError); ok {
		w.err(errMapKeyTypeMustBePrimitive(mk.Found, w.info(span)))
		return
	}
	w.err(errParseError(err.Error(), w.info(span)))
}

func (w *refWalker) enterCustomTypeName(node *parser.CustomTypeName) {
	t, found := w.scope.Lookup(node.Name.Name)
	if !found {
		suggestion := suggestName(node.Name.Name, w.scope.Names())
		w.err(errCustomTypeNotFound(node.Name.Name, w.info(node.SpanVal), suggestion))
		w.customResolved = false
		return
	}
	w.customResolved = true
	if err := w.typ.startType(t); err != nil {
		w.reportTypeErr(err, node.SpanVal)
	}
}

// expectedType reports the type a literal being started right now must
// match: the declared sub-type of whatever list/map is currently open,
// or (at the top of a field's default) the field's own declared type.
// It may return nil when the enclosing container itself could not be
// resolved to a matching shape — callers fall back to a permissive
// literal type in that case, since the mismatch was already reported (or
// will be, by the enclosing Push/Insert call).
func (w *refWalker) expectedType() toolman.Type {
	if n := len(w.lit.stack); n > 0 {
		switch top := w.lit.stack[n-1].(type) {
		case *toolman.ListLiteral:
			if w.lit.loc == locListElement && top.Typ != nil {
				return top.Typ.Elem
			}
		case *toolman.MapLiteral:
			if top.Typ == nil {
				return nil
			}
			switch w.lit.loc {
			case locMapKey:
				return &toolman.PrimitiveType{Kind: top.Typ.Key}
			case locMapValue:
				return top.Typ.Value
			}
		}
		return nil
	}
	return w.structB.currentFieldType()
}

func (w *refWalker) enterListLiteral(node *parser.ListLiteral) {
	info := w.info(node.SpanVal)
	expected := w.expectedType()
	lt, ok := expected.(*toolman.ListType)
	if !ok {
		if len(w.lit.stack) == 0 {
			w.err(errLiteralElementTypeMismatch(expected, &toolman.ListType{}, info))
		}
		lt = &toolman.ListType{}
	}
	if err := w.lit.startLiteral(&toolman.ListLiteral{Typ: lt, Info: info}); err != nil {
		w.reportLiteralErr(err, info)
	}
}

func (w *refWalker) enterMapLiteral(node *parser.MapLiteral) {
	info := w.info(node.SpanVal)
	expected := w.expectedType()
	mt, ok := expected.(*toolman.MapType)
	if !ok {
		if len(w.lit.stack) == 0 {
			w.err(errLiteralElementTypeMismatch(expected, &toolman.MapType{Key: toolman.Any}, info))
		}
		mt = &toolman.MapType{Key: toolman.Any}
	}
	if err := w.lit.startLiteral(&toolman.MapLiteral{Typ: mt, Info: info}); err != nil {
		w.reportLiteralErr(err, info)
	}
}

func (w *refWalker) reportLiteralErr(err error, info toolman.StmtInfo) {
	if mismatch, ok := err.(*toolman.LiteralTypeMismatch); ok {
		w.err(errLiteralElementTypeMismatch(mismatch.Expected, mismatch.Found, mismatch.Info))
		return
	}
	w.err(errParseError(err.Error(), info))
}

// compatiblePrimitiveKind reports whether a literal lexed as lexical
// (always one of Bool, I64, F64, String — the lexer's default numeric
// widths, see parser.parsePrimitiveLiteral) may adopt a differently
// sized declared kind: an integer token fits any of I32/U32/I64/U64, a
// float token fits F32/F64, and bool/string only match themselves. This
// is what let a plain integer literal like `5` satisfy a `u32` field
// without every literal needing a width suffix in source.
func compatiblePrimitiveKind(lexical, declared toolman.PrimitiveKind) bool {
	switch lexical {
	case toolman.Bool:
		return declared == toolman.Bool
	case toolman.I64:
		switch declared {
		case toolman.I32, toolman.U32, toolman.I64, toolman.U64:
			return true
		}
	case toolman.F64:
		switch declared {
		case toolman.F32, toolman.F64:
			return true
		}
	case toolman.String:
		return declared == toolman.String
	}
	return false
}

func (w *refWalker) enterPrimitiveLiteral(node *parser.PrimitiveLiteral) {
	info := w.info(node.SpanVal)
	expected := w.expectedType()

	kind := node.PrimKind
	typKind := node.PrimKind
	incompatible := false
	switch pt, ok := expected.(*toolman.PrimitiveType); {
	case ok && pt.Kind == toolman.Any:
		// any matches any primitive literal: keep the lexical kind, but
		// type the literal as any so an enclosing Push/Insert into an
		// any-typed slot accepts it.
		typKind = toolman.Any
	case ok && compatiblePrimitiveKind(node.PrimKind, pt.Kind):
		typKind = pt.Kind
		kind = pt.Kind
	case ok:
		incompatible = true
	case expected != nil:
		incompatible = true
	}

	lit := &toolman.PrimitiveLiteral{
		Kind:  kind,
		Bool:  node.Bool,
		Int:   node.Int,
		Float: node.Float,
		Str:   node.Str,
		Info:  info,
		Typ:   &toolman.PrimitiveType{Kind: typKind, Info: info},
	}

	// A mismatch at the top of a field's default (stack empty) has no
	// enclosing Push/Insert call to catch it, so report it here. Nested
	// mismatches are left to the enclosing ListLiteral.Push/MapLiteral.Insert
	// call below — reporting both would double-count the same error.
	if incompatible && len(w.lit.stack) == 0 {
		w.err(errLiteralElementTypeMismatch(expected, lit.Typ, info))
	}

	if err := w.lit.startLiteral(lit); err != nil {
		w.reportLiteralErr(err, info)
	}
}

func (w *refWalker) enterEnumField(node *parser.EnumField) {
	info := w.info(node.SpanVal)
	if prior, ok := w.seenVariantNames[node.Name.Name]; ok {
		w.err(errDuplicateEnumVariant(node.Name.Name, prior, info))
	} else {
		w.seenVariantNames[node.Name.Name] = info
	}
	if prior, ok := w.seenVariantValues[node.Value]; ok {
		w.err(errDuplicateEnumValue(node.Value, prior, info))
	} else {
		w.seenVariantValues[node.Value] = info
	}
	w.enumCurrent.Variants = append(w.enumCurrent.Variants, toolman.EnumVariant{
		Name: node.Name.Name, Value: node.Value, Info: info,
	})
}
