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

import "github.com/toolman-lang/toolman"

// structTypeBuilder holds the struct and field currently under
// construction while the reference walker descends a structDecl
// subtree, so fieldTypeBuilder/literalBuilder results land in the right
// place once a field closes.
type structTypeBuilder struct {
	current *toolman.StructType
	field   *toolman.Field
}

func (b *structTypeBuilder) startStruct(s *toolman.StructType) { b.current = s }

func (b *structTypeBuilder) endStruct() *toolman.StructType {
	s := b.current
	b.current = nil
	return s
}

func (b *structTypeBuilder) startField(f *toolman.Field) { b.field = f }

func (b *structTypeBuilder) setFieldType(t toolman.Type) {
	if b.field != nil {
		b.field.Type = t
	}
}

func (b *structTypeBuilder) setFieldLiteral(l toolman.Literal) {
	if b.field != nil {
		b.field.DefaultLiteral = l
	}
}

// currentFieldType returns the type of the field under construction, or
// nil once no field is open. Used by the reference walker to determine
// the expected type against which a top-level default literal (one not
// nested inside a list/map already carrying its own expected type) is
// checked.
func (b *structTypeBuilder) currentFieldType() toolman.Type {
	if b.field == nil {
		return nil
	}
	return b.field.Type
}

// endField closes the current field, appending it to the struct under
// construction, and returns it.
func (b *structTypeBuilder) endField() *toolman.Field {
	f := b.field
	b.field = nil
	if f != nil && b.current != nil {
		b.current.AppendField(f)
	}
	return f
}
