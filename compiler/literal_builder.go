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

// literalBuilder is the literal-side twin of fieldTypeBuilder: a stack
// machine over toolman.Literal built from the same start/end event shape.
// It mirrors the FieldTypeBuilder/LiteralBuilder split described in
// original_source/src/walker.h, generalized to toolman.Literal.
//
// A map's key literal cannot be inserted until its paired value literal
// arrives, so a completed key is held in pendingKey between the two.
type literalBuilder struct {
	stack      []toolman.Literal // in-progress *ListLiteral / *MapLiteral
	leaf       toolman.Literal
	loc        location
	pendingKey *toolman.PrimitiveLiteral
}

func (b *literalBuilder) setLocation(loc location) { b.loc = loc }

// startLiteral attaches lit to whatever container is on top of the
// stack (per the current location), then pushes lit if it is itself a
// container. A map key is held rather than inserted immediately, since
// insertion needs the paired value.
func (b *literalBuilder) startLiteral(lit toolman.Literal) error {
	if n := len(b.stack); n > 0 {
		switch top := b.stack[n-1].(type) {
		case *toolman.ListLiteral:
			if b.loc == locListElement {
				if err := top.Push(lit); err != nil {
					return err
				}
			}
		case *toolman.MapLiteral:
			switch b.loc {
			case locMapKey:
				// Grammar guarantees a map key literal is always a
				// PrimitiveLiteral (see parser.MapKeyLiteral).
				b.pendingKey = lit.(*toolman.PrimitiveLiteral)
				return nil
			case locMapValue:
				if b.pendingKey != nil {
					key := b.pendingKey
					b.pendingKey = nil
					if err := top.Insert(key, lit); err != nil {
						return err
					}
				}
			}
		}
	}

	switch lit.(type) {
	case *toolman.ListLiteral, *toolman.MapLiteral:
		b.stack = append(b.stack, lit)
	default:
		b.leaf = lit
	}
	return nil
}

// endContainer pops the top-of-stack container. ok is true only when the
// stack is now empty, meaning the popped container is the field's whole
// default value.
func (b *literalBuilder) endContainer() (lit toolman.Literal, ok bool) {
	n := len(b.stack)
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return top, len(b.stack) == 0
}

// endLeaf returns the most recently started leaf literal. ok is true
// only when the stack is empty, meaning the leaf is the field's whole
// default value rather than one already folded into an open container.
func (b *literalBuilder) endLeaf() (lit toolman.Literal, ok bool) {
	if len(b.stack) == 0 {
		return b.leaf, true
	}
	return nil, false
}
