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

// location tracks where, inside a fieldType or literal tree, the walker
// currently is: at the top of a field's type/value, inside a list's
// element, or inside a map's key or value. Entering a listElementType,
// mapKeyType, or mapValueType node sets it; it is read the moment a leaf
// or nested container is started, then discarded.
type location uint8

const (
	locTop location = iota
	locListElement
	locMapKey
	locMapValue
)

// fieldTypeBuilder reconstructs a nested toolman.Type from the linear
// stream of start/end events the reference walker produces while
// descending a fieldType subtree. It is a stack machine: List/Map
// containers push, primitives and custom-type references are leaves.
//
// Grounded on the original walker's FieldTypeBuilder (see
// original_source/src/walker.h), generalized from shared_ptr<Type> to
// toolman.Type handles.
type fieldTypeBuilder struct {
	stack []toolman.Type // in-progress *ListType / *MapType containers
	leaf  toolman.Type   // most recently completed leaf type
	loc   location
}

func (b *fieldTypeBuilder) setLocation(loc location) { b.loc = loc }

// startType attaches t to whatever container is on top of the stack (per
// the current location), then pushes t if it is itself a container.
// Returns a MapKeyTypeMustBePrimitive-shaped error if t is used as a map
// key but is not primitive; the caller decides how to surface it.
func (b *fieldTypeBuilder) startType(t toolman.Type) error {
	var err error
	if n := len(b.stack); n > 0 {
		switch top := b.stack[n-1].(type) {
		case *toolman.ListType:
			if b.loc == locListElement {
				top.Elem = t
			}
		case *toolman.MapType:
			switch b.loc {
			case locMapKey:
				prim, ok := t.(*toolman.PrimitiveType)
				if !ok {
					err = &mapKeyNotPrimitiveError{Found: t}
				} else {
					top.Key = prim.Kind
				}
			case locMapValue:
				top.Value = t
			}
		}
	}

	// Push/set t regardless of err: every Enter that increased nesting
	// still gets a matching Exit, so the stack stays balanced even when
	// the map-key check above rejected t.
	switch t.(type) {
	case *toolman.ListType, *toolman.MapType:
		b.stack = append(b.stack, t)
	default:
		b.leaf = t
	}
	return err
}

// endContainer pops the top-of-stack container. ok is true only when the
// stack is now empty, meaning the popped container is the field's whole
// type rather than still nested inside an outer one.
func (b *fieldTypeBuilder) endContainer() (t toolman.Type, ok bool) {
	n := len(b.stack)
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return top, len(b.stack) == 0
}

// endLeaf returns the most recently started leaf type. ok is true only
// when the stack is empty, meaning the leaf is the field's whole type
// rather than an element/key/value already folded into an open container.
func (b *fieldTypeBuilder) endLeaf() (t toolman.Type, ok bool) {
	if len(b.stack) == 0 {
		return b.leaf, true
	}
	return nil, false
}

// mapKeyNotPrimitiveError is the builder-local shape of
// MapKeyTypeMustBePrimitive; the reference walker wraps it into a
// *compiler.Error with source position before recording it.
type mapKeyNotPrimitiveError struct {
	Found toolman.Type
}

func (e *mapKeyNotPrimitiveError) Error() string {
	return "map key type must be primitive"
}
