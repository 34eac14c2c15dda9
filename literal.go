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

// Literal mirrors Type: a tagged variant over primitive, list, and map
// literal values. Every Literal carries the declared Type it was checked
// against and the StmtInfo of its source occurrence.
type Literal interface {
	isLiteral()
	Type() Type
	StmtInfo() StmtInfo
}

// PrimitiveLiteral is a scalar literal value: bool, int, float, or string,
// tagged with the PrimitiveKind it was parsed as.
type PrimitiveLiteral struct {
	Kind  PrimitiveKind
	Bool  bool
	Int   int64
	Float float64
	Str   string

	Info StmtInfo
	Typ  Type
}

func (*PrimitiveLiteral) isLiteral()     {}
func (l *PrimitiveLiteral) Type() Type   { return l.Typ }
func (l *PrimitiveLiteral) StmtInfo() StmtInfo { return l.Info }

// ListLiteral is an ordered sequence of literals, each required to equal
// the declared list type's element type.
type ListLiteral struct {
	Elems []Literal
	Info  StmtInfo
	Typ   *ListType
}

func (*ListLiteral) isLiteral()     {}
func (l *ListLiteral) Type() Type   { return l.Typ }
func (l *ListLiteral) StmtInfo() StmtInfo { return l.Info }

// Push appends elem, enforcing elem.Type() == l.Typ.Elem. On mismatch it
// returns a *LiteralTypeMismatch describing the expected/found types; the
// element is not appended.
func (l *ListLiteral) Push(elem Literal) error {
	if l.Typ.Elem != nil && !elem.Type().Equals(l.Typ.Elem) {
		return &LiteralTypeMismatch{
			Expected: l.Typ.Elem,
			Found:    elem.Type(),
			Info:     elem.StmtInfo(),
		}
	}
	l.Elems = append(l.Elems, elem)
	return nil
}

// MapEntry is one key/value pair of a MapLiteral. The key is always a
// PrimitiveLiteral: invariant §3.3 constrains every Map's key type to a
// primitive kind, so its literals follow the same constraint.
type MapEntry struct {
	Key   *PrimitiveLiteral
	Value Literal
}

// MapLiteral is an unordered collection of key/value literal pairs.
type MapLiteral struct {
	Entries []MapEntry
	Info    StmtInfo
	Typ     *MapType
}

func (*MapLiteral) isLiteral()     {}
func (l *MapLiteral) Type() Type   { return l.Typ }
func (l *MapLiteral) StmtInfo() StmtInfo { return l.Info }

// Insert adds a key/value pair, enforcing key.Kind == l.Typ.Key and
// value.Type() == l.Typ.Value.
func (l *MapLiteral) Insert(key *PrimitiveLiteral, value Literal) error {
	// Any is used internally as a wildcard key kind when the compiler
	// could not resolve a matching declared map type (the mismatch is
	// reported once, at the map literal itself, rather than once per
	// entry) — every key kind is accepted in that degraded mode.
	if l.Typ.Key != Any && key.Kind != l.Typ.Key {
		return &LiteralTypeMismatch{
			Expected: &PrimitiveType{Kind: l.Typ.Key},
			Found:    key.Type(),
			Info:     key.StmtInfo(),
		}
	}
	if l.Typ.Value != nil && !value.Type().Equals(l.Typ.Value) {
		return &LiteralTypeMismatch{
			Expected: l.Typ.Value,
			Found:    value.Type(),
			Info:     value.StmtInfo(),
		}
	}
	l.Entries = append(l.Entries, MapEntry{Key: key, Value: value})
	return nil
}

// LiteralTypeMismatch reports that a literal's type does not structurally
// equal the container/field type it was inserted into. Constructing
// ListLiteral.Push/MapLiteral.Insert return this directly; the compiler
// wraps it into a diagnostic (LiteralElementTypeMismatch) rather than
// treating it as fatal.
type LiteralTypeMismatch struct {
	Expected Type
	Found    Type
	Info     StmtInfo
}

func (e *LiteralTypeMismatch) Error() string {
	return fmt.Sprintf(
		"mismatched types: expected `%s`, found `%s`",
		e.Expected.Display(), e.Found.Display(),
	)
}
